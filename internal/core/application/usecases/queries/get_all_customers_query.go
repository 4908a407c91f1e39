package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrGetAllCustomersQueryIsNotConstructed = errors.New(
	"GetAllCustomersQuery must be created via NewGetAllCustomersQuery constructor",
)

// GetAllCustomersQuery retrieves all registered customers.
type GetAllCustomersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllCustomersQuery creates a query to retrieve all customers.
// This is a parameterless query that fetches the complete customer list.
func NewGetAllCustomersQuery() GetAllCustomersQuery {
	return GetAllCustomersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllCustomersQueryIsNotConstructed if validation fails.
func (q GetAllCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCustomersQueryIsNotConstructed)
}

// GetAllCustomersQueryResponse represents customer information in the read model.
type GetAllCustomersQueryResponse struct {
	ID    kernel.UUID
	Name  string
	Email string
}
