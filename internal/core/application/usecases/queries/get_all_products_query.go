package queries

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery retrieves the complete product catalogue.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query to retrieve all products.
// This is a parameterless query that fetches the complete catalogue.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllProductsQueryIsNotConstructed if validation fails.
func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// GetAllProductsQueryResponse represents product information in the read model.
type GetAllProductsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Price       kernel.Money
	Stock       int
	Category    string
}
