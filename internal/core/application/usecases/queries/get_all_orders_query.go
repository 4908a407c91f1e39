package queries

import (
	"errors"

	"ecommerce/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves every order with its items and derived total.
// An empty system yields an empty slice, not an error.
//
// Example:
//
//	query := NewGetAllOrdersQuery()
//	handler := NewGetAllOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("Order %s (%s): %s\n", o.ID, o.Status, o.Total)
//	}
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllOrdersQueryIsNotConstructed if validation fails.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
