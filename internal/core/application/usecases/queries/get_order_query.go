// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its items and derived total.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve order: %w", err)
//	}
//	fmt.Printf("Order %s total: %s\n", result.ID, result.Total)
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one order by its identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// OrderItemResponse represents one order line in the read model.
type OrderItemResponse struct {
	ID        kernel.UUID
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// GetOrderQueryResponse represents a complete order in the read model.
// Total is recomputed from the item rows on every read; it is never stored.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	CustomerID kernel.UUID
	OrderDate  time.Time
	Status     order.Status
	Items      []OrderItemResponse
	Total      kernel.Money
}
