// Package ports defines repository interfaces for the ordering domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// together with their complete item collections.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including its items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Items removed from the aggregate since it was loaded are removed from
	// storage as part of the same operation.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its items; a missing order is reported
	// with an error wrapping errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves all orders with their items.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete removes an order and its items from storage.
	// A missing order is reported with an error wrapping errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllAwaitingPaymentBefore retrieves orders still awaiting payment that
	// were placed before the cutoff. Used by the stale-order cancellation job.
	GetAllAwaitingPaymentBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
