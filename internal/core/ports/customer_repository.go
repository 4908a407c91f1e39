package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	// A missing customer is reported with an error wrapping errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetAll retrieves all customers.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// Delete removes a customer from storage.
	// A missing customer is reported with an error wrapping errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error
}
