package ports

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// A missing product is reported with an error wrapping errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAll retrieves all products.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// Delete removes a product from storage.
	// A missing product is reported with an error wrapping errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error
}
