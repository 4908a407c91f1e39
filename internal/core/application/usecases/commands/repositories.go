// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ecommerce/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CustomerUoW manages transactions for customer-only operations.
	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	// CustomerUoWFactory creates new customer unit of work instances.
	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	// ProductUoW manages transactions for product-only operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// UoW manages transactions across order, customer, and product aggregates.
	// Used for commands that coordinate reads and writes between aggregate types,
	// such as order creation, which resolves the customer and snapshots product
	// prices inside the same transaction that persists the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   productRepo := uow.ProductRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		CustomerRepoFactory
		ProductRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
