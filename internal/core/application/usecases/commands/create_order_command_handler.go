package commands

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the customer, snapshots product prices into item lines, and
// persists the new order in AwaitingPayment status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), customerID, items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now created and awaiting payment
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a UoWFactory because customer and product lookups must happen in
// the same transaction that persists the order.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
//
// The customer and every referenced product are resolved first; a missing
// reference surfaces as an object-not-found error before anything is written.
// Each item line snapshots the product's current catalogue price so later
// price changes never alter this order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	customerRepo := uow.CustomerRepository()
	productRepo := uow.ProductRepository()
	orderRepo := uow.OrderRepository()

	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), time.Now().UTC())
	if err != nil {
		return err
	}

	for _, spec := range cmd.Items() {
		catalogueProduct, err := productRepo.Get(ctx, spec.ProductID)
		if err != nil {
			return err
		}

		quantity, err := kernel.NewQuantity(spec.Quantity)
		if err != nil {
			return err
		}

		item, err := order.NewItem(kernel.NewUUID(), catalogueProduct.ID(), quantity, catalogueProduct.Price())
		if err != nil {
			return err
		}

		if err := newOrder.AddItem(item); err != nil {
			return err
		}
	}

	if err := orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
