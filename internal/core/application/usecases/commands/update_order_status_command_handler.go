package commands

import (
	"context"
)

// UpdateOrderStatusCommandHandler handles order status changes.
// Loads the order, applies the transition through the aggregate, and persists
// the result. Illegal transitions surface as typed errors and leave the stored
// order untouched.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderStatusCommandHandler creates a handler for status change operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Returns an object-not-found error when the order does not exist and an
// invalid-transition error when the transition table rejects the pair.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
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

	orderRepo := uow.OrderRepository()

	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err := aggregate.ChangeStatus(cmd.Status()); err != nil {
		return err
	}

	if err := orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
