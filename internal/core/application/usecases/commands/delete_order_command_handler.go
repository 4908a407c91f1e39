package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles order deletion.
// Items are removed together with the order in the same transaction; no
// orphaned item rows survive a delete.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Returns an object-not-found error when the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
