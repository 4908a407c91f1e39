package commands

import (
	"context"
)

// DeleteProductCommandHandler handles catalogue product removal.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates a handler for product removal.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) DeleteProductCommandHandler {
	return DeleteProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns an object-not-found error when the product does not exist.
func (h *DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
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

	productRepo := uow.ProductRepository()

	if _, err := productRepo.Get(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := productRepo.Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
