package commands

import (
	"context"
)

// UpdateProductCommandHandler handles catalogue product updates.
// The stored aggregate is loaded first so updates to missing products surface
// as object-not-found errors rather than silent upserts.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
func (h *UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	if err := aggregate.Rename(cmd.Name()); err != nil {
		return err
	}
	aggregate.ChangeDescription(cmd.Description())
	if err := aggregate.ChangePrice(cmd.Price()); err != nil {
		return err
	}
	if err := aggregate.ChangeCategory(cmd.Category()); err != nil {
		return err
	}

	if err := aggregate.ChangeStock(cmd.Stock()); err != nil {
		return err
	}

	if err := productRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
