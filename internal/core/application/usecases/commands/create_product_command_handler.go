package commands

import (
	"context"

	"ecommerce/internal/core/domain/model/product"
)

// CreateProductCommandHandler handles catalogue product creation.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates a handler for product creation.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) CreateProductCommandHandler {
	return CreateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product creation command.
func (h *CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) error {
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

	aggregate, err := product.NewProduct(
		cmd.ProductID(), cmd.Name(), cmd.Description(), cmd.Price(), cmd.Stock(), cmd.Category(),
	)
	if err != nil {
		return err
	}

	if err := productRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
