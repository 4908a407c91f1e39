package commands

import (
	"context"
)

// DeleteCustomerCommandHandler handles customer removal.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer removal.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
// Returns an object-not-found error when the customer does not exist.
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
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

	if _, err := customerRepo.Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := customerRepo.Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
