package commands

import (
	"context"
)

// UpdateCustomerCommandHandler handles customer updates.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates a handler for customer updates.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command.
// Returns an object-not-found error when the customer does not exist.
func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	aggregate, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err := aggregate.Rename(cmd.Name()); err != nil {
		return err
	}

	if err := aggregate.ChangeEmail(cmd.Email()); err != nil {
		return err
	}

	if err := customerRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
