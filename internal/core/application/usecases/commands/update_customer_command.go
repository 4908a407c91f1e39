package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand represents a request to change a customer's name
// and contact address. Both fields are replaced; partial updates are the
// caller's job to assemble.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update a customer.
func NewUpdateCustomerCommand(customerID kernel.UUID, name string, email string) (UpdateCustomerCommand, error) {
	customerCommand := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
		customerCommand.setEmail(email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new contact address.
func (c UpdateCustomerCommand) Email() string {
	return c.email
}

func (c *UpdateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
