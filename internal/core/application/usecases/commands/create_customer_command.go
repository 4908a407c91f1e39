package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Shape validation of the email happens in the domain constructor; the
// command only checks presence.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
func NewCreateCustomerCommand(customerID kernel.UUID, name string, email string) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setName(name),
		customerCommand.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the unique identifier for the customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the customer's contact address.
func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
