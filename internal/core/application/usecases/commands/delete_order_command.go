package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and all of its
// items from storage.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	deleteCommand := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := deleteCommand.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return deleteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
