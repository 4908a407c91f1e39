package commands

import (
	"errors"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand represents a request to move an order to a new
// lifecycle status. Whether the move is legal is decided by the order's
// transition table, not by the command.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID is valid and the target status is a defined one.
func NewUpdateOrderStatusCommand(orderID kernel.UUID, status order.Status) (UpdateOrderStatusCommand, error) {
	statusCommand := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
