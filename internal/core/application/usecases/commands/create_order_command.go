package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderItemsAreRequired = errors.New("order must contain at least one item")
)

// ItemSpec describes one requested order line: which product and how many
// units. The unit price is not part of the request; it is snapshotted from
// the catalogue inside the command handler's transaction.
type ItemSpec struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateOrderCommand represents a request to place a new order for a customer.
// Encapsulates the customer reference and the requested item lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, customerID, []ItemSpec{
//	    {ProductID: productID, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created and awaiting payment", orderID)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	items      []ItemSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// Validates that the identifiers are valid, at least one item is requested,
// and every item names a product with a quantity of at least one.
// Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	items []ItemSpec,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Items returns the requested item lines.
func (c CreateOrderCommand) Items() []ItemSpec {
	out := make([]ItemSpec, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemSpec) error {
	if len(items) == 0 {
		return ErrOrderItemsAreRequired
	}

	for idx, item := range items {
		if err := item.ProductID.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		if _, err := kernel.NewQuantity(item.Quantity); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}

	c.items = make([]ItemSpec, len(items))
	copy(c.items, items)
	return nil
}
