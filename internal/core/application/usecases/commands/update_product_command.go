package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to replace a product's catalogue
// attributes. Price changes only affect future orders; placed orders keep
// their snapshotted unit prices.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a catalogue product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
		productCommand.setStock(stock),
		productCommand.setCategory(category),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new display name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new free-form description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new catalogue price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the new stock level.
func (c UpdateProductCommand) Stock() int {
	return c.stock
}

// Category returns the new grouping label.
func (c UpdateProductCommand) Category() string {
	return c.category
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}

	c.price = price
	return nil
}

func (c *UpdateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}

	c.stock = stock
	return nil
}

func (c *UpdateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}
