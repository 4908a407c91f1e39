package commands

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalogue.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	stock       int
	category    string

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalogue product.
// Validates identifiers, presence of name and category, a strictly positive
// price, and non-negative stock.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
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
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the unique identifier for the product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product's display name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the product's free-form description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the catalogue price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Stock returns the initial stock level.
func (c CreateProductCommand) Stock() int {
	return c.stock
}

// Category returns the product's grouping label.
func (c CreateProductCommand) Category() string {
	return c.category
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}

	c.price = price
	return nil
}

func (c *CreateProductCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}

	c.stock = stock
	return nil
}

func (c *CreateProductCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}
