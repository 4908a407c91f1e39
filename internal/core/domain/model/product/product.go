package product

import (
	"errors"
	"fmt"
	"strings"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than the product currently has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Product represents a sellable catalogue entry.
//
// Product is a standalone aggregate. Order items snapshot the product's price
// at the moment the order is placed, so changing Price here never alters
// existing orders.
type Product struct {
	// id is the unique identifier for the product
	id kernel.UUID

	// name is the product's display name
	name string

	// description is optional free-form text
	description string

	// price is the current catalogue price
	price kernel.Money

	// stock is the number of units available for sale
	stock int

	// category is a free-form grouping label
	category string

	// guard ensures the product was created via a constructor
	guard guard.ConstructorGuard
}

// NewProduct creates a new Product with validated parameters.
//
// Parameters:
//   - id: Unique identifier for the product (must be a valid UUID)
//   - name: Display name (must not be empty)
//   - description: Optional free-form text
//   - price: Current catalogue price (must be strictly positive)
//   - stock: Units available (must not be negative)
//   - category: Grouping label (must not be empty)
//
// Returns:
//   - *Product: The created product if all validations pass
//   - error: Validation error if any parameter is invalid
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (*Product, error) {
	product := &Product{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		product.setID(id),
		product.setName(name),
		product.setPrice(price),
		product.setStock(stock),
		product.setCategory(category),
	); err != nil {
		return nil, err
	}

	return product, nil
}

// RestoreProduct reconstructs a Product from persistent storage.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	stock int,
	category string,
) (*Product, error) {
	return NewProduct(id, name, description, price, stock, category)
}

// Validate ensures the Product instance was properly constructed.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's free-form description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current catalogue price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Stock returns the number of units available for sale.
func (p *Product) Stock() int {
	return p.stock
}

// Category returns the product's grouping label.
func (p *Product) Category() string {
	return p.category
}

// Rename changes the product's display name.
func (p *Product) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription replaces the free-form description.
func (p *Product) ChangeDescription(description string) {
	p.description = description
}

// ChangePrice changes the catalogue price. Existing order items keep their
// snapshotted unit price.
func (p *Product) ChangePrice(price kernel.Money) error {
	return p.setPrice(price)
}

// ChangeCategory changes the grouping label.
func (p *Product) ChangeCategory(category string) error {
	return p.setCategory(category)
}

// ChangeStock replaces the stock level wholesale, as catalogue maintenance
// does. Orders never decrement stock; incremental moves use Restock/Reserve.
func (p *Product) ChangeStock(stock int) error {
	return p.setStock(stock)
}

// Restock increases the available stock by the given quantity.
func (p *Product) Restock(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	p.stock += quantity.Value()
	return nil
}

// Reserve decreases the available stock by the given quantity.
// Returns ErrInsufficientStock without mutating when not enough units remain.
func (p *Product) Reserve(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	if quantity.Value() > p.stock {
		return fmt.Errorf("%w: requested %d, have %d", ErrInsufficientStock, quantity.Value(), p.stock)
	}

	p.stock -= quantity.Value()
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price is invalid",
			fmt.Errorf("%s is not greater than 0", price.String()),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"stock is invalid",
			fmt.Errorf("%d is negative", stock),
		)
	}
	p.stock = stock
	return nil
}

func (p *Product) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}
