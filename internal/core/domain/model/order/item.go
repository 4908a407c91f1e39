package order

import (
	"errors"
	"fmt"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed indicates that the Item was not properly
	// initialized through the NewItem constructor function.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemAlreadyAttached indicates an attempt to add an item that already
	// belongs to a different order. Items are owned by exactly one order.
	ErrItemAlreadyAttached = errors.New("item already belongs to another order")
)

// Item represents a single line of an order: a product reference, a quantity,
// and the unit price snapshotted at the moment the order was placed.
//
// Item is a child entity of the Order aggregate. It has no independent
// lifecycle: it is created, updated, and destroyed only as part of its owning
// Order, and it can only be attached to or detached from an order through the
// aggregate's AddItem/RemoveItem methods.
//
// The unit price is a snapshot: later changes to the product's price must
// never alter existing order items. The subtotal is always derived as
// unitPrice * quantity with exact decimal arithmetic and is never stored.
//
// Key business rules:
//   - Quantity must be at least 1
//   - Unit price must be strictly positive with at most two fractional digits
//   - Identity is the item id; two items with the same id are the same item
//     regardless of other field values
type Item struct {
	// id uniquely identifies the item
	id kernel.UUID

	// orderID is the owning order. It is maintained exclusively by the Order
	// aggregate and used for integrity checks, never for navigation.
	orderID kernel.UUID

	// productID references the product this line was created from
	productID kernel.UUID

	// quantity is the ordered item count
	quantity kernel.Quantity

	// unitPrice is the price snapshot taken at order creation time
	unitPrice kernel.Money

	// guard ensures the item was properly constructed
	guard guard.ConstructorGuard
}

// NewItem creates a new order item from a product reference, a quantity, and
// a unit price snapshot. This is the only way to create a valid detached Item;
// attachment to an order happens through Order.AddItem.
//
// Parameters:
//   - id: Unique identifier for the item (must be a valid UUID)
//   - productID: Product the line refers to (must be a valid UUID)
//   - quantity: Ordered count (must be at least 1)
//   - unitPrice: Price snapshot (must be strictly positive)
//
// Returns:
//   - *Item: The created item if all validations pass
//   - error: Validation error if any parameter is invalid
func NewItem(
	id kernel.UUID,
	productID kernel.UUID,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreItem reconstructs an Item from persistent storage, including the
// owning order reference. The restored item behaves identically to one created
// through normal domain operations.
func RestoreItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID kernel.UUID,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (*Item, error) {
	item := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	item.orderID = orderID

	return item, nil
}

// Validate checks if the Item was properly constructed through NewItem or
// RestoreItem. The zero value fails validation.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items by their unique identifiers.
// Items are the same item if they have the same ID, which supports
// update-in-place semantics for persisted lines.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identifier of the owning order.
// For a detached item the returned UUID is the zero value and fails Validate.
func (i *Item) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the referenced product's identifier.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the ordered item count.
func (i *Item) Quantity() kernel.Quantity {
	return i.quantity
}

// UnitPrice returns the unit price snapshot taken at order creation time.
func (i *Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal returns unitPrice * quantity using exact decimal multiplication.
// The subtotal is derived on every call and never stored.
func (i *Item) Subtotal() kernel.Money {
	return i.unitPrice.MulQuantity(i.quantity)
}

// attachTo sets the owning order reference. Only the Order aggregate calls
// this, from AddItem; an item already owned by a different order is rejected
// so a line can never be listed under two orders.
func (i *Item) attachTo(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if i.orderID.Validate() == nil && !i.orderID.IsEqual(orderID) {
		return ErrItemAlreadyAttached
	}

	i.orderID = orderID
	return nil
}

// detach clears the owning order reference. Only the Order aggregate calls
// this, from RemoveItem, so an item can never end up detached while still
// listed in an order's collection.
func (i *Item) detach() {
	i.orderID = kernel.UUID{}
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	i.id = id
	return nil
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}

	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice is invalid",
			fmt.Errorf("%s is not greater than 0", unitPrice.String()),
		)
	}

	i.unitPrice = unitPrice
	return nil
}
