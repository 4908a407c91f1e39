package order

import (
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"
	"ecommerce/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemNotFound is returned when a requested item is not part of the order.
	ErrItemNotFound = errors.New("item not found in order")

	// ErrDuplicateItem is returned when adding an item whose id is already
	// present in the order's collection.
	ErrDuplicateItem = errors.New("item with the same id already in order")
)

// Order represents a customer order in the system. It is the aggregate root
// that owns the item collection and guarantees its internal consistency.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer reference
//   - Every owned item carries this order's id as its owner reference
//   - The total is always derived from the live item collection, never stored
//   - Status changes follow the transition table in Status
//   - Can only be created through NewOrder or RestoreOrder
//
// The item collection may be transiently empty while a caller replaces items
// one at a time; the non-empty invariant is enforced at the service boundary
// before the order is committed, not inside the aggregate's mutators.
//
// The Order struct uses private fields to ensure encapsulation; the item
// collection can only be mutated through AddItem and RemoveItem.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer who placed the order
	customerID kernel.UUID

	// orderDate is the date the order was placed
	orderDate time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items is the owned collection of order lines
	items []*Item

	// guard ensures the order was created via a constructor
	guard guard.ConstructorGuard
}

// NewOrder creates a new Order for a customer with the initial status
// AwaitingPayment and an empty item collection. Items are added through
// AddItem; persisting an order with no items is rejected at the service
// boundary.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Customer placing the order (must be a valid UUID)
//   - orderDate: Date the order was placed
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// Example:
//
//	order, err := NewOrder(kernel.NewUUID(), customerID, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	if err := order.AddItem(item); err != nil {
//	    // Handle item error
//	}
func NewOrder(id kernel.UUID, customerID kernel.UUID, orderDate time.Time) (*Order, error) {
	order := &Order{
		status: AwaitingPayment,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder, it restores the persisted status and item collection.
//
// Every restored item must already carry this order's id as its owner
// reference; a mismatch means the stored data violates aggregate integrity
// and restoration fails.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	orderDate time.Time,
	status Status,
	items []*Item,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setOrderDate(orderDate),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// constructor. This prevents bypassing validation by directly instantiating
// the struct, and should be called when reconstructing orders from persistence.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// OrderDate returns the date the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's item collection.
// The returned slice is a copy to prevent external modification; the items
// themselves are the aggregate's entities and must not be detached directly.
func (o *Order) Items() []*Item {
	out := make([]*Item, len(o.items))
	copy(out, o.items)
	return out
}

// HasItems reports whether the order currently owns at least one item.
func (o *Order) HasItems() bool {
	return len(o.items) > 0
}

// ItemByID returns the owned item with the given id.
// Navigation always goes through the owning order; returns ErrItemNotFound
// when no such item exists.
func (o *Order) ItemByID(id kernel.UUID) (*Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	for _, item := range o.items {
		if item.ID().IsEqual(id) {
			return item, nil
		}
	}

	return nil, ErrItemNotFound
}

// AddItem inserts an item into the order's collection and sets the item's
// owner reference to this order. This is the only sanctioned way to attach
// an item.
//
// The operation does not persist anything; the caller controls the
// transaction boundary.
//
// Returns:
//   - ErrDuplicateItem if an item with the same id is already in the order
//   - ErrItemAlreadyAttached if the item belongs to a different order
//   - a validation error if the item is invalid
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range o.items {
		if existing.IsEqual(item) {
			return ErrDuplicateItem
		}
	}

	if err := item.attachTo(o.id); err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// RemoveItem removes the item with the given id from the collection and
// clears its owner reference. This is the only sanctioned way to detach an
// item, which prevents both the "detached but still listed" and the "listed
// with a stale owner reference" states.
//
// A component replacing an order's item set removes and adds items through
// these methods within a single transactional unit of work.
func (o *Order) RemoveItem(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(id) {
			item.detach()
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			return nil
		}
	}

	return ErrItemNotFound
}

// Total returns the sum of Subtotal over the live item collection.
//
// The total is recomputed on every call starting from the additive identity
// for Money (exact zero), so an order with a freshly emptied collection
// reports a zero total rather than failing. The result is independent of
// item insertion order because decimal addition is exact.
func (o *Order) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ChangeStatus transitions the order to the target status.
//
// The transition table is consulted before any mutation; on an illegal pair
// (including re-applying the current status) the order is left unmodified and
// an *InvalidStatusTransitionError is returned.
func (o *Order) ChangeStatus(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the order's customer reference.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

// setOrderDate validates and sets the date the order was placed.
// This is a private method used only during construction.
func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

// setStatus validates and sets the order's status.
// Used during restoration; live status changes go through ChangeStatus.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems sets the order's item collection from persistent state.
// Every item must be valid and must already reference this order as owner.
func (o *Order) setItems(items []*Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}

		if !item.OrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidError("item does not belong to this order")
		}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
