package order

import (
	"errors"
	"fmt"

	"ecommerce/internal/pkg/errs"
)

// ErrInvalidStatusTransition is the sentinel error wrapped by every
// InvalidStatusTransitionError. Use errors.Is to classify transition failures.
var ErrInvalidStatusTransition = errors.New("status transition is not allowed")

// Status represents the lifecycle state of an order.
// It implements a closed state machine with a static transition table to ensure
// orders follow the correct payment and fulfilment workflow.
//
// State transitions:
//
//	Pending ──> AwaitingPayment ──> Approved ──> Paid ──> Shipped ──> Delivered
//	   │               │                │          │
//	   └───────────────┴────────────────┴──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Shipped orders can no longer be
// cancelled; delivery is already in progress. Identity transitions (X -> X)
// are not in the table and are therefore illegal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is a created order that has not yet been submitted for payment.
	Pending

	// AwaitingPayment is the initial status of every new order: the order is
	// waiting for the payment to be confirmed.
	AwaitingPayment

	// Approved indicates the payment was approved and the order may proceed.
	Approved

	// Paid indicates the payment settled successfully.
	Paid

	// Shipped indicates the order was dispatched for delivery.
	// Shipped orders can no longer be cancelled.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		AwaitingPayment: "AwaitingPayment",
		Approved:        "Approved",
		Paid:            "Paid",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:         "Pending",
		AwaitingPayment: "AwaitingPayment",
		Approved:        "Approved",
		Paid:            "Paid",
		Shipped:         "Shipped",
		Delivered:       "Delivered",
		Cancelled:       "Cancelled",
	}
}

// getTransitionTable returns the static adjacency table of legal transitions.
// A pair absent from the table is illegal; the table carries no self-loops,
// so re-applying the current status is always rejected.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Pending:         {AwaitingPayment, Cancelled},
		AwaitingPayment: {Approved, Cancelled},
		Approved:        {Paid, Cancelled},
		Paid:            {Shipped, Cancelled},
		Shipped:         {Delivered},
		Delivered:       {},
		Cancelled:       {},
	}
}

// InvalidStatusTransitionError reports a status change that the transition
// table does not permit. It carries both ends of the rejected transition so
// callers can distinguish an illegal jump from a repeated application of the
// same status.
type InvalidStatusTransitionError struct {
	From Status
	To   Status
}

// NewInvalidStatusTransitionError creates an error for the rejected (from, to) pair.
func NewInvalidStatusTransitionError(from, to Status) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidStatusTransition, e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error {
	return ErrInvalidStatusTransition
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, AwaitingPayment, Approved, Paid, Shipped,
// Delivered, Cancelled. Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
//
// This method is used to ensure Status values from external sources
// (e.g. database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values. This method implements the
// fmt.Stringer interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as stored or transported ("Paid",
// "AwaitingPayment", ...). Returns an error for names outside the enumeration.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// IsTerminal reports whether the status has no outgoing legal transitions.
// Delivered and Cancelled are the terminal states.
func (s Status) IsTerminal() bool {
	return s.Validate() == nil && len(getTransitionTable()[s]) == 0
}

// CanTransitionTo reports whether the transition from s to target is legal.
//
// This is a pure, total function over the transition table: it has no side
// effects and consults no external state. Any pair not in the table is
// illegal, including identity transitions (s == target) and any pair
// involving an invalid status.
//
// Example:
//
//	order.AwaitingPayment.CanTransitionTo(order.Approved)  // true
//	order.AwaitingPayment.CanTransitionTo(order.Shipped)   // false
//	order.Paid.CanTransitionTo(order.Paid)                 // false, no self-loops
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitionTable()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo performs the transition from s to target.
//
// Returns:
//   - (target, nil) when the transition table allows the pair
//   - (Unknown, *InvalidStatusTransitionError) otherwise; the receiver is
//     unchanged because Status is a value
//
// This method is used by Order.ChangeStatus to enforce the lifecycle.
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, NewInvalidStatusTransitionError(s, target)
	}

	return target, nil
}
