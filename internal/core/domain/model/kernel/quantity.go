package kernel

import (
	"fmt"

	"ecommerce/internal/pkg/errs"
)

// quantityMin is the smallest quantity an order item may carry.
const quantityMin = 1

// Quantity is a value object representing a positive integer item count.
// The zero value is invalid; a Quantity must be created via NewQuantity.
//
// Example:
//
//	qty, err := kernel.NewQuantity(3)
//	if err != nil {
//	    // quantity below 1
//	}
type Quantity struct {
	value int
}

// NewQuantity creates a Quantity from an integer count.
// Counts below 1 are rejected with a ValueIsInvalidError.
func NewQuantity(value int) (Quantity, error) {
	if value < quantityMin {
		return Quantity{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than or equal to %d", value, quantityMin),
		)
	}

	return Quantity{value: value}, nil
}

// Value returns the integer count.
func (q Quantity) Value() int {
	return q.value
}

// Validate checks that the quantity was created through NewQuantity.
// The zero value fails validation because it is below the minimum.
func (q Quantity) Validate() error {
	if q.value < quantityMin {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than or equal to %d", q.value, quantityMin),
		)
	}
	return nil
}

// IsEqual compares two quantities by value.
func (q Quantity) IsEqual(other Quantity) bool {
	return q.value == other.value
}
