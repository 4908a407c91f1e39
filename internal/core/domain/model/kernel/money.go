package kernel

import (
	"fmt"

	"ecommerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the maximum number of fractional digits a monetary amount may carry.
const moneyScale = 2

// Money is a value object representing an exact decimal monetary amount.
// It wraps github.com/shopspring/decimal to guarantee that no monetary
// computation ever passes through binary floating point.
//
// A Money amount is never negative and carries at most two fractional digits.
// The zero value is a valid representation of zero money, which makes Money
// suitable as the additive identity when folding item subtotals into a total.
//
// Money is immutable: every arithmetic operation returns a new value.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("10.00")
//	if err != nil {
//	    // handle invalid amount
//	}
//
//	qty, _ := kernel.NewQuantity(2)
//	subtotal := price.MulQuantity(qty) // 20.00, exact
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns the additive identity for Money (exactly 0.00).
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money value from a decimal amount.
//
// The amount must be non-negative and must not carry more than two significant
// fractional digits. Amounts whose extra digits are trailing zeros (e.g. "10.500")
// are accepted because they equal their two-digit truncation.
//
// Returns:
//   - Money: the validated monetary amount
//   - error: ValueIsInvalidError if the amount is negative or over-precise
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	if !amount.Equal(amount.Truncate(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s has more than %d fractional digits", amount.String(), moneyScale),
		)
	}

	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "25.50" into a Money value.
// The same validation rules as NewMoney apply.
//
// This function is typically used when reconstructing amounts from persistence
// or parsing them from transport payloads.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}

	return NewMoney(amount)
}

// Add returns the exact sum of two Money values.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulQuantity returns the exact product of the amount and an item quantity.
// Multiplying a two-digit amount by an integer never increases the scale,
// so the result is always a valid Money value.
func (m Money) MulQuantity(q Quantity) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(q.Value())))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two Money values numerically, ignoring representation
// differences such as trailing zeros ("10.5" equals "10.50").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
// It is used by persistence adapters to map Money onto numeric columns.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two fractional digits,
// e.g. "25.50". This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
