// Package guard provides a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes it possible to detect whether
// the struct was built through its designated constructor or is a zero value
// that bypassed validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no specific error was supplied by the caller.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value is
// invalid; only NewConstructorGuard produces a guard that passes validation.
//
// Example:
//
//	type Money struct {
//	    amount decimal.Decimal
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewMoney(amount decimal.Decimal) (Money, error) {
//	    // validate amount...
//	    return Money{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking its owner as constructor-built.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value
// guard it returns notConstructedErr, or ErrDefaultConstructorGuard when
// notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}

	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}

	return notConstructedErr
}
