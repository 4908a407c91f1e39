package commands

import (
	"errors"
	"fmt"
	"time"

	"ecommerce/internal/pkg/guard"
)

var (
	ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
		"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("maxAge must be greater than 0")
)

// CancelStaleOrdersCommand represents a request to cancel every order that has
// been awaiting payment for longer than the given age. Issued periodically by
// the background job rather than by users.
type CancelStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel stale orders.
// Validates that the age threshold is positive.
func NewCancelStaleOrdersCommand(maxAge time.Duration) (CancelStaleOrdersCommand, error) {
	staleCommand := CancelStaleOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := staleCommand.setMaxAge(maxAge); err != nil {
		return CancelStaleOrdersCommand{}, err
	}

	return staleCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// MaxAge returns the age beyond which an unpaid order is considered stale.
func (c CancelStaleOrdersCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *CancelStaleOrdersCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return fmt.Errorf("%w: got %s", ErrMaxAgeIsInvalid, maxAge)
	}

	c.maxAge = maxAge
	return nil
}
