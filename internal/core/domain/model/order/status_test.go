package order_test

import (
	"fmt"
	"testing"

	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allStatuses() []order.Status {
	return []order.Status{
		order.Pending,
		order.AwaitingPayment,
		order.Approved,
		order.Paid,
		order.Shipped,
		order.Delivered,
		order.Cancelled,
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every defined status", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should accept %s", status), func(t *testing.T) {
				assert.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(42), order.Status(-1)} {
			t.Run(fmt.Sprintf("should reject %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return the status name", func(t *testing.T) {
		assert.Equal(t, "AwaitingPayment", order.AwaitingPayment.String())
		assert.Equal(t, "Cancelled", order.Cancelled.String())
	})

	t.Run("should return Unknown for invalid values", func(t *testing.T) {
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every defined status", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should parse %s", status), func(t *testing.T) {
				parsed, err := order.StatusFromString(status.String())

				require.NoError(t, err)
				assert.Equal(t, status, parsed)
			})
		}
	})

	t.Run("should reject names outside the enumeration", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "paid", "SHIPPED", "Refunded"} {
			t.Run(fmt.Sprintf("should reject %q", name), func(t *testing.T) {
				_, err := order.StatusFromString(name)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	legal := map[order.Status]map[order.Status]bool{
		order.Pending:         {order.AwaitingPayment: true, order.Cancelled: true},
		order.AwaitingPayment: {order.Approved: true, order.Cancelled: true},
		order.Approved:        {order.Paid: true, order.Cancelled: true},
		order.Paid:            {order.Shipped: true, order.Cancelled: true},
		order.Shipped:         {order.Delivered: true},
		order.Delivered:       {},
		order.Cancelled:       {},
	}

	t.Run("should match the transition table for every pair", func(t *testing.T) {
		for _, from := range allStatuses() {
			for _, to := range allStatuses() {
				t.Run(fmt.Sprintf("%s to %s", from, to), func(t *testing.T) {
					assert.Equal(t, legal[from][to], from.CanTransitionTo(to))
				})
			}
		}
	})

	t.Run("should reject identity transitions", func(t *testing.T) {
		for _, status := range allStatuses() {
			t.Run(fmt.Sprintf("should reject %s to itself", status), func(t *testing.T) {
				assert.False(t, status.CanTransitionTo(status))
			})
		}
	})

	t.Run("should reject transitions involving Unknown", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Pending))
		assert.False(t, order.Pending.CanTransitionTo(order.Unknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should return the target status for a legal transition", func(t *testing.T) {
		next, err := order.AwaitingPayment.TransitionTo(order.Approved)

		require.NoError(t, err)
		assert.Equal(t, order.Approved, next)
	})

	t.Run("should return a typed error for an illegal transition", func(t *testing.T) {
		next, err := order.Shipped.TransitionTo(order.Cancelled)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
		assert.Equal(t, order.Unknown, next)

		var transitionErr *order.InvalidStatusTransitionError
		require.ErrorAs(t, err, &transitionErr)
		assert.Equal(t, order.Shipped, transitionErr.From)
		assert.Equal(t, order.Cancelled, transitionErr.To)
	})

	t.Run("should report both ends of the rejected pair in the message", func(t *testing.T) {
		_, err := order.Delivered.TransitionTo(order.Paid)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Delivered -> Paid")
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should report Delivered and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should report live statuses as non-terminal", func(t *testing.T) {
		for _, status := range []order.Status{
			order.Pending, order.AwaitingPayment, order.Approved, order.Paid, order.Shipped,
		} {
			t.Run(fmt.Sprintf("%s is not terminal", status), func(t *testing.T) {
				assert.False(t, status.IsTerminal())
			})
		}
	})

	t.Run("should report invalid statuses as non-terminal", func(t *testing.T) {
		assert.False(t, order.Unknown.IsTerminal())
	})
}
