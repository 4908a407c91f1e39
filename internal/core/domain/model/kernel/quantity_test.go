package kernel_test

import (
	"fmt"
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("should create quantity from positive counts", func(t *testing.T) {
		for _, value := range []int{1, 2, 100, 10000} {
			t.Run(fmt.Sprintf("should accept %d", value), func(t *testing.T) {
				qty, err := kernel.NewQuantity(value)

				require.NoError(t, err)
				assert.Equal(t, value, qty.Value())
				assert.NoError(t, qty.Validate())
			})
		}
	})

	t.Run("should reject counts below one", func(t *testing.T) {
		for _, value := range []int{0, -1, -100} {
			t.Run(fmt.Sprintf("should reject %d", value), func(t *testing.T) {
				_, err := kernel.NewQuantity(value)

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			})
		}
	})
}

func TestQuantity_Validate(t *testing.T) {
	t.Run("should reject the zero value", func(t *testing.T) {
		var qty kernel.Quantity

		err := qty.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestQuantity_IsEqual(t *testing.T) {
	t.Run("should compare by value", func(t *testing.T) {
		a, _ := kernel.NewQuantity(3)
		b, _ := kernel.NewQuantity(3)
		c, _ := kernel.NewQuantity(4)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}
