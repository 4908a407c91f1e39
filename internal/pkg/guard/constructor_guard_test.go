package guard_test

import (
	"errors"
	"testing"

	"ecommerce/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		guard := guard.NewConstructorGuard()

		// Then
		customError := errors.New("test object not constructed")
		require.NoError(t, guard.Validate(customError))
		require.NoError(t, guard.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		customError := errors.New("not constructed")

		// When
		err := guard.Validate(customError)

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var guard guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := guard.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage in a domain object.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Sku struct {
		code  string
		guard guard.ConstructorGuard
	}

	var errSkuNotConstructed = errors.New("Sku must be created via NewSku")

	newSku := func(code string) (Sku, error) {
		if code == "" {
			return Sku{}, errors.New("code is required")
		}
		return Sku{code: code, guard: guard.NewConstructorGuard()}, nil
	}

	validateSku := func(s Sku) error {
		return s.guard.Validate(errSkuNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		// When
		sku, err := newSku("SKU-001")

		// Then
		require.NoError(t, err)
		require.NoError(t, validateSku(sku))
		assert.Equal(t, "SKU-001", sku.code)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		// Given
		var sku Sku // zero value

		// When
		err := validateSku(sku)

		// Then
		require.Error(t, err)
		assert.Equal(t, errSkuNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newSku("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code is required")
	})
}

// TestConstructorGuardDefaultError verifies the default error behavior.
func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardImmutability verifies that a guard can be copied by value
// without losing its constructed state.
func TestConstructorGuardImmutability(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		// Given
		guard := guard.NewConstructorGuard()
		testError := errors.New("test error")

		// When
		guardCopy := guard

		// Then
		require.NoError(t, guard.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
