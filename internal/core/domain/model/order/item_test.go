package order_test

import (
	"testing"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustQuantity(t *testing.T, value int) kernel.Quantity {
	t.Helper()
	qty, err := kernel.NewQuantity(value)
	require.NoError(t, err)
	return qty
}

func mustMoney(t *testing.T, raw string) kernel.Money {
	t.Helper()
	money, err := kernel.MoneyFromString(raw)
	require.NoError(t, err)
	return money
}

func mustItem(t *testing.T, quantity int, unitPrice string) *order.Item {
	t.Helper()
	item, err := order.NewItem(
		kernel.NewUUID(),
		kernel.NewUUID(),
		mustQuantity(t, quantity),
		mustMoney(t, unitPrice),
	)
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("should create item with valid parameters", func(t *testing.T) {
		id := kernel.NewUUID()
		productID := kernel.NewUUID()
		quantity := mustQuantity(t, 2)
		unitPrice := mustMoney(t, "10.50")

		item, err := order.NewItem(id, productID, quantity, unitPrice)

		require.NoError(t, err)
		assert.NoError(t, item.Validate())
		assert.Equal(t, id, item.ID())
		assert.Equal(t, productID, item.ProductID())
		assert.True(t, item.Quantity().IsEqual(quantity))
		assert.True(t, item.UnitPrice().IsEqual(unitPrice))
	})

	t.Run("should create item without an owning order", func(t *testing.T) {
		item := mustItem(t, 1, "5.00")

		require.Error(t, item.OrderID().Validate())
	})

	t.Run("should reject zero unit price", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.NewUUID(),
			kernel.NewUUID(),
			mustQuantity(t, 1),
			kernel.ZeroMoney(),
		)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty identifiers", func(t *testing.T) {
		_, err := order.NewItem(
			kernel.UUID{},
			kernel.NewUUID(),
			mustQuantity(t, 1),
			mustMoney(t, "5.00"),
		)

		require.Error(t, err)
	})
}

func TestRestoreItem(t *testing.T) {
	t.Run("should restore item with its owning order", func(t *testing.T) {
		orderID := kernel.NewUUID()

		item, err := order.RestoreItem(
			kernel.NewUUID(),
			orderID,
			kernel.NewUUID(),
			mustQuantity(t, 3),
			mustMoney(t, "7.25"),
		)

		require.NoError(t, err)
		assert.NoError(t, item.Validate())
		assert.Equal(t, orderID, item.OrderID())
	})

	t.Run("should reject empty order identifier", func(t *testing.T) {
		_, err := order.RestoreItem(
			kernel.NewUUID(),
			kernel.UUID{},
			kernel.NewUUID(),
			mustQuantity(t, 1),
			mustMoney(t, "5.00"),
		)

		require.Error(t, err)
	})
}

func TestItem_Validate(t *testing.T) {
	t.Run("should reject item created without constructor", func(t *testing.T) {
		item := &order.Item{}

		err := item.Validate()

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})

	t.Run("should reject nil item", func(t *testing.T) {
		var item *order.Item

		require.ErrorIs(t, item.Validate(), order.ErrItemIsNotConstructed)
	})
}

func TestItem_Subtotal(t *testing.T) {
	t.Run("should derive subtotal as unit price times quantity", func(t *testing.T) {
		item := mustItem(t, 3, "10.00")

		assert.Equal(t, "30.00", item.Subtotal().String())
	})

	t.Run("should stay exact for cent amounts", func(t *testing.T) {
		item := mustItem(t, 7, "0.10")

		assert.Equal(t, "0.70", item.Subtotal().String())
	})
}

func TestItem_IsEqual(t *testing.T) {
	t.Run("should compare by identifier only", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := order.NewItem(id, kernel.NewUUID(), mustQuantity(t, 1), mustMoney(t, "5.00"))
		require.NoError(t, err)
		b, err := order.NewItem(id, kernel.NewUUID(), mustQuantity(t, 9), mustMoney(t, "1.00"))
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(mustItem(t, 1, "5.00")))
		assert.False(t, a.IsEqual(nil))
	})
}
