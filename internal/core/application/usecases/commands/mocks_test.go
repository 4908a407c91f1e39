package commands_test

import (
	"context"
	"testing"
	"time"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/core/domain/model/product"
	"ecommerce/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetAllAwaitingPaymentBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockProductUoWFactory struct{ mock.Mock }

func (m *MockProductUoWFactory) Create() commands.ProductUoW {
	args := m.Called()
	return args.Get(0).(commands.ProductUoW)
}

func testCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Alice Jones", "alice@example.com")
	require.NoError(t, err)
	return c
}

func testProduct(t *testing.T, price string) *product.Product {
	t.Helper()
	money, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	p, err := product.NewProduct(kernel.NewUUID(), "Keyboard", "Mechanical", money, 10, "peripherals")
	require.NoError(t, err)
	return p
}

func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()
	orderID := kernel.NewUUID()
	price, err := kernel.MoneyFromString("10.00")
	require.NoError(t, err)
	qty, err := kernel.NewQuantity(2)
	require.NoError(t, err)
	item, err := order.RestoreItem(kernel.NewUUID(), orderID, kernel.NewUUID(), qty, price)
	require.NoError(t, err)
	o, err := order.RestoreOrder(orderID, kernel.NewUUID(), time.Now().UTC(), status, []*order.Item{item})
	require.NoError(t, err)
	return o
}
