package commands_test

import (
	"errors"
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrd := testOrder(t, order.AwaitingPayment)
	cmd, err := commands.NewUpdateOrderStatusCommand(testOrd.ID(), order.Approved)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Approved, testOrd.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateOrderStatusCommand{} // not constructed properly

	factory := new(MockOrderUoWFactory)
	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Approved)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orderRepo.AssertNotCalled(t, "Update")
}

func TestUpdateOrderStatusCommandHandler_Handle_IllegalTransition(t *testing.T) {
	ctx := t.Context()
	testOrd := testOrder(t, order.Shipped)
	cmd, err := commands.NewUpdateOrderStatusCommand(testOrd.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
	assert.Equal(t, order.Shipped, testOrd.Status())
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestUpdateOrderStatusCommandHandler_Handle_IdentityTransition(t *testing.T) {
	ctx := t.Context()
	testOrd := testOrder(t, order.Paid)
	cmd, err := commands.NewUpdateOrderStatusCommand(testOrd.ID(), order.Paid)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidStatusTransition)
}

func TestUpdateOrderStatusCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	testOrd := testOrder(t, order.AwaitingPayment)
	cmd, err := commands.NewUpdateOrderStatusCommand(testOrd.ID(), order.Cancelled)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, testOrd.ID()).Return(testOrd, nil).Once(),
		orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).
			Return(errors.New("update error")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "update error")
}
