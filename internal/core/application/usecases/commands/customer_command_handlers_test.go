package commands_test

import (
	"testing"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "Alice Jones", "alice@example.com")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	added := customerRepo.Calls[0].Arguments[1].(*customer.Customer)
	assert.Equal(t, "Alice Jones", added.Name())
	customerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCustomerCommandHandler_Handle_DomainValidationError(t *testing.T) {
	ctx := t.Context()
	// Passes command presence checks, fails the domain email shape check.
	cmd, err := commands.NewCreateCustomerCommand(kernel.NewUUID(), "Alice", "not-an-email")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	customerRepo.AssertNotCalled(t, "Add")
}

func TestUpdateCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testCust := testCustomer(t)
	cmd, err := commands.NewUpdateCustomerCommand(testCust.ID(), "Alice Smith", "a.smith@example.com")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCust.ID()).Return(testCust, nil).Once(),
		customerRepo.On("Update", ctx, mock.AnythingOfType("*customer.Customer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", testCust.Name())
	assert.Equal(t, "a.smith@example.com", testCust.Email())
}

func TestUpdateCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewUpdateCustomerCommand(customerID, "Alice", "alice@example.com")
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	customerRepo.AssertNotCalled(t, "Update")
}

func TestDeleteCustomerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testCust := testCustomer(t)
	cmd, err := commands.NewDeleteCustomerCommand(testCust.ID())
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, testCust.ID()).Return(testCust, nil).Once(),
		customerRepo.On("Delete", ctx, testCust.ID()).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	customerRepo.AssertExpectations(t)
}

func TestDeleteCustomerCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	require.NoError(t, err)

	customerRepo := new(MockCustomerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerRepository").Return(customerRepo).Once(),
		customerRepo.On("Get", ctx, customerID).
			Return(nil, errs.NewObjectNotFoundError("customerID", customerID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCustomerCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	customerRepo.AssertNotCalled(t, "Delete")
}
