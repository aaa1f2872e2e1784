package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/pkg/errs"
)

func validCustomerInput() commands.CustomerInput {
	return commands.CustomerInput{
		FirstName:  "Jan",
		LastName:   "Kowalski",
		Email:      "jan.kowalski@example.com",
		Address:    "ul. Polna 1",
		City:       "Warszawa",
		PostalCode: "00-001",
		Country:    "PL",
		Phone:      "+48123456789",
	}
}

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid customer", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewCreateCustomerCommandHandler(customerUoWFactory{uow: uow})
		require.NoError(t, err)

		saved := restoredCustomer(1)
		uow.Customers.On("Add", mock.Anything, mock.AnythingOfType("*customer.Customer")).
			Return(saved, nil)

		cmd, err := commands.NewCreateCustomerCommand(validCustomerInput())
		require.NoError(t, err)

		got, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID())
		uow.AssertCalled(t, "Commit", mock.Anything)
	})

	t.Run("missing field fails before any write", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewCreateCustomerCommandHandler(customerUoWFactory{uow: uow})
		require.NoError(t, err)

		input := validCustomerInput()
		input.Email = ""

		cmd, err := commands.NewCreateCustomerCommand(input)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		uow.Customers.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestUpdateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	uow := NewMockOrderUoW()
	uow.expectTx()
	handler, err := commands.NewUpdateCustomerCommandHandler(customerUoWFactory{uow: uow})
	require.NoError(t, err)

	existing := restoredCustomer(1)
	uow.Customers.On("Get", mock.Anything, int64(1)).Return(existing, nil)
	uow.Customers.On("Update", mock.Anything, existing).Return(existing, nil)

	input := validCustomerInput()
	input.City = "Kraków"

	cmd, err := commands.NewUpdateCustomerCommand(1, input)
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "Kraków", updated.City())
}

func TestPatchCustomerCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only provided fields", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewPatchCustomerCommandHandler(customerUoWFactory{uow: uow})
		require.NoError(t, err)

		existing := restoredCustomer(1)
		uow.Customers.On("Get", mock.Anything, int64(1)).Return(existing, nil)
		uow.Customers.On("Update", mock.Anything, existing).Return(existing, nil)

		cmd, err := commands.NewPatchCustomerCommand(1, customer.Patch{Phone: ptr("+48000000000")})
		require.NoError(t, err)

		patched, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "+48000000000", patched.Phone())
		assert.Equal(t, "Jan", patched.FirstName())
	})

	t.Run("blanking a required field is rejected", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewPatchCustomerCommandHandler(customerUoWFactory{uow: uow})
		require.NoError(t, err)

		existing := restoredCustomer(1)
		uow.Customers.On("Get", mock.Anything, int64(1)).Return(existing, nil)

		cmd, err := commands.NewPatchCustomerCommand(1, customer.Patch{Email: ptr("")})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		uow.Customers.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteCustomerCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	uow := NewMockOrderUoW()
	uow.expectTx()
	handler, err := commands.NewDeleteCustomerCommandHandler(customerUoWFactory{uow: uow})
	require.NoError(t, err)

	uow.Customers.On("Delete", mock.Anything, int64(1)).Return(nil)

	cmd, err := commands.NewDeleteCustomerCommand(1)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	uow.AssertCalled(t, "Commit", mock.Anything)
}
