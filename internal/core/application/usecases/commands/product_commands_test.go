package commands_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
)

func TestCreateProductCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid product", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewCreateProductCommandHandler(productUoWFactory{uow: uow})
		require.NoError(t, err)

		saved := restoredProduct(1, "19.99", 5)
		uow.Products.On("Add", mock.Anything, mock.AnythingOfType("*product.Product")).
			Return(saved, nil)

		cmd, err := commands.NewCreateProductCommand(commands.ProductInput{
			Name:          "usb cable",
			Description:   "2m, braided",
			Price:         decimal.RequireFromString("19.99"),
			StockQuantity: 5,
		})
		require.NoError(t, err)

		got, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, int64(1), got.ID())
	})

	t.Run("negative initial stock is rejected", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewCreateProductCommandHandler(productUoWFactory{uow: uow})
		require.NoError(t, err)

		cmd, err := commands.NewCreateProductCommand(commands.ProductInput{
			Name:          "usb cable",
			Price:         decimal.RequireFromString("19.99"),
			StockQuantity: -1,
		})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.Products.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestUpdateProductCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	uow := NewMockOrderUoW()
	uow.expectTx()
	handler, err := commands.NewUpdateProductCommandHandler(productUoWFactory{uow: uow})
	require.NoError(t, err)

	existing := restoredProduct(1, "19.99", 5)
	uow.Products.On("Get", mock.Anything, int64(1)).Return(existing, nil)
	uow.Products.On("Update", mock.Anything, existing).Return(existing, nil)

	cmd, err := commands.NewUpdateProductCommand(1, commands.ProductInput{
		Name:          "usb cable",
		Description:   "restocked",
		Price:         decimal.RequireFromString("17.99"),
		StockQuantity: 50,
	})
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.StockQuantity())
	assert.Equal(t, "17.99", updated.Price().String())
}

func TestPatchProductCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only provided fields", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewPatchProductCommandHandler(productUoWFactory{uow: uow})
		require.NoError(t, err)

		existing := restoredProduct(1, "19.99", 5)
		uow.Products.On("Get", mock.Anything, int64(1)).Return(existing, nil)
		uow.Products.On("Update", mock.Anything, existing).Return(existing, nil)

		newPrice := decimal.RequireFromString("24.99")
		cmd, err := commands.NewPatchProductCommand(1, product.Patch{Price: &newPrice})
		require.NoError(t, err)

		patched, err := handler.Handle(ctx, cmd)
		require.NoError(t, err)
		assert.Equal(t, "24.99", patched.Price().String())
		assert.Equal(t, 5, patched.StockQuantity())
	})

	t.Run("negative patched price is rejected", func(t *testing.T) {
		uow := NewMockOrderUoW()
		uow.expectTx()
		handler, err := commands.NewPatchProductCommandHandler(productUoWFactory{uow: uow})
		require.NoError(t, err)

		existing := restoredProduct(1, "19.99", 5)
		uow.Products.On("Get", mock.Anything, int64(1)).Return(existing, nil)

		bad := decimal.RequireFromString("-1")
		cmd, err := commands.NewPatchProductCommand(1, product.Patch{Price: &bad})
		require.NoError(t, err)

		_, err = handler.Handle(ctx, cmd)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.Products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteProductCommandHandler_Handle(t *testing.T) {
	ctx := context.Background()

	uow := NewMockOrderUoW()
	uow.expectTx()
	handler, err := commands.NewDeleteProductCommandHandler(productUoWFactory{uow: uow})
	require.NoError(t, err)

	uow.Products.On("Delete", mock.Anything, int64(3)).Return(nil)

	cmd, err := commands.NewDeleteProductCommand(3)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))
	uow.AssertCalled(t, "Commit", mock.Anything)
}
