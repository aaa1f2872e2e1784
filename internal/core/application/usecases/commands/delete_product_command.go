package commands

import (
	"context"
	"errors"

	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrDeleteProductCommandIsNotConstructed is returned when a
// DeleteProductCommand was not created via NewDeleteProductCommand.
var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand removes a product from the catalog.
type DeleteProductCommand struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand validates and creates the command.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	if productID <= 0 {
		return DeleteProductCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return DeleteProductCommand{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the id of the product to delete.
func (c DeleteProductCommand) ProductID() int64 { return c.productID }

// DeleteProductCommandHandler deletes a product inside a transaction.
type DeleteProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewDeleteProductCommandHandler creates the handler.
func NewDeleteProductCommandHandler(uowFactory ProductUoWFactory) (DeleteProductCommandHandler, error) {
	if uowFactory == nil {
		return DeleteProductCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return DeleteProductCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command.
func (h DeleteProductCommandHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.ProductRepository().Delete(ctx, cmd.ProductID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
