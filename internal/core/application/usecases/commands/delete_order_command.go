package commands

import (
	"context"
	"errors"

	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a DeleteOrderCommand
// was not created via NewDeleteOrderCommand.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order and its line items. Deleting an order
// does not restock its products.
type DeleteOrderCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand validates and creates the command.
func NewDeleteOrderCommand(orderID int64) (DeleteOrderCommand, error) {
	if orderID <= 0 {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to delete.
func (c DeleteOrderCommand) OrderID() int64 {
	return c.orderID
}

// DeleteOrderCommandHandler deletes an order inside a transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates the handler.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) (DeleteOrderCommandHandler, error) {
	if uowFactory == nil {
		return DeleteOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return DeleteOrderCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command.
func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
