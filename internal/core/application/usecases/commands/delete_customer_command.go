package commands

import (
	"context"
	"errors"

	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrDeleteCustomerCommandIsNotConstructed is returned when a
// DeleteCustomerCommand was not created via NewDeleteCustomerCommand.
var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand removes a customer record.
type DeleteCustomerCommand struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand validates and creates the command.
func NewDeleteCustomerCommand(customerID int64) (DeleteCustomerCommand, error) {
	if customerID <= 0 {
		return DeleteCustomerCommand{}, errs.NewValueIsRequiredError("customerId")
	}

	return DeleteCustomerCommand{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the id of the customer to delete.
func (c DeleteCustomerCommand) CustomerID() int64 { return c.customerID }

// DeleteCustomerCommandHandler deletes a customer inside a transaction.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates the handler.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) (DeleteCustomerCommandHandler, error) {
	if uowFactory == nil {
		return DeleteCustomerCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return DeleteCustomerCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command.
func (h DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
