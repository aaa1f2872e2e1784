package commands

import (
	"errors"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrUpdateCustomerCommandIsNotConstructed is returned when an
// UpdateCustomerCommand was not created via NewUpdateCustomerCommand.
var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// ErrPatchCustomerCommandIsNotConstructed is returned when a
// PatchCustomerCommand was not created via NewPatchCustomerCommand.
var ErrPatchCustomerCommandIsNotConstructed = errors.New(
	"PatchCustomerCommand must be created via NewPatchCustomerCommand constructor",
)

// UpdateCustomerCommand is a full replace of a customer's identity fields.
type UpdateCustomerCommand struct {
	customerID int64
	input      CustomerInput

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand validates and creates the command.
func NewUpdateCustomerCommand(customerID int64, input CustomerInput) (UpdateCustomerCommand, error) {
	if customerID <= 0 {
		return UpdateCustomerCommand{}, errs.NewValueIsRequiredError("customerId")
	}

	return UpdateCustomerCommand{
		customerID: customerID,
		input:      input,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the id of the customer being replaced.
func (c UpdateCustomerCommand) CustomerID() int64 { return c.customerID }

// Input returns the replacement fields.
func (c UpdateCustomerCommand) Input() CustomerInput { return c.input }

// PatchCustomerCommand is a partial update; nil patch fields keep the
// stored values.
type PatchCustomerCommand struct {
	customerID int64
	patch      customer.Patch

	guard guard.ConstructorGuard
}

// NewPatchCustomerCommand validates and creates the command.
func NewPatchCustomerCommand(customerID int64, patch customer.Patch) (PatchCustomerCommand, error) {
	if customerID <= 0 {
		return PatchCustomerCommand{}, errs.NewValueIsRequiredError("customerId")
	}

	return PatchCustomerCommand{
		customerID: customerID,
		patch:      patch,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchCustomerCommand) Validate() error {
	return c.guard.Validate(ErrPatchCustomerCommandIsNotConstructed)
}

// CustomerID returns the id of the customer being patched.
func (c PatchCustomerCommand) CustomerID() int64 { return c.customerID }

// Patch returns the sparse field changes.
func (c PatchCustomerCommand) Patch() customer.Patch { return c.patch }
