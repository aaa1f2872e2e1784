package commands

import (
	"context"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/pkg/errs"
)

// UpdateCustomerCommandHandler replaces a customer's fields wholesale using
// an optimistic-version check on write.
type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewUpdateCustomerCommandHandler creates the handler.
func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) (UpdateCustomerCommandHandler, error) {
	if uowFactory == nil {
		return UpdateCustomerCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return UpdateCustomerCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted customer.
func (h UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	in := cmd.Input()
	if err := existing.Update(
		in.FirstName, in.LastName, in.Email, in.Address,
		in.City, in.PostalCode, in.Country, in.Phone,
	); err != nil {
		return nil, err
	}

	savedCustomer, err := uow.CustomerRepository().Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedCustomer, nil
}

// PatchCustomerCommandHandler merges sparse field changes into a customer.
type PatchCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewPatchCustomerCommandHandler creates the handler.
func NewPatchCustomerCommandHandler(uowFactory CustomerUoWFactory) (PatchCustomerCommandHandler, error) {
	if uowFactory == nil {
		return PatchCustomerCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return PatchCustomerCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted customer.
func (h PatchCustomerCommandHandler) Handle(ctx context.Context, cmd PatchCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	if err := existing.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}

	savedCustomer, err := uow.CustomerRepository().Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedCustomer, nil
}
