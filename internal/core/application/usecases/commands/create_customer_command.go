package commands

import (
	"context"
	"errors"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrCreateCustomerCommandIsNotConstructed is returned when a
// CreateCustomerCommand was not created via NewCreateCustomerCommand.
var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CustomerInput carries the full set of customer identity fields.
type CustomerInput struct {
	FirstName  string
	LastName   string
	Email      string
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
}

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct {
	input CustomerInput

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates the command. Field-level validation is
// owned by the Customer aggregate and runs in the handler.
func NewCreateCustomerCommand(input CustomerInput) (CreateCustomerCommand, error) {
	return CreateCustomerCommand{
		input: input,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Input returns the customer fields.
func (c CreateCustomerCommand) Input() CustomerInput {
	return c.input
}

// CreateCustomerCommandHandler persists new customers.
type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewCreateCustomerCommandHandler creates the handler.
func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) (CreateCustomerCommandHandler, error) {
	if uowFactory == nil {
		return CreateCustomerCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return CreateCustomerCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted customer.
func (h CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	in := cmd.Input()
	newCustomer, err := customer.NewCustomer(
		in.FirstName, in.LastName, in.Email, in.Address,
		in.City, in.PostalCode, in.Country, in.Phone,
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	savedCustomer, err := uow.CustomerRepository().Add(ctx, newCustomer)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedCustomer, nil
}
