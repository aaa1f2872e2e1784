package commands

import (
	"errors"
	"fmt"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemInput is one requested order line: which product and how many.
type OrderItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateOrderCommand represents a request to create a new order for a
// customer with a non-empty list of product/quantity pairs.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID    int64
	paymentMethod order.PaymentMethod
	items         []OrderItemInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates and creates the command: the customer id
// must be set, the item list must not be empty, and every quantity must be
// positive.
func NewCreateOrderCommand(customerID int64, paymentMethod order.PaymentMethod, items []OrderItemInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the ordering customer's id.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// PaymentMethod returns how the order will be paid.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the requested product/quantity pairs in input order.
func (c CreateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemInput) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("orderItems")
	}

	for _, item := range items {
		if item.ProductID <= 0 {
			return errs.NewValueIsRequiredError("orderItems.productId")
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("orderItems.quantity",
				fmt.Errorf("%d is not greater than 0", item.Quantity))
		}
	}

	c.items = items
	return nil
}
