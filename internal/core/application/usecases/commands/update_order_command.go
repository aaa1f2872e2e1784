package commands

import (
	"errors"
	"fmt"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an UpdateOrderCommand
// was not created via NewUpdateOrderCommand.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand is a full replace of an order's mutable fields. A nil
// item slice keeps the existing lines; replacing them does not re-run any
// inventory adjustment.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	customerID    int64
	status        order.Status
	paymentMethod order.PaymentMethod
	items         []OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand validates and creates the command.
func NewUpdateOrderCommand(
	orderID int64,
	customerID int64,
	status order.Status,
	paymentMethod order.PaymentMethod,
	items []OrderItemInput,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setStatus(status),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being replaced.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// CustomerID returns the id of the customer the order should belong to.
func (c UpdateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Status returns the desired order status.
func (c UpdateOrderCommand) Status() order.Status {
	return c.status
}

// PaymentMethod returns the desired payment method.
func (c UpdateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Items returns the replacement lines, or nil to keep the existing ones.
func (c UpdateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateOrderCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *UpdateOrderCommand) setPaymentMethod(paymentMethod order.PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}

func (c *UpdateOrderCommand) setItems(items []OrderItemInput) error {
	if items == nil {
		return nil
	}
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
