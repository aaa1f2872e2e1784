package commands

import (
	"errors"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrPatchOrderCommandIsNotConstructed is returned when a PatchOrderCommand
// was not created via NewPatchOrderCommand.
var ErrPatchOrderCommandIsNotConstructed = errors.New(
	"PatchOrderCommand must be created via NewPatchOrderCommand constructor",
)

// PatchOrderCommand is a partial update of an order. Nil fields mean "leave
// unchanged"; line items cannot be patched, only fully replaced through
// UpdateOrderCommand.
type PatchOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	customerID    *int64
	status        *order.Status
	paymentMethod *order.PaymentMethod

	guard guard.ConstructorGuard
}

// NewPatchOrderCommand validates and creates the command. Provided values
// must be valid; absent values are skipped entirely.
func NewPatchOrderCommand(
	orderID int64,
	customerID *int64,
	status *order.Status,
	paymentMethod *order.PaymentMethod,
) (PatchOrderCommand, error) {
	cmd := PatchOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setStatus(status),
		cmd.setPaymentMethod(paymentMethod),
	); err != nil {
		return PatchOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrPatchOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order being patched.
func (c PatchOrderCommand) OrderID() int64 {
	return c.orderID
}

// CustomerID returns the new customer id, or nil to keep the current one.
func (c PatchOrderCommand) CustomerID() *int64 {
	return c.customerID
}

// Status returns the new status, or nil to keep the current one.
func (c PatchOrderCommand) Status() *order.Status {
	return c.status
}

// PaymentMethod returns the new payment method, or nil to keep the current one.
func (c PatchOrderCommand) PaymentMethod() *order.PaymentMethod {
	return c.paymentMethod
}

func (c *PatchOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}

	c.orderID = orderID
	return nil
}

func (c *PatchOrderCommand) setCustomerID(customerID *int64) error {
	if customerID == nil {
		return nil
	}
	if *customerID <= 0 {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *PatchOrderCommand) setStatus(status *order.Status) error {
	if status == nil {
		return nil
	}
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}

func (c *PatchOrderCommand) setPaymentMethod(paymentMethod *order.PaymentMethod) error {
	if paymentMethod == nil {
		return nil
	}
	if err := paymentMethod.Validate(); err != nil {
		return err
	}

	c.paymentMethod = paymentMethod
	return nil
}
