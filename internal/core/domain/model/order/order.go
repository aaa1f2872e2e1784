package order

import (
	"errors"
	"time"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/shared"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root of the ordering domain. It references one
// customer, owns an ordered collection of line items (removed together with
// the order), and moves through the Status state machine.
//
// Invariants:
//   - a customer reference is required
//   - the item collection is never empty at creation
//   - orderDate is stamped once at creation from the server clock
//   - status changes only through ChangeStatus, which consults the machine
type Order struct {
	shared.Entity

	customer      *customer.Customer
	items         []Item
	status        Status
	paymentMethod PaymentMethod
	orderDate     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates an order for the given customer and line items. The
// initial status is derived from the payment method (CASH starts ACCEPTED,
// everything else CREATED) and the order date is stamped from now, in UTC.
func NewOrder(c *customer.Customer, items []Item, paymentMethod PaymentMethod, now time.Time) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("orderItems")
	}

	return &Order{
		customer:      c,
		items:         items,
		status:        paymentMethod.InitialOrderStatus(),
		paymentMethod: paymentMethod,
		orderDate:     now.UTC(),
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The item collection
// may be nil when the order is materialized without its lines; totals then
// report as absent.
func RestoreOrder(
	entity shared.Entity,
	c *customer.Customer,
	items []Item,
	status Status,
	paymentMethod PaymentMethod,
	orderDate time.Time,
) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := paymentMethod.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		Entity:        entity,
		customer:      c,
		items:         items,
		status:        status,
		paymentMethod: paymentMethod,
		orderDate:     orderDate,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// Customer returns the referenced customer.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// Items returns the owned line items; nil when not loaded.
func (o *Order) Items() []Item {
	return o.items
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentMethod returns how the order is paid.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// OrderDate returns the creation timestamp, stamped once.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Totals derives item count and monetary total from the line items.
// Returns nil when the items are not loaded.
func (o *Order) Totals() *Totals {
	return CalculateTotals(o.items)
}

// ChangeStatus moves the order to the requested status after the state
// machine approves the transition. Requesting the current status is a no-op.
func (o *Order) ChangeStatus(next Status) error {
	if err := o.status.CanTransitionTo(next); err != nil {
		return err
	}

	o.status = next
	return nil
}

// AssignCustomer points the order at a different customer.
func (o *Order) AssignCustomer(c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	o.customer = c
	return nil
}

// ChangePaymentMethod replaces the payment method. It does not revisit the
// initial-status rule; status is governed solely by the state machine after
// creation.
func (o *Order) ChangePaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}

	o.paymentMethod = m
	return nil
}

// ReplaceItems swaps the whole line item collection. Items are never edited
// one by one — only the full order can be replaced. Stock bookkeeping is not
// re-run for replacements.
func (o *Order) ReplaceItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("orderItems")
	}

	o.items = items
	return nil
}
