package order

import (
	"fmt"

	"ordersapp/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order. Persisted by symbolic
// name, like Status.
type PaymentMethod string

const (
	PaymentMethodCash   PaymentMethod = "CASH"
	PaymentMethodPayPal PaymentMethod = "PAYPAL"
	PaymentMethodBlik   PaymentMethod = "BLIK"
)

var knownPaymentMethods = map[PaymentMethod]struct{}{
	PaymentMethodCash:   {},
	PaymentMethodPayPal: {},
	PaymentMethodBlik:   {},
}

// ParsePaymentMethod converts an external string into a PaymentMethod.
func ParsePaymentMethod(value string) (PaymentMethod, error) {
	m := PaymentMethod(value)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks the payment method is one of the known values.
func (m PaymentMethod) Validate() error {
	if _, ok := knownPaymentMethods[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method",
			fmt.Errorf("%q is not a valid payment method", string(m)))
	}
	return nil
}

// String returns the symbolic name of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// InitialOrderStatus decides the status a new order starts in: cash orders
// are considered paid on the spot and start ACCEPTED, everything else waits
// in CREATED.
func (m PaymentMethod) InitialOrderStatus() Status {
	if m == PaymentMethodCash {
		return StatusAccepted
	}
	return StatusCreated
}
