package order

import (
	"fmt"

	"ordersapp/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It is persisted by its
// symbolic name so stored data survives reordering of the constant set.
//
// State transitions:
//
//	CREATED ──┬──> ACCEPTED ──> SENT ──> DELIVERED
//	          │
//	          └──> CANCELLED
//
// DELIVERED and CANCELLED are terminal. Requesting the current status again
// is always a no-op success.
type Status string

const (
	// StatusCreated is the initial status for non-cash orders.
	StatusCreated Status = "CREATED"

	// StatusAccepted means the order is confirmed; cash orders start here.
	StatusAccepted Status = "ACCEPTED"

	// StatusSent means the order left the warehouse.
	StatusSent Status = "SENT"

	// StatusDelivered is the successful terminal state.
	StatusDelivered Status = "DELIVERED"

	// StatusCancelled is the abandoned terminal state.
	StatusCancelled Status = "CANCELLED"
)

// allowedTransitions is the full decision table for the status machine.
// Same-status requests are handled before the lookup, so the table only
// lists genuine state changes.
var allowedTransitions = map[Status][]Status{
	StatusCreated:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusSent},
	StatusSent:      {StatusDelivered},
	StatusDelivered: {},
	StatusCancelled: {},
}

// ParseStatus converts an external string into a Status.
func ParseStatus(value string) (Status, error) {
	s := Status(value)
	if err := s.Validate(); err != nil {
		return "", err
	}
	return s, nil
}

// Validate checks the status is one of the known states.
func (s Status) Validate() error {
	if _, ok := allowedTransitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("order status",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String returns the symbolic name of the status.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo validates a requested status change against the decision
// table. Requesting the current status is an idempotent success. A rejected
// pair is reported with both states named.
func (s Status) CanTransitionTo(next Status) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}

	if s == next {
		return nil
	}

	for _, allowed := range allowedTransitions[s] {
		if next == allowed {
			return nil
		}
	}

	return errs.NewValueIsInvalidErrorWithCause("order status",
		fmt.Errorf("invalid order status change %s -> %s", s, next))
}
