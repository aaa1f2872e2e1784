package commands

import (
	"context"
	"errors"
	"time"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrCancelStaleOrdersCommandIsNotConstructed is returned when a
// CancelStaleOrdersCommand was not created via NewCancelStaleOrdersCommand.
var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand cancels orders that were created but never
// progressed within the given time-to-live. CREATED is the only status the
// sweep touches; CANCELLED is reachable from it, so the lifecycle machine
// permits every transition the sweep makes.
type CancelStaleOrdersCommand struct {
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand validates and creates the command.
func NewCancelStaleOrdersCommand(ttl time.Duration) (CancelStaleOrdersCommand, error) {
	if ttl <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsRequiredError("ttl")
	}

	return CancelStaleOrdersCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// TTL returns how long a CREATED order may sit before it is cancelled.
func (c CancelStaleOrdersCommand) TTL() time.Duration {
	return c.ttl
}

// CancelStaleOrdersCommandHandler performs the stale-order sweep in a single
// transaction and reports how many orders it cancelled.
type CancelStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelStaleOrdersCommandHandler creates the handler.
func NewCancelStaleOrdersCommandHandler(uowFactory OrderUoWFactory) (CancelStaleOrdersCommandHandler, error) {
	if uowFactory == nil {
		return CancelStaleOrdersCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return CancelStaleOrdersCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the sweep and returns the number of cancelled orders.
func (h CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	cutoff := time.Now().UTC().Add(-cmd.TTL())

	staleOrders, err := uow.OrderRepository().GetCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range staleOrders {
		if err := staleOrder.ChangeStatus(order.StatusCancelled); err != nil {
			return 0, err
		}
		if _, err := uow.OrderRepository().Update(ctx, staleOrder); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(staleOrders), nil
}
