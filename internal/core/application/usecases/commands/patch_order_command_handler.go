package commands

import (
	"context"
	"errors"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/pkg/errs"
)

// ErrPatchOrderCommandHandlerIsNotConstructed is returned when the handler
// was not created via NewPatchOrderCommandHandler.
var ErrPatchOrderCommandHandlerIsNotConstructed = errors.New(
	"PatchOrderCommandHandler must be created via NewPatchOrderCommandHandler constructor",
)

// PatchOrderCommandHandler applies a partial update. The status change, if
// requested, is validated first: an illegal transition fails the command
// before any repository write happens.
type PatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPatchOrderCommandHandler creates the handler.
func NewPatchOrderCommandHandler(uowFactory OrderUoWFactory) (PatchOrderCommandHandler, error) {
	if uowFactory == nil {
		return PatchOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return PatchOrderCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted order.
func (h PatchOrderCommandHandler) Handle(ctx context.Context, cmd PatchOrderCommand) (*order.Order, error) {
	if h.uowFactory == nil {
		return nil, ErrPatchOrderCommandHandlerIsNotConstructed
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if cmd.Status() != nil && *cmd.Status() != existing.Status() {
		if err := existing.ChangeStatus(*cmd.Status()); err != nil {
			return nil, err
		}
	}

	if cmd.CustomerID() != nil && *cmd.CustomerID() != existing.Customer().ID() {
		newCustomer, err := uow.CustomerRepository().Get(ctx, *cmd.CustomerID())
		if err != nil {
			return nil, err
		}
		if err := existing.AssignCustomer(newCustomer); err != nil {
			return nil, err
		}
	}

	if cmd.PaymentMethod() != nil {
		if err := existing.ChangePaymentMethod(*cmd.PaymentMethod()); err != nil {
			return nil, err
		}
	}

	savedOrder, err := uow.OrderRepository().Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedOrder, nil
}
