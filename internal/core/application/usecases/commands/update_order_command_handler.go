package commands

import (
	"context"
	"errors"
	"fmt"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
)

// ErrUpdateOrderCommandHandlerIsNotConstructed is returned when the handler
// was not created via NewUpdateOrderCommandHandler.
var ErrUpdateOrderCommandHandlerIsNotConstructed = errors.New(
	"UpdateOrderCommandHandler must be created via NewUpdateOrderCommandHandler constructor",
)

// UpdateOrderCommandHandler replaces an order's mutable state. The status
// transition is validated against the lifecycle machine before anything
// else is touched, so an illegal transition leaves the order untouched.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates the handler.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) (UpdateOrderCommandHandler, error) {
	if uowFactory == nil {
		return UpdateOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return UpdateOrderCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted order.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
	if h.uowFactory == nil {
		return nil, ErrUpdateOrderCommandHandlerIsNotConstructed
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

	if cmd.Status() != existing.Status() {
		if err := existing.ChangeStatus(cmd.Status()); err != nil {
			return nil, err
		}
	}

	if cmd.CustomerID() != existing.Customer().ID() {
		newCustomer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
		if err != nil {
			return nil, err
		}
		if err := existing.AssignCustomer(newCustomer); err != nil {
			return nil, err
		}
	}

	if err := existing.ChangePaymentMethod(cmd.PaymentMethod()); err != nil {
		return nil, err
	}

	if cmd.Items() != nil {
		items, err := h.buildItems(ctx, uow, cmd.Items())
		if err != nil {
			return nil, err
		}
		if err := existing.ReplaceItems(items); err != nil {
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

// buildItems resolves replacement lines against the product catalog. Unit
// prices are snapshotted from the current catalog price; stock levels are
// not adjusted by a replace.
func (h UpdateOrderCommandHandler) buildItems(ctx context.Context, uow OrderUoW, inputs []OrderItemInput) ([]order.Item, error) {
	productIDs := make([]int64, 0, len(inputs))
	for _, input := range inputs {
		productIDs = append(productIDs, input.ProductID)
	}

	foundProducts, err := uow.ProductRepository().GetBatch(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[int64]*product.Product, len(foundProducts))
	for _, p := range foundProducts {
		productsByID[p.ID()] = p
	}

	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		p, ok := productsByID[input.ProductID]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderItems",
				fmt.Errorf("invalid product id: %d", input.ProductID))
		}

		item, err := order.NewItem(p, input.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
