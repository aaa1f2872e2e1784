package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
)

// ErrCreateOrderCommandHandlerIsNotConstructed is returned when the handler
// was not created via NewCreateOrderCommandHandler.
var ErrCreateOrderCommandHandlerIsNotConstructed = errors.New(
	"CreateOrderCommandHandler must be created via NewCreateOrderCommandHandler constructor",
)

// CreateOrderCommandHandler runs the order-creation workflow: resolve the
// customer, resolve and validate every requested product, decrement stock,
// snapshot unit prices into order items, derive the initial status from the
// payment method, and persist everything atomically.
type CreateOrderCommandHandler struct {
	uowFactory          OrderUoWFactory
	rejectNegativeStock bool
}

// NewCreateOrderCommandHandler creates the handler. When rejectNegativeStock
// is set, an order requesting more units than a product has in stock is
// rejected instead of driving the stock level negative.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, rejectNegativeStock bool) (CreateOrderCommandHandler, error) {
	if uowFactory == nil {
		return CreateOrderCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return CreateOrderCommandHandler{
		uowFactory:          uowFactory,
		rejectNegativeStock: rejectNegativeStock,
	}, nil
}

// Handle executes the command and returns the persisted order.
//
// Product resolution is all-or-nothing: the first requested product id, in
// input order, that does not exist fails the whole command before any stock
// is written. Stock decrements and the order insert commit together or not
// at all.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if h.uowFactory == nil {
		return nil, ErrCreateOrderCommandHandlerIsNotConstructed
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	orderCustomer, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}

	productIDs := make([]int64, 0, len(cmd.Items()))
	for _, item := range cmd.Items() {
		productIDs = append(productIDs, item.ProductID)
	}

	foundProducts, err := uow.ProductRepository().GetBatch(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[int64]*product.Product, len(foundProducts))
	for _, p := range foundProducts {
		productsByID[p.ID()] = p
	}

	items := make([]order.Item, 0, len(cmd.Items()))
	for _, input := range cmd.Items() {
		p, ok := productsByID[input.ProductID]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderItems",
				fmt.Errorf("invalid product id: %d", input.ProductID))
		}

		if h.rejectNegativeStock && p.StockQuantity() < input.Quantity {
			return nil, errs.NewValueIsInvalidErrorWithCause("orderItems",
				fmt.Errorf("insufficient stock for product id: %d", input.ProductID))
		}

		item, err := order.NewItem(p, input.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)

		p.SubtractFromStock(input.Quantity)
	}

	newOrder, err := order.NewOrder(orderCustomer, items, cmd.PaymentMethod(), time.Now())
	if err != nil {
		return nil, err
	}

	savedOrder, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	for _, p := range foundProducts {
		if _, err := uow.ProductRepository().Update(ctx, p); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedOrder, nil
}
