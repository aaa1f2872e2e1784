package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/application/usecases/queries"
	"ordersapp/internal/core/domain/model/order"
)

func orderItemInputs(items []OrderItemRequest) []commands.OrderItemInput {
	if items == nil {
		return nil
	}

	inputs := make([]commands.OrderItemInput, 0, len(items))
	for _, item := range items {
		inputs = append(inputs, commands.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return inputs
}

// CreateOrder handles POST /api/v1/orders. The order's initial status is
// derived from the payment method; stock is decremented atomically with the
// order insert.
//
//	@Summary	Create an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		order	body		CreateOrderRequest	true	"order fields"
//	@Success	201		{object}	queries.OrderDetailsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	paymentMethod, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(req.CustomerID, paymentMethod, orderItemInputs(req.Items))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// ListOrders handles GET /api/v1/orders.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		customerId	query		int		false	"filter by customer"
//	@Param		status		query		string	false	"filter by status"
//	@Param		page		query		int		false	"page number, from 0"
//	@Param		size		query		int		false	"page size"
//	@Param		sort		query		string	false	"sort field"
//	@Param		direction	query		string	false	"ASC or DESC"
//	@Success	200			{object}	ports.Page[queries.OrderSummaryResponse]
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	page, err := pageRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid pagination parameters")
	}

	filter := queries.OrderFilter{}
	if raw := ctx.QueryParam("customerId"); raw != "" {
		customerID, ok := parseID(raw)
		if !ok {
			return respondBadRequest(ctx, "invalid customerId filter")
		}
		filter.CustomerID = &customerID
	}
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.ParseStatus(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		filter.Status = &status
	}

	query, err := queries.NewListOrdersQuery(filter, page)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
//
//	@Summary	Get an order with items and derived totals
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		int	true	"order id"
//	@Success	200	{object}	queries.OrderDetailsResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrder handles PUT /api/v1/orders/:id. Status changes run through the
// lifecycle machine; replacing items never re-adjusts stock.
//
//	@Summary	Replace an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"order id"
//	@Param		order	body		UpdateOrderRequest	true	"order fields"
//	@Success	200		{object}	queries.OrderDetailsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{id} [put]
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req UpdateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}
	paymentMethod, err := order.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderCommand(id, req.CustomerID, status, paymentMethod,
		orderItemInputs(req.Items))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// PatchOrder handles PATCH /api/v1/orders/:id.
//
//	@Summary	Patch an order
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"order id"
//	@Param		patch	body		OrderPatchRequest	true	"fields to change"
//	@Success	200		{object}	queries.OrderDetailsResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/orders/{id} [patch]
func (s *Server) PatchOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	var req OrderPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, err := order.ParseStatus(*req.Status)
		if err != nil {
			return respondError(ctx, err)
		}
		status = &parsed
	}

	var paymentMethod *order.PaymentMethod
	if req.PaymentMethod != nil {
		parsed, err := order.ParsePaymentMethod(*req.PaymentMethod)
		if err != nil {
			return respondError(ctx, err)
		}
		paymentMethod = &parsed
	}

	cmd, err := commands.NewPatchOrderCommand(id, req.CustomerID, status, paymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	patched, err := s.handlers.PatchOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(patched))
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Items go with the order;
// stock is not restored.
//
//	@Summary	Delete an order
//	@Tags		orders
//	@Param		id	path	int	true	"order id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [delete]
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
