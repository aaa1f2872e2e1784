package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/application/usecases/queries"
	"ordersapp/internal/core/domain/model/customer"
)

func customerInput(req CustomerRequest) commands.CustomerInput {
	return commands.CustomerInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	}
}

// CreateCustomer handles POST /api/v1/customers.
//
//	@Summary	Register a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		CustomerRequest	true	"customer fields"
//	@Success	201			{object}	queries.CustomerResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/customers [post]
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(customerInput(req))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerToResponse(created))
}

// GetCustomer handles GET /api/v1/customers/:id.
//
//	@Summary	Get a customer
//	@Tags		customers
//	@Produce	json
//	@Param		id	path		int	true	"customer id"
//	@Success	200	{object}	queries.CustomerResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [get]
func (s *Server) GetCustomer(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid customer id")
	}

	query, err := queries.NewGetCustomerQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateCustomer handles PUT /api/v1/customers/:id.
//
//	@Summary	Replace a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id			path		int				true	"customer id"
//	@Param		customer	body		CustomerRequest	true	"customer fields"
//	@Success	200			{object}	queries.CustomerResponse
//	@Failure	404			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/customers/{id} [put]
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var req CustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(id, customerInput(req))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerToResponse(updated))
}

// PatchCustomer handles PATCH /api/v1/customers/:id.
//
//	@Summary	Patch a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"customer id"
//	@Param		patch	body		CustomerPatchRequest	true	"fields to change"
//	@Success	200		{object}	queries.CustomerResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/customers/{id} [patch]
func (s *Server) PatchCustomer(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid customer id")
	}

	var req CustomerPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPatchCustomerCommand(id, customer.Patch{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Address:    req.Address,
		City:       req.City,
		PostalCode: req.PostalCode,
		Country:    req.Country,
		Phone:      req.Phone,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	patched, err := s.handlers.PatchCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, customerToResponse(patched))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
//
//	@Summary	Delete a customer
//	@Tags		customers
//	@Param		id	path	int	true	"customer id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/customers/{id} [delete]
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
