package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/application/usecases/queries"
	"ordersapp/internal/core/domain/model/product"
)

func productInput(req ProductRequest) commands.ProductInput {
	return commands.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}
}

// CreateProduct handles POST /api/v1/products.
//
//	@Summary	Add a product to the catalog
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		ProductRequest	true	"product fields"
//	@Success	201		{object}	queries.ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateProductCommand(productInput(req))
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(created))
}

// ListProducts handles GET /api/v1/products.
//
//	@Summary	List catalog products
//	@Tags		products
//	@Produce	json
//	@Param		name		query		string	false	"name contains, case-insensitive"
//	@Param		page		query		int		false	"page number, from 0"
//	@Param		size		query		int		false	"page size"
//	@Param		sort		query		string	false	"sort field"
//	@Param		direction	query		string	false	"ASC or DESC"
//	@Success	200			{object}	ports.Page[queries.ProductResponse]
//	@Failure	400			{object}	ErrorResponse
//	@Router		/products [get]
func (s *Server) ListProducts(ctx echo.Context) error {
	page, err := pageRequest(ctx)
	if err != nil {
		return respondBadRequest(ctx, "invalid pagination parameters")
	}

	filter := queries.ProductFilter{}
	if name := ctx.QueryParam("name"); name != "" {
		filter.Name = &name
	}

	query, err := queries.NewListProductsQuery(filter, page)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.ListProducts.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/v1/products/:id.
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		int	true	"product id"
//	@Success	200	{object}	queries.ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (s *Server) GetProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid product id")
	}

	query, err := queries.NewGetProductQuery(id)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.handlers.GetProduct.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateProduct handles PUT /api/v1/products/:id.
//
//	@Summary	Replace a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int				true	"product id"
//	@Param		product	body		ProductRequest	true	"product fields"
//	@Success	200		{object}	queries.ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/products/{id} [put]
func (s *Server) UpdateProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid product id")
	}

	var req ProductRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewUpdateProductCommand(id, productInput(req))
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.handlers.UpdateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(updated))
}

// PatchProduct handles PATCH /api/v1/products/:id.
//
//	@Summary	Patch a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int					true	"product id"
//	@Param		patch	body		ProductPatchRequest	true	"fields to change"
//	@Success	200		{object}	queries.ProductResponse
//	@Failure	404		{object}	ErrorResponse
//	@Failure	409		{object}	ErrorResponse
//	@Router		/products/{id} [patch]
func (s *Server) PatchProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid product id")
	}

	var req ProductPatchRequest
	if err := ctx.Bind(&req); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewPatchProductCommand(id, product.Patch{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if err != nil {
		return respondError(ctx, err)
	}

	patched, err := s.handlers.PatchProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(patched))
}

// DeleteProduct handles DELETE /api/v1/products/:id.
//
//	@Summary	Delete a product
//	@Tags		products
//	@Param		id	path	int	true	"product id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [delete]
func (s *Server) DeleteProduct(ctx echo.Context) error {
	id, ok := pathID(ctx)
	if !ok {
		return respondBadRequest(ctx, "invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(id)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteProduct.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
