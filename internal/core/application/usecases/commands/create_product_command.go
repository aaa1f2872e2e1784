package commands

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrCreateProductCommandIsNotConstructed is returned when a
// CreateProductCommand was not created via NewCreateProductCommand.
var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// ProductInput carries the full set of catalog fields for a product.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
}

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct {
	input ProductInput

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates the command. Field-level validation is
// owned by the Product aggregate and runs in the handler.
func NewCreateProductCommand(input ProductInput) (CreateProductCommand, error) {
	return CreateProductCommand{
		input: input,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Input returns the product fields.
func (c CreateProductCommand) Input() ProductInput { return c.input }

// CreateProductCommandHandler persists new products.
type CreateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewCreateProductCommandHandler creates the handler.
func NewCreateProductCommandHandler(uowFactory ProductUoWFactory) (CreateProductCommandHandler, error) {
	if uowFactory == nil {
		return CreateProductCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return CreateProductCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted product.
func (h CreateProductCommandHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	in := cmd.Input()
	newProduct, err := product.NewProduct(in.Name, in.Description, in.Price, in.StockQuantity)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	savedProduct, err := uow.ProductRepository().Add(ctx, newProduct)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedProduct, nil
}
