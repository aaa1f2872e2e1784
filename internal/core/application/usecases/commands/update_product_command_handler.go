package commands

import (
	"context"

	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
)

// UpdateProductCommandHandler replaces a product's fields wholesale using an
// optimistic-version check on write.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates the handler.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) (UpdateProductCommandHandler, error) {
	if uowFactory == nil {
		return UpdateProductCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return UpdateProductCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted product.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	in := cmd.Input()
	if err := existing.Update(in.Name, in.Description, in.Price, in.StockQuantity); err != nil {
		return nil, err
	}

	savedProduct, err := uow.ProductRepository().Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedProduct, nil
}

// PatchProductCommandHandler merges sparse field changes into a product.
type PatchProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewPatchProductCommandHandler creates the handler.
func NewPatchProductCommandHandler(uowFactory ProductUoWFactory) (PatchProductCommandHandler, error) {
	if uowFactory == nil {
		return PatchProductCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}

	return PatchProductCommandHandler{uowFactory: uowFactory}, nil
}

// Handle executes the command and returns the persisted product.
func (h PatchProductCommandHandler) Handle(ctx context.Context, cmd PatchProductCommand) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	existing, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err := existing.ApplyPatch(cmd.Patch()); err != nil {
		return nil, err
	}

	savedProduct, err := uow.ProductRepository().Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return savedProduct, nil
}
