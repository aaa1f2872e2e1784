package commands

import (
	"errors"

	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrUpdateProductCommandIsNotConstructed is returned when an
// UpdateProductCommand was not created via NewUpdateProductCommand.
var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// ErrPatchProductCommandIsNotConstructed is returned when a
// PatchProductCommand was not created via NewPatchProductCommand.
var ErrPatchProductCommandIsNotConstructed = errors.New(
	"PatchProductCommand must be created via NewPatchProductCommand constructor",
)

// UpdateProductCommand is a full replace of a product's catalog fields.
// Setting the stock quantity directly is how restocking happens.
type UpdateProductCommand struct {
	productID int64
	input     ProductInput

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand validates and creates the command.
func NewUpdateProductCommand(productID int64, input ProductInput) (UpdateProductCommand, error) {
	if productID <= 0 {
		return UpdateProductCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return UpdateProductCommand{
		productID: productID,
		input:     input,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the id of the product being replaced.
func (c UpdateProductCommand) ProductID() int64 { return c.productID }

// Input returns the replacement fields.
func (c UpdateProductCommand) Input() ProductInput { return c.input }

// PatchProductCommand is a partial update; nil patch fields keep the
// stored values.
type PatchProductCommand struct {
	productID int64
	patch     product.Patch

	guard guard.ConstructorGuard
}

// NewPatchProductCommand validates and creates the command.
func NewPatchProductCommand(productID int64, patch product.Patch) (PatchProductCommand, error) {
	if productID <= 0 {
		return PatchProductCommand{}, errs.NewValueIsRequiredError("productId")
	}

	return PatchProductCommand{
		productID: productID,
		patch:     patch,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PatchProductCommand) Validate() error {
	return c.guard.Validate(ErrPatchProductCommandIsNotConstructed)
}

// ProductID returns the id of the product being patched.
func (c PatchProductCommand) ProductID() int64 { return c.productID }

// Patch returns the sparse field changes.
func (c PatchProductCommand) Patch() product.Patch { return c.patch }
