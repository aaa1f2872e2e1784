// Package product provides the Product aggregate owned by the catalog store.
// A product carries a fixed-point price and a stock-quantity counter that the
// order-creation workflow decrements.
package product

import (
	"errors"
	"fmt"

	"ordersapp/internal/core/domain/model/shared"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. Price uses exact decimal arithmetic — currency
// never touches binary floating point.
type Product struct {
	shared.Entity

	name          string
	description   string
	price         decimal.Decimal
	stockQuantity int

	guard guard.ConstructorGuard
}

// NewProduct creates a product. Stock must start non-negative; the price must
// not be negative.
func NewProduct(name, description string, price decimal.Decimal, stockQuantity int) (*Product, error) {
	p := &Product{guard: guard.NewConstructorGuard()}

	if err := p.setFields(name, description, price, stockQuantity); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// system fields. Stock is restored as stored, even if a past order drove it
// negative under the inventory-tracking-only policy.
func RestoreProduct(
	entity shared.Entity,
	name, description string,
	price decimal.Decimal,
	stockQuantity int,
) (*Product, error) {
	p := &Product{Entity: entity, guard: guard.NewConstructorGuard()}

	if err := p.setName(name); err != nil {
		return nil, err
	}
	if err := p.setPrice(price); err != nil {
		return nil, err
	}
	p.description = description
	p.stockQuantity = stockQuantity

	return p, nil
}

// Validate ensures the product was created through a constructor.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) Name() string           { return p.name }
func (p *Product) Description() string    { return p.description }
func (p *Product) Price() decimal.Decimal { return p.price }
func (p *Product) StockQuantity() int     { return p.stockQuantity }

// SubtractFromStock decrements the stock counter by the given quantity.
// No floor is applied here: the default inventory policy only tracks stock,
// so an over-subscribed order may drive it negative. The creation workflow
// optionally rejects such orders before calling this.
func (p *Product) SubtractFromStock(quantity int) {
	p.stockQuantity -= quantity
}

// Update replaces every catalog field wholesale.
func (p *Product) Update(name, description string, price decimal.Decimal, stockQuantity int) error {
	return p.setFields(name, description, price, stockQuantity)
}

// Patch holds a sparse set of field changes; nil fields keep stored values.
type Patch struct {
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	StockQuantity *int
}

// ApplyPatch merges the non-nil patch fields into the product.
func (p *Product) ApplyPatch(patch Patch) error {
	name := p.name
	if patch.Name != nil {
		name = *patch.Name
	}
	description := p.description
	if patch.Description != nil {
		description = *patch.Description
	}
	price := p.price
	if patch.Price != nil {
		price = *patch.Price
	}
	stock := p.stockQuantity
	if patch.StockQuantity != nil {
		stock = *patch.StockQuantity
	}

	return p.setFields(name, description, price, stock)
}

func (p *Product) setFields(name, description string, price decimal.Decimal, stockQuantity int) error {
	if err := p.setName(name); err != nil {
		return err
	}
	if err := p.setPrice(price); err != nil {
		return err
	}
	if stockQuantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stockQuantity",
			fmt.Errorf("%d is negative", stockQuantity))
	}

	p.description = description
	p.stockQuantity = stockQuantity
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is negative", price))
	}
	p.price = price
	return nil
}
