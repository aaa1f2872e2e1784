package order

import (
	"fmt"

	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Item is a line of an order. It belongs to exactly one order (deleted with
// it) and references a product snapshot: the unit price is captured at
// order-creation time and never recomputed from the current product price.
type Item struct {
	id        int64
	product   *product.Product
	quantity  int
	unitPrice decimal.Decimal
}

// NewItem creates a line item for the given product, capturing the product's
// current price as the unit price. Quantity must be positive.
func NewItem(p *product.Product, quantity int) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		product:   p,
		quantity:  quantity,
		unitPrice: p.Price(),
	}, nil
}

// RestoreItem reconstructs a line item from persistence with its stored unit
// price, which may differ from the product's current price.
func RestoreItem(id int64, p *product.Product, quantity int, unitPrice decimal.Decimal) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	return Item{
		id:        id,
		product:   p,
		quantity:  quantity,
		unitPrice: unitPrice,
	}, nil
}

// ID returns the store-assigned line item id, zero before first save.
func (i Item) ID() int64 {
	return i.id
}

// Product returns the referenced product snapshot.
func (i Item) Product() *product.Product {
	return i.product
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit captured at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity in exact decimal arithmetic.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}
