package order

import "github.com/shopspring/decimal"

// Totals holds the derived order aggregates: item count and monetary total.
// They are never stored — always recomputed from the line items when an
// order is materialized for display.
type Totals struct {
	items int
	price decimal.Decimal
}

// CalculateTotals derives totals from a line item collection using exact
// decimal arithmetic. A nil collection means the items are not known (order
// referenced without its lines loaded) and yields nil — absent totals, not
// zero. An empty, non-nil collection yields zero totals.
func CalculateTotals(items []Item) *Totals {
	if items == nil {
		return nil
	}

	totals := &Totals{price: decimal.Zero}
	for _, item := range items {
		totals.items += item.Quantity()
		totals.price = totals.price.Add(item.Subtotal())
	}

	return totals
}

// Items returns the sum of line quantities.
func (t *Totals) Items() int {
	return t.items
}

// Price returns the exact monetary total.
func (t *Totals) Price() decimal.Decimal {
	return t.price
}
