package ports

import (
	"context"
	"time"

	"ordersapp/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is stored together with its line items; items never outlive the
// order that owns them.
type OrderRepository interface {
	// Add persists a new order with its items as one unit and returns the
	// aggregate with refreshed system fields and item ids.
	Add(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Update persists changes to an existing order using an
	// optimistic-version check. Replaced item collections are rewritten
	// wholesale.
	Update(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// Get retrieves an order by id with its customer and line items loaded.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and cascades to its line items.
	Delete(ctx context.Context, id int64) error

	// GetCreatedBefore retrieves orders still in the CREATED status whose
	// order date is older than the cutoff. Line items are not loaded.
	GetCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
