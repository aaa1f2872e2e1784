package ports

import (
	"context"

	"ordersapp/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and returns it with refreshed system fields.
	Add(ctx context.Context, aggregate *product.Product) (*product.Product, error)

	// Update persists changes to an existing product using an
	// optimistic-version check. Order creation relies on this to detect a
	// concurrent stock mutation instead of applying a decrement against a
	// stale read.
	Update(ctx context.Context, aggregate *product.Product) (*product.Product, error)

	// Get retrieves a product by id.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetBatch retrieves all products for the given ids in one round trip.
	// Missing ids are simply absent from the result; the caller decides
	// whether that is an error.
	GetBatch(ctx context.Context, ids []int64) ([]*product.Product, error)

	// Delete removes a product by id.
	Delete(ctx context.Context, id int64) error
}
