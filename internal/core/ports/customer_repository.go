package ports

import (
	"context"

	"ordersapp/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer and returns it with refreshed system
	// fields (id, timestamps, version).
	Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Update persists changes to an existing customer using an
	// optimistic-version check. A stale version yields a concurrent
	// modification error, distinct from not-found.
	Update(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error)

	// Get retrieves a customer by id.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// Delete removes a customer by id.
	Delete(ctx context.Context, id int64) error
}
