package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command so
// concurrent operations stay isolated.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Workflows that must be
// all-or-nothing (order creation writes the order, its items, and the
// mutated product stock levels as one unit) run every repository call
// through the same unit of work between Begin and Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Rolling back after a
	// successful commit is a no-op error and safe to defer.
	Rollback(ctx context.Context) error

	// CustomerRepository returns a repository bound to the current transaction.
	CustomerRepository() CustomerRepository

	// ProductRepository returns a repository bound to the current transaction.
	ProductRepository() ProductRepository

	// OrderRepository returns a repository bound to the current transaction.
	OrderRepository() OrderRepository
}
