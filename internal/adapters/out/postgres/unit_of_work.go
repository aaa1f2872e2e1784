// Package postgres provides the gorm-backed persistence adapters and the
// unit of work that gives command handlers an atomic transaction boundary.
package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"ordersapp/internal/adapters/out/postgres/customerrepo"
	"ordersapp/internal/adapters/out/postgres/orderrepo"
	"ordersapp/internal/adapters/out/postgres/productrepo"
	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
)

// ErrNoActiveTransaction is returned when Commit is called outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// ErrTransactionAlreadyStarted is returned when Begin is called twice.
var ErrTransactionAlreadyStarted = errors.New("transaction already started")

var _ ports.UnitOfWorkFactory = &UnitOfWorkFactory{}

// UnitOfWorkFactory creates one UnitOfWork per command so concurrent
// commands never share transaction state.
type UnitOfWorkFactory struct {
	db *gorm.DB
}

// NewUnitOfWorkFactory creates the factory.
func NewUnitOfWorkFactory(db *gorm.DB) (*UnitOfWorkFactory, error) {
	if db == nil {
		return nil, errs.NewValueIsRequiredError("db")
	}

	return &UnitOfWorkFactory{db: db}, nil
}

// Create returns a fresh unit of work.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{db: f.db}
}

var _ ports.UnitOfWork = &UnitOfWork{}

// UnitOfWork implements ports.UnitOfWork on a gorm transaction. Repositories
// obtained from it are bound to the active transaction, so every write
// between Begin and Commit lands atomically.
type UnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a database transaction.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionAlreadyStarted
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	u.tx = tx
	return nil
}

// Commit commits the transaction.
func (u *UnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}

	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback rolls back the transaction. After a commit (or without a Begin)
// it is a no-op, which makes it safe to defer unconditionally.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return nil
	}

	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// CustomerRepository returns a repository bound to the current transaction.
func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	repo, _ := customerrepo.NewRepository(u.handle())
	return repo
}

// ProductRepository returns a repository bound to the current transaction.
func (u *UnitOfWork) ProductRepository() ports.ProductRepository {
	repo, _ := productrepo.NewRepository(u.handle())
	return repo
}

// OrderRepository returns a repository bound to the current transaction.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	repo, _ := orderrepo.NewRepository(u.handle())
	return repo
}

// handle is the transaction when one is active, the base connection otherwise.
func (u *UnitOfWork) handle() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}
