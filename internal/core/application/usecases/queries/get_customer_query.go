// Package queries contains the read side: handlers that run directly against
// the database and return response shapes, bypassing the aggregates. Writes
// never happen here.
package queries

import (
	"context"
	"errors"
	"strconv"
	"time"

	"gorm.io/gorm"

	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrGetCustomerQueryIsNotConstructed is returned when a GetCustomerQuery was
// not created via NewGetCustomerQuery.
var ErrGetCustomerQueryIsNotConstructed = errors.New(
	"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
)

// GetCustomerQuery fetches a single customer by id.
type GetCustomerQuery struct {
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery validates and creates the query.
func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	if customerID <= 0 {
		return GetCustomerQuery{}, errs.NewValueIsRequiredError("customerId")
	}

	return GetCustomerQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the requested id.
func (q GetCustomerQuery) CustomerID() int64 { return q.customerID }

// CustomerResponse is the read-side shape of a customer.
type CustomerResponse struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	PostalCode string    `json:"postalCode"`
	Country    string    `json:"country"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`
	Version    int       `json:"version"`
}

type customerRow struct {
	ID         int64
	FirstName  string
	LastName   string
	Email      string
	Address    string
	City       string
	PostalCode string
	Country    string
	Phone      string
	CreatedAt  time.Time
	ModifiedAt time.Time
	Version    int
}

// GetCustomerQueryHandler reads customers straight from the database.
type GetCustomerQueryHandler struct {
	db *gorm.DB
}

// NewGetCustomerQueryHandler creates the handler.
func NewGetCustomerQueryHandler(db *gorm.DB) (GetCustomerQueryHandler, error) {
	if db == nil {
		return GetCustomerQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetCustomerQueryHandler{db: db}, nil
}

// Handle executes the query.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	var row customerRow
	err := h.db.WithContext(ctx).
		Table("customers").
		Where("id = ?", query.CustomerID()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CustomerResponse{}, errs.NewObjectNotFoundError("customerId",
			strconv.FormatInt(query.CustomerID(), 10))
	}
	if err != nil {
		return CustomerResponse{}, err
	}

	return CustomerResponse{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Email:      row.Email,
		Address:    row.Address,
		City:       row.City,
		PostalCode: row.PostalCode,
		Country:    row.Country,
		Phone:      row.Phone,
		CreatedAt:  row.CreatedAt,
		ModifiedAt: row.ModifiedAt,
		Version:    row.Version,
	}, nil
}
