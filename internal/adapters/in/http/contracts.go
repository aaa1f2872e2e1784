// Package http exposes the REST API. Handlers translate between wire
// contracts and commands/queries; no business rules live here.
package http

import (
	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body for every non-2xx reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CustomerRequest carries all customer fields for create and full update.
type CustomerRequest struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// CustomerPatchRequest carries optional customer fields; absent (null) fields
// are left untouched.
type CustomerPatchRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Email      *string `json:"email"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	PostalCode *string `json:"postalCode"`
	Country    *string `json:"country"`
	Phone      *string `json:"phone"`
}

// ProductRequest carries all product fields for create and full update.
type ProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
}

// ProductPatchRequest carries optional product fields.
type ProductPatchRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stockQuantity"`
}

// OrderItemRequest is one requested order line.
type OrderItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest starts the order-creation workflow. The initial status
// is derived server-side from the payment method and cannot be supplied.
type CreateOrderRequest struct {
	CustomerID    int64              `json:"customerId"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []OrderItemRequest `json:"orderItems"`
}

// UpdateOrderRequest fully replaces an order's mutable fields. A null item
// list keeps the existing lines.
type UpdateOrderRequest struct {
	CustomerID    int64              `json:"customerId"`
	Status        string             `json:"status"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []OrderItemRequest `json:"orderItems"`
}

// OrderPatchRequest carries optional order fields. Line items cannot be
// patched; use the full update.
type OrderPatchRequest struct {
	CustomerID    *int64  `json:"customerId"`
	Status        *string `json:"status"`
	PaymentMethod *string `json:"paymentMethod"`
}
