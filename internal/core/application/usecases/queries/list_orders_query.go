package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrListOrdersQueryIsNotConstructed is returned when a ListOrdersQuery was
// not created via NewListOrdersQuery.
var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

var orderSortColumns = map[string]string{
	"id":        "id",
	"orderDate": "order_date",
	"status":    "status",
}

// OrderFilter narrows an order listing. Nil fields apply no predicate. Each
// predicate is an explicit equality clause — filters are enumerated here,
// not derived from a prototype object.
type OrderFilter struct {
	CustomerID *int64
	Status     *order.Status
}

// ListOrdersQuery fetches one page of order summaries.
type ListOrdersQuery struct {
	filter OrderFilter
	page   ports.PageRequest

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates and creates the query.
func NewListOrdersQuery(filter OrderFilter, page ports.PageRequest) (ListOrdersQuery, error) {
	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	if filter.CustomerID != nil && *filter.CustomerID <= 0 {
		return ListOrdersQuery{}, errs.NewValueIsRequiredError("customerId")
	}
	if err := validatePageRequest(page, orderSortColumns); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Filter returns the listing predicates.
func (q ListOrdersQuery) Filter() OrderFilter { return q.filter }

// Page returns the requested page slice.
func (q ListOrdersQuery) Page() ports.PageRequest { return q.page }

// OrderSummaryResponse is one row of an order listing; line items and totals
// are only materialized by the details query.
type OrderSummaryResponse struct {
	ID            int64     `json:"id"`
	CustomerID    int64     `json:"customerId"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"paymentMethod"`
	OrderDate     time.Time `json:"orderDate"`
}

// ListOrdersQueryHandler pages through orders.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates the handler.
func NewListOrdersQueryHandler(db *gorm.DB) (ListOrdersQueryHandler, error) {
	if db == nil {
		return ListOrdersQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return ListOrdersQueryHandler{db: db}, nil
}

// Handle executes the query.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ports.Page[OrderSummaryResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[OrderSummaryResponse]{}, err
	}

	base := h.db.WithContext(ctx).Table("orders")
	if query.Filter().CustomerID != nil {
		base = base.Where("customer_id = ?", *query.Filter().CustomerID)
	}
	if query.Filter().Status != nil {
		base = base.Where("status = ?", string(*query.Filter().Status))
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.Page[OrderSummaryResponse]{}, err
	}

	var rows []orderRow
	err := base.
		Order(orderClause(query.Page(), orderSortColumns)).
		Limit(query.Page().Size).
		Offset(query.Page().Offset()).
		Find(&rows).Error
	if err != nil {
		return ports.Page[OrderSummaryResponse]{}, err
	}

	items := make([]OrderSummaryResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, OrderSummaryResponse{
			ID:            row.ID,
			CustomerID:    row.CustomerID,
			Status:        row.Status,
			PaymentMethod: row.PaymentMethod,
			OrderDate:     row.OrderDate,
		})
	}

	return ports.NewPage(items, query.Page(), total), nil
}
