package queries

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its line items and derived totals.
type GetOrderQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderQuery validates and creates the query.
func NewGetOrderQuery(orderID int64) (GetOrderQuery, error) {
	if orderID <= 0 {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("orderId")
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested id.
func (q GetOrderQuery) OrderID() int64 { return q.orderID }

// OrderItemResponse is one line of an order as read from the store. The unit
// price is the snapshot captured at order time, not the current catalog price.
type OrderItemResponse struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// OrderDetailsResponse is the full read-side shape of an order. TotalItems
// and TotalPrice are derived from the lines on every read, never stored;
// they are nil (absent) when the lines are not loaded, which is distinct
// from a zero total.
type OrderDetailsResponse struct {
	ID            int64               `json:"id"`
	CustomerID    int64               `json:"customerId"`
	Status        string              `json:"status"`
	PaymentMethod string              `json:"paymentMethod"`
	OrderDate     time.Time           `json:"orderDate"`
	Items         []OrderItemResponse `json:"orderItems"`
	TotalItems    *int                `json:"totalItems"`
	TotalPrice    *decimal.Decimal    `json:"totalPrice"`
	CreatedAt     time.Time           `json:"createdAt"`
	ModifiedAt    time.Time           `json:"modifiedAt"`
	Version       int                 `json:"version"`
}

type orderRow struct {
	ID            int64
	CustomerID    int64
	Status        string
	PaymentMethod string
	OrderDate     time.Time
	CreatedAt     time.Time
	ModifiedAt    time.Time
	Version       int
}

type orderItemRow struct {
	ID        int64
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// GetOrderQueryHandler reads order details straight from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates the handler.
func NewGetOrderQueryHandler(db *gorm.DB) (GetOrderQueryHandler, error) {
	if db == nil {
		return GetOrderQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetOrderQueryHandler{db: db}, nil
}

// Handle executes the query.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	var row orderRow
	err := h.db.WithContext(ctx).
		Table("orders").
		Where("id = ?", query.OrderID()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return OrderDetailsResponse{}, errs.NewObjectNotFoundError("orderId",
			strconv.FormatInt(query.OrderID(), 10))
	}
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	var itemRows []orderItemRow
	err = h.db.WithContext(ctx).
		Table("order_items").
		Where("order_id = ?", query.OrderID()).
		Order("id ASC").
		Find(&itemRows).Error
	if err != nil {
		return OrderDetailsResponse{}, err
	}

	items := make([]OrderItemResponse, 0, len(itemRows))
	totalItems := 0
	totalPrice := decimal.Zero
	for _, ir := range itemRows {
		items = append(items, OrderItemResponse{
			ID:        ir.ID,
			ProductID: ir.ProductID,
			Quantity:  ir.Quantity,
			UnitPrice: ir.UnitPrice,
		})
		totalItems += ir.Quantity
		totalPrice = totalPrice.Add(ir.UnitPrice.Mul(decimal.NewFromInt(int64(ir.Quantity))))
	}

	return OrderDetailsResponse{
		ID:            row.ID,
		CustomerID:    row.CustomerID,
		Status:        row.Status,
		PaymentMethod: row.PaymentMethod,
		OrderDate:     row.OrderDate,
		Items:         items,
		TotalItems:    &totalItems,
		TotalPrice:    &totalPrice,
		CreatedAt:     row.CreatedAt,
		ModifiedAt:    row.ModifiedAt,
		Version:       row.Version,
	}, nil
}
