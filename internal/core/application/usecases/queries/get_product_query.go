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

// ErrGetProductQueryIsNotConstructed is returned when a GetProductQuery was
// not created via NewGetProductQuery.
var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery fetches a single product by id.
type GetProductQuery struct {
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery validates and creates the query.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	if productID <= 0 {
		return GetProductQuery{}, errs.NewValueIsRequiredError("productId")
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the requested id.
func (q GetProductQuery) ProductID() int64 { return q.productID }

// ProductResponse is the read-side shape of a catalog product. Price stays a
// decimal end to end; it serializes as a JSON number string.
type ProductResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	ModifiedAt    time.Time       `json:"modifiedAt"`
	Version       int             `json:"version"`
}

type productRow struct {
	ID            int64
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CreatedAt     time.Time
	ModifiedAt    time.Time
	Version       int
}

func (r productRow) toResponse() ProductResponse {
	return ProductResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		CreatedAt:     r.CreatedAt,
		ModifiedAt:    r.ModifiedAt,
		Version:       r.Version,
	}
}

// GetProductQueryHandler reads products straight from the database.
type GetProductQueryHandler struct {
	db *gorm.DB
}

// NewGetProductQueryHandler creates the handler.
func NewGetProductQueryHandler(db *gorm.DB) (GetProductQueryHandler, error) {
	if db == nil {
		return GetProductQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return GetProductQueryHandler{db: db}, nil
}

// Handle executes the query.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	var row productRow
	err := h.db.WithContext(ctx).
		Table("products").
		Where("id = ?", query.ProductID()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProductResponse{}, errs.NewObjectNotFoundError("productId",
			strconv.FormatInt(query.ProductID(), 10))
	}
	if err != nil {
		return ProductResponse{}, err
	}

	return row.toResponse(), nil
}
