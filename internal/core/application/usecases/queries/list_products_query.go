package queries

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
	"ordersapp/internal/pkg/guard"
)

// ErrListProductsQueryIsNotConstructed is returned when a ListProductsQuery
// was not created via NewListProductsQuery.
var ErrListProductsQueryIsNotConstructed = errors.New(
	"ListProductsQuery must be created via NewListProductsQuery constructor",
)

// productSortColumns whitelists the sortable fields for product listings.
// The request's sort field is looked up here, never interpolated into SQL.
var productSortColumns = map[string]string{
	"id":            "id",
	"name":          "name",
	"price":         "price",
	"stockQuantity": "stock_quantity",
}

// ProductFilter narrows a product listing. Nil fields apply no predicate.
type ProductFilter struct {
	// Name matches case-insensitively on a substring of the product name.
	Name *string
}

// ListProductsQuery fetches one page of the (optionally filtered) catalog.
type ListProductsQuery struct {
	filter ProductFilter
	page   ports.PageRequest

	guard guard.ConstructorGuard
}

// NewListProductsQuery validates and creates the query.
func NewListProductsQuery(filter ProductFilter, page ports.PageRequest) (ListProductsQuery, error) {
	if err := validatePageRequest(page, productSortColumns); err != nil {
		return ListProductsQuery{}, err
	}

	return ListProductsQuery{
		filter: filter,
		page:   page,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Filter returns the listing predicates.
func (q ListProductsQuery) Filter() ProductFilter { return q.filter }

// Page returns the requested page slice.
func (q ListProductsQuery) Page() ports.PageRequest { return q.page }

// ListProductsQueryHandler pages through the catalog.
type ListProductsQueryHandler struct {
	db *gorm.DB
}

// NewListProductsQueryHandler creates the handler.
func NewListProductsQueryHandler(db *gorm.DB) (ListProductsQueryHandler, error) {
	if db == nil {
		return ListProductsQueryHandler{}, errs.NewValueIsRequiredError("db")
	}

	return ListProductsQueryHandler{db: db}, nil
}

// Handle executes the query.
func (h ListProductsQueryHandler) Handle(ctx context.Context, query ListProductsQuery) (ports.Page[ProductResponse], error) {
	if err := query.Validate(); err != nil {
		return ports.Page[ProductResponse]{}, err
	}

	base := h.db.WithContext(ctx).Table("products")
	if query.Filter().Name != nil {
		base = base.Where("name ILIKE ?", "%"+*query.Filter().Name+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return ports.Page[ProductResponse]{}, err
	}

	var rows []productRow
	err := base.
		Order(orderClause(query.Page(), productSortColumns)).
		Limit(query.Page().Size).
		Offset(query.Page().Offset()).
		Find(&rows).Error
	if err != nil {
		return ports.Page[ProductResponse]{}, err
	}

	items := make([]ProductResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toResponse())
	}

	return ports.NewPage(items, query.Page(), total), nil
}

// validatePageRequest checks the page slice and resolves the sort field
// against the given whitelist.
func validatePageRequest(page ports.PageRequest, sortColumns map[string]string) error {
	if page.Page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page",
			fmt.Errorf("%d is negative", page.Page))
	}
	if page.Size <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%d is not greater than 0", page.Size))
	}
	if _, ok := sortColumns[page.SortField]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("sort",
			fmt.Errorf("%q is not a sortable field", page.SortField))
	}
	if page.Direction != ports.SortAsc && page.Direction != ports.SortDesc {
		return errs.NewValueIsInvalidErrorWithCause("direction",
			fmt.Errorf("%q is not a valid sort direction", page.Direction))
	}
	return nil
}

// orderClause builds the ORDER BY from whitelisted parts only. Callers must
// have validated the request first.
func orderClause(page ports.PageRequest, sortColumns map[string]string) string {
	return fmt.Sprintf("%s %s", sortColumns[page.SortField], page.Direction)
}
