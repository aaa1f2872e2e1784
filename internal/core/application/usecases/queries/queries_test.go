package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersapp/internal/core/application/usecases/queries"
	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/ports"
	"ordersapp/internal/pkg/errs"
)

func ptr[T any](v T) *T { return &v }

func validPage(sortField string) ports.PageRequest {
	return ports.PageRequest{Page: 0, Size: 20, SortField: sortField, Direction: ports.SortAsc}
}

func TestNewGetOrderQuery_RequiresID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	q, err := queries.NewGetOrderQuery(5)
	require.NoError(t, err)
	assert.Equal(t, int64(5), q.OrderID())
}

func TestNewListOrdersQuery_Validation(t *testing.T) {
	t.Run("accepts whitelisted sort fields", func(t *testing.T) {
		for _, field := range []string{"id", "orderDate", "status"} {
			_, err := queries.NewListOrdersQuery(queries.OrderFilter{}, validPage(field))
			assert.NoError(t, err, field)
		}
	})

	t.Run("rejects unknown sort field", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.OrderFilter{}, validPage("paymentMethod"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "not a sortable field")
	})

	t.Run("rejects invalid status filter", func(t *testing.T) {
		bad := order.Status("SHIPPED")
		_, err := queries.NewListOrdersQuery(queries.OrderFilter{Status: &bad}, validPage("id"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-positive customer filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.OrderFilter{CustomerID: ptr(int64(0))}, validPage("id"))
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects bad page slice", func(t *testing.T) {
		page := validPage("id")
		page.Size = 0
		_, err := queries.NewListOrdersQuery(queries.OrderFilter{}, page)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		page = validPage("id")
		page.Page = -1
		_, err = queries.NewListOrdersQuery(queries.OrderFilter{}, page)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		page = validPage("id")
		page.Direction = "SIDEWAYS"
		_, err = queries.NewListOrdersQuery(queries.OrderFilter{}, page)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var q queries.ListOrdersQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewListProductsQuery_Validation(t *testing.T) {
	for _, field := range []string{"id", "name", "price", "stockQuantity"} {
		_, err := queries.NewListProductsQuery(queries.ProductFilter{}, validPage(field))
		assert.NoError(t, err, field)
	}

	_, err := queries.NewListProductsQuery(queries.ProductFilter{}, validPage("description"))
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = queries.NewListProductsQuery(queries.ProductFilter{Name: ptr("cable")}, validPage("name"))
	assert.NoError(t, err)
}
