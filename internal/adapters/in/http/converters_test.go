package http

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/core/domain/model/shared"
)

func fixtureCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.RestoreCustomer(
		shared.RestoreEntity(5, time.Now().UTC(), time.Now().UTC(), 1),
		"Jan", "Kowalski", "jan.kowalski@example.com",
		"ul. Polna 1", "Warszawa", "00-001", "PL", "+48123123123")
	require.NoError(t, err)
	return c
}

func fixtureProduct(t *testing.T, id int64, price string) *product.Product {
	t.Helper()
	p, err := product.RestoreProduct(
		shared.RestoreEntity(id, time.Now().UTC(), time.Now().UTC(), 0),
		"widget", "", decimal.RequireFromString(price), 10)
	require.NoError(t, err)
	return p
}

func Test_orderToResponse(t *testing.T) {
	t.Run("should include items and derived totals", func(t *testing.T) {
		item, err := order.RestoreItem(31, fixtureProduct(t, 9, "19.99"), 3, decimal.RequireFromString("18.50"))
		require.NoError(t, err)

		orderDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		o, err := order.RestoreOrder(
			shared.RestoreEntity(12, orderDate, orderDate, 2),
			fixtureCustomer(t), []order.Item{item},
			order.StatusAccepted, order.PaymentMethodCash, orderDate)
		require.NoError(t, err)

		response := orderToResponse(o)

		assert.Equal(t, int64(12), response.ID)
		assert.Equal(t, int64(5), response.CustomerID)
		assert.Equal(t, "ACCEPTED", response.Status)
		assert.Equal(t, "CASH", response.PaymentMethod)
		require.Len(t, response.Items, 1)
		assert.Equal(t, int64(31), response.Items[0].ID)
		assert.Equal(t, int64(9), response.Items[0].ProductID)
		// unit price comes from the stored snapshot, not the current product price
		assert.True(t, response.Items[0].UnitPrice.Equal(decimal.RequireFromString("18.50")))
		require.NotNil(t, response.TotalItems)
		require.NotNil(t, response.TotalPrice)
		assert.Equal(t, 3, *response.TotalItems)
		assert.True(t, response.TotalPrice.Equal(decimal.RequireFromString("55.50")))
	})

	t.Run("should leave totals absent when items are not loaded", func(t *testing.T) {
		orderDate := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		o, err := order.RestoreOrder(
			shared.RestoreEntity(12, orderDate, orderDate, 0),
			fixtureCustomer(t), nil,
			order.StatusCreated, order.PaymentMethodPayPal, orderDate)
		require.NoError(t, err)

		response := orderToResponse(o)

		assert.Nil(t, response.Items)
		assert.Nil(t, response.TotalItems)
		assert.Nil(t, response.TotalPrice)
	})
}
