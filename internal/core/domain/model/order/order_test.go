package order_test

import (
	"testing"
	"time"

	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(
		"John", "Doe", "john@example.com", "Lipowa 15", "Warszawa", "50-001", "Polska", "123456789")
	require.NoError(t, err)
	return c
}

func TestNewOrder_NonCashStartsCreated(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	items := []order.Item{mustItem(t, mustProduct(t, "widget", "9.99", 10), 1)}

	o, err := order.NewOrder(mustCustomer(t), items, order.PaymentMethodPayPal, now)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCreated, o.Status())
	assert.Equal(t, now, o.OrderDate())
}

func TestNewOrder_CashStartsAccepted(t *testing.T) {
	items := []order.Item{mustItem(t, mustProduct(t, "widget", "9.99", 10), 1)}

	o, err := order.NewOrder(mustCustomer(t), items, order.PaymentMethodCash, time.Now())

	require.NoError(t, err)
	assert.Equal(t, order.StatusAccepted, o.Status())
}

func TestNewOrder_StampsOrderDateInUTC(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)
	local := time.Date(2025, 6, 1, 14, 0, 0, 0, warsaw)
	items := []order.Item{mustItem(t, mustProduct(t, "widget", "9.99", 10), 1)}

	o, err := order.NewOrder(mustCustomer(t), items, order.PaymentMethodBlik, local)

	require.NoError(t, err)
	assert.Equal(t, time.UTC, o.OrderDate().Location())
	assert.True(t, o.OrderDate().Equal(local))
}

func TestNewOrder_RequiresItems(t *testing.T) {
	_, err := order.NewOrder(mustCustomer(t), nil, order.PaymentMethodCash, time.Now())
	require.Error(t, err)

	_, err = order.NewOrder(mustCustomer(t), []order.Item{}, order.PaymentMethodCash, time.Now())
	require.Error(t, err)
}

func TestNewOrder_RequiresConstructedCustomer(t *testing.T) {
	items := []order.Item{mustItem(t, mustProduct(t, "widget", "9.99", 10), 1)}

	_, err := order.NewOrder(nil, items, order.PaymentMethodCash, time.Now())
	require.Error(t, err)
	assert.ErrorIs(t, err, customer.ErrCustomerIsNotConstructed)
}

func TestOrder_ChangeStatus(t *testing.T) {
	items := []order.Item{mustItem(t, mustProduct(t, "widget", "9.99", 10), 1)}
	o, err := order.NewOrder(mustCustomer(t), items, order.PaymentMethodBlik, time.Now())
	require.NoError(t, err)

	require.NoError(t, o.ChangeStatus(order.StatusAccepted))
	require.NoError(t, o.ChangeStatus(order.StatusSent))

	err = o.ChangeStatus(order.StatusCancelled)
	require.Error(t, err, "SENT -> CANCELLED is illegal")
	assert.Equal(t, order.StatusSent, o.Status(), "rejected transition must not change state")

	require.NoError(t, o.ChangeStatus(order.StatusSent), "same status is a no-op success")
}

func TestOrder_Validate_ZeroValueFails(t *testing.T) {
	var o order.Order
	require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestOrder_ReplaceItems(t *testing.T) {
	items := []order.Item{mustItem(t, mustProduct(t, "widget", "9.99", 10), 1)}
	o, err := order.NewOrder(mustCustomer(t), items, order.PaymentMethodBlik, time.Now())
	require.NoError(t, err)

	replacement := []order.Item{mustItem(t, mustProduct(t, "gadget", "5.00", 3), 2)}
	require.NoError(t, o.ReplaceItems(replacement))
	assert.Len(t, o.Items(), 1)
	assert.Equal(t, "gadget", o.Items()[0].Product().Name())

	require.Error(t, o.ReplaceItems(nil), "an order can never become empty")
}
