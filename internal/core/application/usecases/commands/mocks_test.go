package commands_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/core/domain/model/shared"
	"ordersapp/internal/core/ports"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, aggregate)
	if res := args.Get(0); res != nil {
		return res.(*customer.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, aggregate)
	if res := args.Get(0); res != nil {
		return res.(*customer.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*customer.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Add(ctx context.Context, aggregate *product.Product) (*product.Product, error) {
	args := m.Called(ctx, aggregate)
	if res := args.Get(0); res != nil {
		return res.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, aggregate *product.Product) (*product.Product, error) {
	args := m.Called(ctx, aggregate)
	if res := args.Get(0); res != nil {
		return res.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*product.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetBatch(ctx context.Context, ids []int64) ([]*product.Product, error) {
	args := m.Called(ctx, ids)
	if res := args.Get(0); res != nil {
		return res.([]*product.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	if res := args.Get(0); res != nil {
		return res.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	args := m.Called(ctx, aggregate)
	if res := args.Get(0); res != nil {
		return res.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) GetCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if res := args.Get(0); res != nil {
		return res.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockOrderUoW satisfies commands.OrderUoW and, by embedding the smaller
// interfaces, also commands.CustomerUoW and commands.ProductUoW.
type MockOrderUoW struct {
	mock.Mock

	Customers *MockCustomerRepository
	Products  *MockProductRepository
	Orders    *MockOrderRepository
}

func NewMockOrderUoW() *MockOrderUoW {
	return &MockOrderUoW{
		Customers: &MockCustomerRepository{},
		Products:  &MockProductRepository{},
		Orders:    &MockOrderRepository{},
	}
}

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockOrderUoW) CustomerRepository() ports.CustomerRepository {
	return m.Customers
}

func (m *MockOrderUoW) ProductRepository() ports.ProductRepository {
	return m.Products
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	return m.Orders
}

// expectTx wires the usual transaction lifecycle: Begin and Rollback always
// succeed, Commit succeeds when the workflow reaches it.
func (m *MockOrderUoW) expectTx() {
	m.On("Begin", mock.Anything).Return(nil)
	m.On("Commit", mock.Anything).Return(nil).Maybe()
	m.On("Rollback", mock.Anything).Return(nil)
}

type orderUoWFactory struct {
	uow *MockOrderUoW
}

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type customerUoWFactory struct {
	uow *MockOrderUoW
}

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.uow }

type productUoWFactory struct {
	uow *MockOrderUoW
}

func (f productUoWFactory) Create() commands.ProductUoW { return f.uow }

func restoredCustomer(id int64) *customer.Customer {
	now := time.Now().UTC()
	c, err := customer.RestoreCustomer(
		shared.RestoreEntity(id, now, now, 0),
		"Jan", "Kowalski", "jan.kowalski@example.com",
		"ul. Polna 1", "Warszawa", "00-001", "PL", "+48123456789",
	)
	if err != nil {
		panic(err)
	}
	return c
}

func restoredProduct(id int64, price string, stock int) *product.Product {
	now := time.Now().UTC()
	p, err := product.RestoreProduct(
		shared.RestoreEntity(id, now, now, 0),
		"product", "", decimal.RequireFromString(price), stock,
	)
	if err != nil {
		panic(err)
	}
	return p
}

func restoredOrder(id int64, c *customer.Customer, items []order.Item, status order.Status, pm order.PaymentMethod) *order.Order {
	now := time.Now().UTC()
	o, err := order.RestoreOrder(shared.RestoreEntity(id, now, now, 0), c, items, status, pm, now)
	if err != nil {
		panic(err)
	}
	return o
}
