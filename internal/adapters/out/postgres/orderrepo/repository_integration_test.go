package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordersapp/internal/adapters/out/postgres/customerrepo"
	"ordersapp/internal/adapters/out/postgres/orderrepo"
	"ordersapp/internal/adapters/out/postgres/productrepo"
	"ordersapp/internal/core/domain/model/customer"
	"ordersapp/internal/core/domain/model/order"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
)

// OrderRepositoryIntegrationTestSuite verifies the order aggregate's
// persistence behavior, including item ownership and optimistic versioning,
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container          *postgres.PostgresContainer
	db                 *gorm.DB
	orderRepository    *orderrepo.Repository
	customerRepository *customerrepo.Repository
	productRepository  *productrepo.Repository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE order_items, orders, products, customers RESTART IDENTITY CASCADE").Error)

	var err error
	suite.orderRepository, err = orderrepo.NewRepository(suite.db)
	suite.Require().NoError(err)
	suite.customerRepository, err = customerrepo.NewRepository(suite.db)
	suite.Require().NoError(err)
	suite.productRepository, err = productrepo.NewRepository(suite.db)
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) addCustomer() *customer.Customer {
	c, err := customer.NewCustomer(
		"Jan", "Kowalski", "jan.kowalski@example.com",
		"ul. Polna 1", "Warszawa", "00-001", "PL", "+48123456789",
	)
	suite.Require().NoError(err)

	saved, err := suite.customerRepository.Add(context.Background(), c)
	suite.Require().NoError(err)
	return saved
}

func (suite *OrderRepositoryIntegrationTestSuite) addProduct(name, price string, stock int) *product.Product {
	p, err := product.NewProduct(name, "integration test product", decimal.RequireFromString(price), stock)
	suite.Require().NoError(err)

	saved, err := suite.productRepository.Add(context.Background(), p)
	suite.Require().NoError(err)
	return saved
}

func (suite *OrderRepositoryIntegrationTestSuite) addOrder(
	c *customer.Customer, pm order.PaymentMethod, lines ...order.Item,
) *order.Order {
	o, err := order.NewOrder(c, lines, pm, time.Now())
	suite.Require().NoError(err)

	saved, err := suite.orderRepository.Add(context.Background(), o)
	suite.Require().NoError(err)
	return saved
}

func (suite *OrderRepositoryIntegrationTestSuite) newItem(p *product.Product, quantity int) order.Item {
	item, err := order.NewItem(p, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsOrderWithItems() {
	buyer := suite.addCustomer()
	laptopStand := suite.addProduct("laptop stand", "99.99", 15)
	deskMat := suite.addProduct("desk mat", "39.99", 10)

	saved := suite.addOrder(buyer, order.PaymentMethodPayPal,
		suite.newItem(laptopStand, 2), suite.newItem(deskMat, 3))

	suite.Positive(saved.ID())
	suite.Equal(0, saved.Version())
	suite.Equal(order.StatusCreated, saved.Status())
	suite.Require().Len(saved.Items(), 2)
	suite.Positive(saved.Items()[0].ID())
	suite.Positive(saved.Items()[1].ID())

	totals := saved.Totals()
	suite.Require().NotNil(totals)
	suite.Equal(5, totals.Items())
	suite.Equal("319.95", totals.Price().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_LoadsCustomerAndItems() {
	buyer := suite.addCustomer()
	p := suite.addProduct("laptop stand", "99.99", 15)
	saved := suite.addOrder(buyer, order.PaymentMethodCash, suite.newItem(p, 2))

	retrieved, err := suite.orderRepository.Get(context.Background(), saved.ID())
	suite.Require().NoError(err)

	suite.Equal(buyer.ID(), retrieved.Customer().ID())
	suite.Equal(order.StatusAccepted, retrieved.Status())
	suite.Require().Len(retrieved.Items(), 1)
	suite.Equal(p.ID(), retrieved.Items()[0].Product().ID())
	suite.Equal("99.99", retrieved.Items()[0].UnitPrice().String())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	_, err := suite.orderRepository.Get(context.Background(), 9999)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusChangeKeepsItemIDs() {
	buyer := suite.addCustomer()
	p := suite.addProduct("laptop stand", "99.99", 15)
	saved := suite.addOrder(buyer, order.PaymentMethodPayPal, suite.newItem(p, 2))
	originalItemID := saved.Items()[0].ID()

	suite.Require().NoError(saved.ChangeStatus(order.StatusAccepted))
	updated, err := suite.orderRepository.Update(context.Background(), saved)
	suite.Require().NoError(err)

	suite.Equal(order.StatusAccepted, updated.Status())
	suite.Equal(1, updated.Version())
	suite.Require().Len(updated.Items(), 1)
	suite.Equal(originalItemID, updated.Items()[0].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacedItemsAreRewritten() {
	buyer := suite.addCustomer()
	oldProduct := suite.addProduct("laptop stand", "99.99", 15)
	newProduct := suite.addProduct("desk mat", "39.99", 10)
	saved := suite.addOrder(buyer, order.PaymentMethodPayPal, suite.newItem(oldProduct, 2))
	originalItemID := saved.Items()[0].ID()

	suite.Require().NoError(saved.ReplaceItems([]order.Item{suite.newItem(newProduct, 4)}))
	updated, err := suite.orderRepository.Update(context.Background(), saved)
	suite.Require().NoError(err)

	suite.Require().Len(updated.Items(), 1)
	suite.NotEqual(originalItemID, updated.Items()[0].ID())
	suite.Equal(newProduct.ID(), updated.Items()[0].Product().ID())

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Equal(int64(1), itemCount)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflicts() {
	ctx := context.Background()
	buyer := suite.addCustomer()
	p := suite.addProduct("laptop stand", "99.99", 15)
	saved := suite.addOrder(buyer, order.PaymentMethodPayPal, suite.newItem(p, 2))

	stale, err := suite.orderRepository.Get(ctx, saved.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(saved.ChangeStatus(order.StatusAccepted))
	_, err = suite.orderRepository.Update(ctx, saved)
	suite.Require().NoError(err)

	suite.Require().NoError(stale.ChangeStatus(order.StatusCancelled))
	_, err = suite.orderRepository.Update(ctx, stale)

	var conflictErr *errs.ConcurrentModificationError
	suite.Require().ErrorAs(err, &conflictErr)

	current, err := suite.orderRepository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusAccepted, current.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_CascadesToItems() {
	buyer := suite.addCustomer()
	p := suite.addProduct("laptop stand", "99.99", 15)
	saved := suite.addOrder(buyer, order.PaymentMethodPayPal, suite.newItem(p, 2))

	suite.Require().NoError(suite.orderRepository.Delete(context.Background(), saved.ID()))

	var itemCount int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&itemCount).Error)
	suite.Zero(itemCount)

	_, err := suite.orderRepository.Get(context.Background(), saved.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	// the referenced product survives the order
	_, err = suite.productRepository.Get(context.Background(), p.ID())
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetCreatedBefore_FiltersByStatusAndAge() {
	ctx := context.Background()
	buyer := suite.addCustomer()
	p := suite.addProduct("laptop stand", "99.99", 15)

	staleOrder := suite.addOrder(buyer, order.PaymentMethodPayPal, suite.newItem(p, 1))
	acceptedOrder := suite.addOrder(buyer, order.PaymentMethodCash, suite.newItem(p, 1))
	suite.Equal(order.StatusAccepted, acceptedOrder.Status())

	// age the CREATED order past the cutoff
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).
		Where("id = ?", staleOrder.ID()).
		Update("order_date", time.Now().UTC().Add(-2*time.Hour)).Error)

	found, err := suite.orderRepository.GetCreatedBefore(ctx, time.Now().UTC().Add(-time.Hour))
	suite.Require().NoError(err)

	suite.Require().Len(found, 1)
	suite.Equal(staleOrder.ID(), found[0].ID())
	suite.Nil(found[0].Items())
	suite.Nil(found[0].Totals())
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
