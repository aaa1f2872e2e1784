package productrepo_test

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

	"ordersapp/internal/adapters/out/postgres/productrepo"
	"ordersapp/internal/core/domain/model/product"
	"ordersapp/internal/pkg/errs"
)

// ProductRepositoryIntegrationTestSuite verifies persistence behavior against
// a real PostgreSQL instance.
type ProductRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *productrepo.Repository
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&productrepo.ProductDTO{}))
}

func (suite *ProductRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE products RESTART IDENTITY").Error)

	repository, err := productrepo.NewRepository(suite.db)
	suite.Require().NoError(err)
	suite.repository = repository
}

func (suite *ProductRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProductRepositoryIntegrationTestSuite) addProduct(name, price string, stock int) *product.Product {
	p, err := product.NewProduct(name, "integration test product", decimal.RequireFromString(price), stock)
	suite.Require().NoError(err)

	saved, err := suite.repository.Add(context.Background(), p)
	suite.Require().NoError(err)
	return saved
}

func (suite *ProductRepositoryIntegrationTestSuite) TestAdd_AssignsSystemFields() {
	saved := suite.addProduct("laptop stand", "99.99", 15)

	suite.Positive(saved.ID())
	suite.Equal(0, saved.Version())
	suite.False(saved.CreatedAt().IsZero())
	suite.Equal("99.99", saved.Price().String())
	suite.Equal(15, saved.StockQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_RoundTripsPriceExactly() {
	saved := suite.addProduct("desk mat", "39.99", 10)

	retrieved, err := suite.repository.Get(context.Background(), saved.ID())
	suite.Require().NoError(err)

	suite.Equal(saved.ID(), retrieved.ID())
	suite.True(retrieved.Price().Equal(decimal.RequireFromString("39.99")))
	suite.Equal(10, retrieved.StockQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), 12345)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestGetBatch_MissingIDsAreAbsent() {
	first := suite.addProduct("laptop stand", "99.99", 15)
	second := suite.addProduct("desk mat", "39.99", 10)

	found, err := suite.repository.GetBatch(context.Background(), []int64{first.ID(), 777, second.ID()})
	suite.Require().NoError(err)

	suite.Len(found, 2)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_IncrementsVersion() {
	saved := suite.addProduct("laptop stand", "99.99", 15)

	saved.SubtractFromStock(2)
	updated, err := suite.repository.Update(context.Background(), saved)
	suite.Require().NoError(err)

	suite.Equal(13, updated.StockQuantity())
	suite.Equal(1, updated.Version())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_Conflicts() {
	ctx := context.Background()
	saved := suite.addProduct("laptop stand", "99.99", 15)

	// two readers load version 0; the second write must fail
	stale, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)

	saved.SubtractFromStock(1)
	_, err = suite.repository.Update(ctx, saved)
	suite.Require().NoError(err)

	stale.SubtractFromStock(5)
	_, err = suite.repository.Update(ctx, stale)

	var conflictErr *errs.ConcurrentModificationError
	suite.Require().ErrorAs(err, &conflictErr)

	current, err := suite.repository.Get(ctx, saved.ID())
	suite.Require().NoError(err)
	suite.Equal(14, current.StockQuantity())
}

func (suite *ProductRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsNotFound() {
	p, err := product.NewProduct("ghost", "never persisted", decimal.RequireFromString("1.00"), 1)
	suite.Require().NoError(err)

	_, err = suite.repository.Update(context.Background(), p)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *ProductRepositoryIntegrationTestSuite) TestDelete() {
	saved := suite.addProduct("laptop stand", "99.99", 15)

	suite.Require().NoError(suite.repository.Delete(context.Background(), saved.ID()))

	_, err := suite.repository.Get(context.Background(), saved.ID())
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	err = suite.repository.Delete(context.Background(), saved.ID())
	suite.Require().ErrorAs(err, &notFoundErr)
}

func TestProductRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProductRepositoryIntegrationTestSuite))
}
