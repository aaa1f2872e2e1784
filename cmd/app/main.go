package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordersapp/cmd"
	_ "ordersapp/docs"
	httpapi "ordersapp/internal/adapters/in/http"
	"ordersapp/internal/adapters/out/postgres/customerrepo"
	"ordersapp/internal/adapters/out/postgres/orderrepo"
	"ordersapp/internal/adapters/out/postgres/productrepo"
	"ordersapp/internal/jobs"
)

//	@title			Orders API
//	@version		1.0
//	@description	Order management service: customers, products and orders.
//	@BasePath		/api/v1

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		AllowNegativeStock: goDotEnvBool("ALLOW_NEGATIVE_STOCK", true),
		StaleOrderTTL:      goDotEnvMinutes("STALE_ORDER_TTL_MINUTES"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvBool(key string, defaultValue bool) bool {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Fatalf("Invalid boolean for %s: %q", key, raw)
	}
	return value
}

// goDotEnvMinutes reads a duration given in whole minutes; empty means zero.
func goDotEnvMinutes(key string) time.Duration {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		log.Fatalf("Invalid minute count for %s: %q", key, raw)
	}
	return time.Duration(minutes) * time.Minute
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&customerrepo.CustomerDTO{},
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		configs.StaleOrderTTL,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(httpapi.RequestID())

	server := httpapi.NewServer(httpapi.Handlers{
		CreateCustomer: app.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: app.CreateUpdateCustomerCommandHandler(),
		PatchCustomer:  app.CreatePatchCustomerCommandHandler(),
		DeleteCustomer: app.CreateDeleteCustomerCommandHandler(),
		GetCustomer:    app.CreateGetCustomerQueryHandler(),

		CreateProduct: app.CreateCreateProductCommandHandler(),
		UpdateProduct: app.CreateUpdateProductCommandHandler(),
		PatchProduct:  app.CreatePatchProductCommandHandler(),
		DeleteProduct: app.CreateDeleteProductCommandHandler(),
		GetProduct:    app.CreateGetProductQueryHandler(),
		ListProducts:  app.CreateListProductsQueryHandler(),

		CreateOrder: app.CreateCreateOrderCommandHandler(),
		UpdateOrder: app.CreateUpdateOrderCommandHandler(),
		PatchOrder:  app.CreatePatchOrderCommandHandler(),
		DeleteOrder: app.CreateDeleteOrderCommandHandler(),
		GetOrder:    app.CreateGetOrderQueryHandler(),
		ListOrders:  app.CreateListOrdersQueryHandler(),
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
