package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/application/usecases/queries"
	"ordersapp/internal/core/ports"
)

// Handlers bundles every command and query handler the API needs; the
// composition root fills it in.
type Handlers struct {
	CreateCustomer commands.CreateCustomerCommandHandler
	UpdateCustomer commands.UpdateCustomerCommandHandler
	PatchCustomer  commands.PatchCustomerCommandHandler
	DeleteCustomer commands.DeleteCustomerCommandHandler
	GetCustomer    queries.GetCustomerQueryHandler

	CreateProduct commands.CreateProductCommandHandler
	UpdateProduct commands.UpdateProductCommandHandler
	PatchProduct  commands.PatchProductCommandHandler
	DeleteProduct commands.DeleteProductCommandHandler
	GetProduct    queries.GetProductQueryHandler
	ListProducts  queries.ListProductsQueryHandler

	CreateOrder commands.CreateOrderCommandHandler
	UpdateOrder commands.UpdateOrderCommandHandler
	PatchOrder  commands.PatchOrderCommandHandler
	DeleteOrder commands.DeleteOrderCommandHandler
	GetOrder    queries.GetOrderQueryHandler
	ListOrders  queries.ListOrdersQueryHandler
}

// Server wires HTTP routes to command and query handlers.
type Server struct {
	handlers Handlers
}

// NewServer creates the server.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes mounts the API under /api/v1 plus the Swagger UI.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1")

	customers := v1.Group("/customers")
	customers.POST("", s.CreateCustomer)
	customers.GET("/:id", s.GetCustomer)
	customers.PUT("/:id", s.UpdateCustomer)
	customers.PATCH("/:id", s.PatchCustomer)
	customers.DELETE("/:id", s.DeleteCustomer)

	products := v1.Group("/products")
	products.POST("", s.CreateProduct)
	products.GET("", s.ListProducts)
	products.GET("/:id", s.GetProduct)
	products.PUT("/:id", s.UpdateProduct)
	products.PATCH("/:id", s.PatchProduct)
	products.DELETE("/:id", s.DeleteProduct)

	orders := v1.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PUT("/:id", s.UpdateOrder)
	orders.PATCH("/:id", s.PatchOrder)
	orders.DELETE("/:id", s.DeleteOrder)
}

// Health reports liveness.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// pathID extracts the numeric :id path parameter.
func pathID(ctx echo.Context) (int64, bool) {
	return parseID(ctx.Param("id"))
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// pagination defaults applied when the client omits the query parameters.
const (
	defaultPageSize  = 20
	defaultSortField = "id"
)

// pageRequest parses page, size, sort and direction query parameters.
func pageRequest(ctx echo.Context) (ports.PageRequest, error) {
	req := ports.PageRequest{
		Page:      0,
		Size:      defaultPageSize,
		SortField: defaultSortField,
		Direction: ports.SortAsc,
	}

	if raw := ctx.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return ports.PageRequest{}, err
		}
		req.Page = page
	}
	if raw := ctx.QueryParam("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return ports.PageRequest{}, err
		}
		req.Size = size
	}
	if raw := ctx.QueryParam("sort"); raw != "" {
		req.SortField = raw
	}
	if raw := ctx.QueryParam("direction"); raw != "" {
		direction, err := ports.ParseSortDirection(raw)
		if err != nil {
			return ports.PageRequest{}, err
		}
		req.Direction = direction
	}

	return req, nil
}
