package cmd

import (
	"ordersapp/internal/adapters/out/postgres"
	"ordersapp/internal/core/application/usecases/commands"
	"ordersapp/internal/core/application/usecases/queries"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

// CompositionRoot wires every handler to its dependencies. Construction
// failures here mean broken wiring, so they are fatal.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.UnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *must(postgres.NewUnitOfWorkFactory(gormDB)),
	}
}

func must[T any](handler T, err error) T {
	if err != nil {
		log.Fatalf("composition root: %v", err)
	}
	return handler
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) productUoWFactory() commands.ProductUoWFactory {
	return FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return must(commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()))
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	return must(commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory()))
}

func (c *CompositionRoot) CreatePatchCustomerCommandHandler() commands.PatchCustomerCommandHandler {
	return must(commands.NewPatchCustomerCommandHandler(c.customerUoWFactory()))
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	return must(commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory()))
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return must(commands.NewCreateProductCommandHandler(c.productUoWFactory()))
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	return must(commands.NewUpdateProductCommandHandler(c.productUoWFactory()))
}

func (c *CompositionRoot) CreatePatchProductCommandHandler() commands.PatchProductCommandHandler {
	return must(commands.NewPatchProductCommandHandler(c.productUoWFactory()))
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	return must(commands.NewDeleteProductCommandHandler(c.productUoWFactory()))
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	rejectNegativeStock := !c.config.AllowNegativeStock
	return must(commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), rejectNegativeStock))
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return must(commands.NewUpdateOrderCommandHandler(c.orderUoWFactory()))
}

func (c *CompositionRoot) CreatePatchOrderCommandHandler() commands.PatchOrderCommandHandler {
	return must(commands.NewPatchOrderCommandHandler(c.orderUoWFactory()))
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return must(commands.NewDeleteOrderCommandHandler(c.orderUoWFactory()))
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return must(commands.NewCancelStaleOrdersCommandHandler(c.orderUoWFactory()))
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return must(queries.NewGetCustomerQueryHandler(c.gormDB))
}

func (c *CompositionRoot) CreateGetProductQueryHandler() queries.GetProductQueryHandler {
	return must(queries.NewGetProductQueryHandler(c.gormDB))
}

func (c *CompositionRoot) CreateListProductsQueryHandler() queries.ListProductsQueryHandler {
	return must(queries.NewListProductsQueryHandler(c.gormDB))
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return must(queries.NewGetOrderQueryHandler(c.gormDB))
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return must(queries.NewListOrdersQueryHandler(c.gormDB))
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
