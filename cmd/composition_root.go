package cmd

import (
	"ecommerce/internal/adapters/out/postgres"
	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelStaleOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() commands.UpdateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() commands.DeleteCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateProductCommandHandler() commands.UpdateProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateProductCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteProductCommandHandler() commands.DeleteProductCommandHandler {
	var f commands.ProductUoWFactory = FuncProductUoWFactory(func() commands.ProductUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteProductCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllCustomersQueryHandler() queries.GetAllCustomersQueryHandler {
	return queries.NewGetAllCustomersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncProductUoWFactory func() commands.ProductUoW

func (f FuncProductUoWFactory) Create() commands.ProductUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
