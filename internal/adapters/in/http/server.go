// Package http exposes the application's use cases over a REST API.
// Contracts are hand-written request/response types; every handler translates
// between the wire format and the command/query layer.
package http

import (
	"errors"
	"net/http"
	"time"

	"ecommerce/internal/core/application/usecases/commands"
	"ecommerce/internal/core/application/usecases/queries"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the REST API handlers for customers, products and orders.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler    commands.CreateCustomerCommandHandler
	updateCustomerHandler    commands.UpdateCustomerCommandHandler
	deleteCustomerHandler    commands.DeleteCustomerCommandHandler
	createProductHandler     commands.CreateProductCommandHandler
	updateProductHandler     commands.UpdateProductCommandHandler
	deleteProductHandler     commands.DeleteProductCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getAllCustomersHandler queries.GetAllCustomersQueryHandler
	getAllProductsHandler  queries.GetAllProductsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	updateCustomerHandler commands.UpdateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	updateProductHandler commands.UpdateProductCommandHandler,
	deleteProductHandler commands.DeleteProductCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getAllProductsHandler queries.GetAllProductsQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:    createCustomerHandler,
		updateCustomerHandler:    updateCustomerHandler,
		deleteCustomerHandler:    deleteCustomerHandler,
		createProductHandler:     createProductHandler,
		updateProductHandler:     updateProductHandler,
		deleteProductHandler:     deleteProductHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		getOrderHandler:          getOrderHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getAllCustomersHandler:   getAllCustomersHandler,
		getAllProductsHandler:    getAllProductsHandler,
	}
}

// RegisterRoutes mounts all API routes on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/customers", s.GetCustomers)
	api.POST("/customers", s.CreateCustomer)
	api.PUT("/customers/:id", s.UpdateCustomer)
	api.DELETE("/customers/:id", s.DeleteCustomer)

	api.GET("/products", s.GetProducts)
	api.POST("/products", s.CreateProduct)
	api.PUT("/products/:id", s.UpdateProduct)
	api.DELETE("/products/:id", s.DeleteProduct)

	api.GET("/orders", s.GetOrders)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
}

// GetCustomers handles GET /api/v1/customers - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Customer, len(customers))
	for i, c := range customers {
		response[i] = Customer{
			ID:    c.ID.String(),
			Name:  c.Name,
			Email: c.Email,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - registers a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var newCustomer NewCustomer
	if err := ctx.Bind(&newCustomer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, newCustomer.Name, newCustomer.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// UpdateCustomer handles PUT /api/v1/customers/:id - updates customer details.
func (s *Server) UpdateCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	var newCustomer NewCustomer
	if err := ctx.Bind(&newCustomer); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerID, newCustomer.Name, newCustomer.Email)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.updateCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer handles DELETE /api/v1/customers/:id - removes a customer.
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetProducts handles GET /api/v1/products - retrieves the product catalogue.
func (s *Server) GetProducts(ctx echo.Context) error {
	query := queries.NewGetAllProductsQuery()

	products, err := s.getAllProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Product, len(products))
	for i, p := range products {
		response[i] = Product{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
			Stock:       p.Stock,
			Category:    p.Category,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST /api/v1/products - adds a product to the catalogue.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(newProduct.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(
		productID,
		newProduct.Name,
		newProduct.Description,
		price,
		newProduct.Stock,
		newProduct.Category,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// UpdateProduct handles PUT /api/v1/products/:id - updates a catalogue product.
func (s *Server) UpdateProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	var newProduct NewProduct
	if err := ctx.Bind(&newProduct); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(newProduct.Price)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUpdateProductCommand(
		productID,
		newProduct.Name,
		newProduct.Description,
		price,
		newProduct.Stock,
		newProduct.Category,
	)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.updateProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteProduct handles DELETE /api/v1/products/:id - removes a product.
func (s *Server) DeleteProduct(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid product id")
	}

	cmd, err := commands.NewDeleteProductCommand(productID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.deleteProductHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrders handles GET /api/v1/orders - retrieves all orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderToResponse(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(newOrder.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id")
	}

	items := make([]commands.ItemSpec, 0, len(newOrder.Items))
	for _, line := range newOrder.Items {
		productID, lineErr := kernel.UUIDFromString(line.ProductID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid product id")
		}
		items = append(items, commands.ItemSpec{ProductID: productID, Quantity: line.Quantity})
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, items)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with its items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(result))
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes an order and its items.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status - moves an order
// to a new status when the transition is allowed.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateOrderStatus
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown order status: "+request.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if handleErr := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// orderToResponse converts an order read model to its wire representation.
func orderToResponse(o queries.GetOrderQueryResponse) Order {
	items := make([]OrderItem, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItem{
			ID:        item.ID.String(),
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
			Subtotal:  item.Subtotal.String(),
		}
	}

	return Order{
		ID:         o.ID.String(),
		CustomerID: o.CustomerID.String(),
		OrderDate:  o.OrderDate.Format(time.RFC3339),
		Status:     o.Status.String(),
		Items:      items,
		Total:      o.Total.String(),
	}
}

// badRequest writes a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// errorResponse maps domain and application errors to HTTP status codes.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, order.ErrInvalidStatusTransition):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderItemsAreRequired):
		code = http.StatusUnprocessableEntity
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
