package http

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// Customer represents a customer in API responses.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// NewCustomer is the request body for creating or updating a customer.
type NewCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Product represents a catalogue product in API responses.
// Price is a fixed-point decimal string with two fraction digits.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
}

// NewProduct is the request body for creating or updating a product.
// Price is a decimal string to keep monetary values exact on the wire.
type NewProduct struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Category    string `json:"category"`
}

// NewOrderItem is one requested order line in an order creation request.
type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	CustomerID string         `json:"customerId"`
	Items      []NewOrderItem `json:"items"`
}

// OrderItem represents one order line in API responses.
type OrderItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

// Order represents an order in API responses. The total is derived from the
// item lines on every read.
type Order struct {
	ID         string      `json:"id"`
	CustomerID string      `json:"customerId"`
	OrderDate  string      `json:"orderDate"`
	Status     string      `json:"status"`
	Items      []OrderItem `json:"items"`
	Total      string      `json:"total"`
}

// UpdateOrderStatus is the request body for moving an order to a new status.
type UpdateOrderStatus struct {
	Status string `json:"status"`
}
