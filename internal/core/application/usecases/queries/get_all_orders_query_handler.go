package queries

import (
	"context"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders.
// Returns a slice of order read models sorted by order date, each with its
// items and a total recomputed from the item rows.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrderQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_date,
			status
		FROM orders
		ORDER BY order_date, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetOrderQueryResponse
		var id, customerID uuid.UUID
		var orderDate time.Time
		var status int

		err = rows.Scan(
			&id,
			&customerID,
			&orderDate,
			&status,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = orderID

		custID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return nil, idErr
		}
		response.CustomerID = custID
		response.OrderDate = orderDate
		response.Status = order.Status(status)

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	for idx := range orders {
		items, total, itemsErr := loadOrderItems(ctx, h.db, orders[idx].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[idx].Items = items
		orders[idx].Total = total
	}

	return orders, nil
}
