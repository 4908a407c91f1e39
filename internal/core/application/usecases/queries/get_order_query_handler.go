package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one order with its items from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve the order.
// Returns an object-not-found error when no row matches the identifier.
// The total is summed from the item rows with exact decimal arithmetic.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	var id, customerID uuid.UUID
	var orderDate time.Time
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			order_date,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &orderDate, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.ID = orderID

	custID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.CustomerID = custID
	response.OrderDate = orderDate
	response.Status = order.Status(status)

	items, total, err := loadOrderItems(ctx, h.db, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Items = items
	response.Total = total

	return response, nil
}

// loadOrderItems reads the item rows of one order and sums their subtotals.
// Shared by the single-order and all-orders handlers.
func loadOrderItems(
	ctx context.Context,
	db *gorm.DB,
	orderID kernel.UUID,
) ([]OrderItemResponse, kernel.Money, error) {
	items := make([]OrderItemResponse, 0)
	total := kernel.ZeroMoney()

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, kernel.Money{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var id, productID uuid.UUID
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&id,
			&productID,
			&item.Quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, kernel.Money{}, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, kernel.Money{}, idErr
		}
		item.ID = itemID

		prodID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, kernel.Money{}, idErr
		}
		item.ProductID = prodID

		price, priceErr := kernel.NewMoney(unitPrice)
		if priceErr != nil {
			return nil, kernel.Money{}, priceErr
		}
		item.UnitPrice = price

		quantity, qtyErr := kernel.NewQuantity(item.Quantity)
		if qtyErr != nil {
			return nil, kernel.Money{}, qtyErr
		}
		item.Subtotal = price.MulQuantity(quantity)

		total = total.Add(item.Subtotal)
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, kernel.Money{}, err
	}

	return items, total, nil
}
