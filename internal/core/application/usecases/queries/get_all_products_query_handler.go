package queries

import (
	"context"

	"ecommerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAllProductsQueryHandler retrieves the product catalogue from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllProductsQueryHandler creates a handler for catalogue queries.
// Requires a GORM database connection for query execution.
func NewGetAllProductsQueryHandler(db *gorm.DB) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{db: db}
}

// Handle executes the query to retrieve all products.
// Returns a slice of product read models sorted by name.
func (h GetAllProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAllProductsQuery,
) ([]GetAllProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	products := make([]GetAllProductsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			stock,
			category
		FROM products
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var product GetAllProductsQueryResponse
		var id uuid.UUID
		var price decimal.Decimal

		err = rows.Scan(
			&id,
			&product.Name,
			&product.Description,
			&price,
			&product.Stock,
			&product.Category,
		)
		if err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		product.ID = productID

		money, priceErr := kernel.NewMoney(price)
		if priceErr != nil {
			return nil, priceErr
		}
		product.Price = money

		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
