// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// The price is stored with the exact scale the domain guarantees.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(255);not null"`
	Description string          `gorm:"type:text;not null"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Stock       int             `gorm:"type:int;not null"`
	Category    string          `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Price:       aggregate.Price().Decimal(),
		Stock:       aggregate.Stock(),
		Category:    aggregate.Category(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Description, price, dto.Stock, dto.Category)
}
