// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with proper foreign
// key relationships to the owned item rows.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID      `gorm:"type:uuid;not null;index"`
	OrderDate  time.Time      `gorm:"type:timestamptz;not null"`
	Status     int            `gorm:"type:int;not null;index"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order items.
// Links to the owning order via foreign key; the unit price is stored with
// the exact scale the domain guarantees.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName specifies the database table name for order item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the aggregate and all owned item rows.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity().Value(),
			UnitPrice: item.UnitPrice().Decimal(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		OrderDate:  aggregate.OrderDate(),
		Status:     int(aggregate.Status()),
		Items:      items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including all items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, dto.OrderDate, order.Status(dto.Status), items)
}

// itemToDomain converts an order item DTO to its domain entity.
// Uses RestoreItem to reconstruct the entity with its persisted owner reference.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(id, orderID, productID, quantity, unitPrice)
}
