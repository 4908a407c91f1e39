// Package customerrepo provides data transfer objects and mapping functions for customer persistence.
// This package implements the repository pattern for the customer domain aggregate, handling
// the conversion between domain entities and database representations.
package customerrepo

import (
	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name  string    `gorm:"type:varchar(255);not null"`
	Email string    `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:    aggregate.ID().Bytes(),
		Name:  aggregate.Name(),
		Email: aggregate.Email(),
	}
}

// toDomain converts a database DTO to a customer domain aggregate.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email)
}
