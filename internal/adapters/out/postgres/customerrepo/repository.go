package customerrepo

import (
	"context"
	"errors"

	"ecommerce/internal/core/domain/model/customer"
	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer to the database.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all customers.
func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

// Delete removes a customer from the database.
func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CustomerDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id.String())
	}

	return nil
}
