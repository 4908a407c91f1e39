package orderrepo

import (
	"context"
	"errors"
	"time"

	"ecommerce/internal/core/domain/model/kernel"
	"ecommerce/internal/core/domain/model/order"
	"ecommerce/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
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

// Update saves an existing order to the database.
// Item rows removed from the aggregate since it was loaded are deleted so the
// stored item set always mirrors the aggregate's collection.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keptIDs := make([]any, 0, len(dto.Items))
	for _, item := range dto.Items {
		keptIDs = append(keptIDs, item.ID)
	}

	removed := r.db.WithContext(ctx).Where("order_id = ?", dto.ID)
	if len(keptIDs) > 0 {
		removed = removed.Where("id NOT IN ?", keptIDs)
	}
	if err := removed.Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	// Session with FullSaveAssociations upserts the remaining item rows
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID, including its items.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves all orders with their items.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes an order and its items from the database.
// The item rows are deleted explicitly rather than relying on the database
// cascade, so the operation behaves the same on schemas migrated without it.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Where("order_id = ?", id.Bytes()).Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// GetAllAwaitingPaymentBefore retrieves orders still awaiting payment placed
// before the cutoff. Used by the stale-order cancellation job.
func (r *GormOrderRepository) GetAllAwaitingPaymentBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status = ? AND order_date < ?", int(order.AwaitingPayment), cutoff).
		Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
