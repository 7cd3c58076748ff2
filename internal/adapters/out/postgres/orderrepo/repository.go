package orderrepo

import (
	"context"
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new table order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.TableOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.TableID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.TableID(), aggregate)
	return nil
}

// Update saves an existing table order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.TableOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&TableOrderDTO{}).
		Where("table_id = ?", dto.TableID).
		Updates(map[string]any{
			"table_name": dto.TableDisplayName,
			"items":      dto.Items,
			"start_time": dto.StartTime,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.TableID().String())
	}

	r.tracker.TrackAggregate(aggregate.TableID(), aggregate)
	return nil
}

// GetByTableID retrieves the active order for a table.
func (r *GormOrderRepository) GetByTableID(ctx context.Context, tableID kernel.ID) (*order.TableOrder, error) {
	if err := tableID.Validate(); err != nil {
		return nil, err
	}

	var dto TableOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "table_id = ?", tableID.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", tableID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// DeleteByTableID removes the active order for a table.
func (r *GormOrderRepository) DeleteByTableID(ctx context.Context, tableID kernel.ID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&TableOrderDTO{}, "table_id = ?", tableID.String())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", tableID.String())
	}

	return nil
}
