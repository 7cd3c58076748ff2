package settingsrepo

import (
	"context"

	"dinepos/internal/core/domain/model/settings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository implements SettingsRepository using GORM.
//
// FetchOrCreate uses INSERT ... ON CONFLICT DO NOTHING followed by a read,
// so concurrent first-reads racing to create the row leave exactly one row
// behind and every caller sees it.
type GormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM settings repository.
func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

// FetchOrCreateKOT returns the KOT configuration, inserting the default row
// if none exists.
func (r *GormSettingsRepository) FetchOrCreateKOT(ctx context.Context) (*settings.KOTConfig, error) {
	defaults := kotFromDomain(settings.DefaultKOTConfig())
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
	if err != nil {
		return nil, err
	}

	var dto KOTConfigDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", singletonRowID).Error; err != nil {
		return nil, err
	}

	return kotToDomain(dto)
}

// UpdateKOT persists the KOT configuration singleton.
func (r *GormSettingsRepository) UpdateKOT(ctx context.Context, cfg *settings.KOTConfig) error {
	dto := kotFromDomain(cfg)
	return r.db.WithContext(ctx).Model(&KOTConfigDTO{}).
		Where("id = ?", singletonRowID).
		Updates(map[string]any{
			"print_by_department": dto.PrintByDepartment,
			"number_of_copies":    dto.NumberOfCopies,
		}).Error
}

// FetchOrCreateBill returns the bill configuration, inserting the default row
// if none exists.
func (r *GormSettingsRepository) FetchOrCreateBill(ctx context.Context) (*settings.BillConfig, error) {
	defaults := billFromDomain(settings.DefaultBillConfig())
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
	if err != nil {
		return nil, err
	}

	var dto BillConfigDTO
	if err = r.db.WithContext(ctx).First(&dto, "id = ?", singletonRowID).Error; err != nil {
		return nil, err
	}

	return billToDomain(dto), nil
}

// UpdateBill persists the bill configuration singleton.
func (r *GormSettingsRepository) UpdateBill(ctx context.Context, cfg *settings.BillConfig) error {
	dto := billFromDomain(cfg)
	return r.db.WithContext(ctx).Model(&BillConfigDTO{}).
		Where("id = ?", singletonRowID).
		Updates(map[string]any{
			"auto_print_dine_in":  dto.AutoPrintDineIn,
			"auto_print_takeaway": dto.AutoPrintTakeaway,
		}).Error
}
