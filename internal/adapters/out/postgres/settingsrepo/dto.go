// Package settingsrepo persists the KOT and bill configuration singletons.
// Each configuration lives in its own single-row table; the row is created
// with defaults the first time it is read.
package settingsrepo

import (
	"dinepos/internal/core/domain/model/settings"
)

// singletonRowID is the fixed primary key of both configuration rows.
const singletonRowID = 1

// KOTConfigDTO represents the database row for the KOT printing preferences.
type KOTConfigDTO struct {
	ID                int  `gorm:"primaryKey"`
	PrintByDepartment bool `gorm:"column:print_by_department"`
	NumberOfCopies    int  `gorm:"column:number_of_copies"`
}

// TableName overrides GORM's default naming convention.
func (KOTConfigDTO) TableName() string {
	return "kot_configs"
}

// BillConfigDTO represents the database row for the bill auto-print preferences.
type BillConfigDTO struct {
	ID                int  `gorm:"primaryKey"`
	AutoPrintDineIn   bool `gorm:"column:auto_print_dine_in"`
	AutoPrintTakeaway bool `gorm:"column:auto_print_takeaway"`
}

// TableName overrides GORM's default naming convention.
func (BillConfigDTO) TableName() string {
	return "bill_configs"
}

func kotFromDomain(cfg *settings.KOTConfig) KOTConfigDTO {
	return KOTConfigDTO{
		ID:                singletonRowID,
		PrintByDepartment: cfg.PrintByDepartment(),
		NumberOfCopies:    cfg.NumberOfCopies(),
	}
}

func kotToDomain(dto KOTConfigDTO) (*settings.KOTConfig, error) {
	return settings.NewKOTConfig(dto.PrintByDepartment, dto.NumberOfCopies)
}

func billFromDomain(cfg *settings.BillConfig) BillConfigDTO {
	return BillConfigDTO{
		ID:                singletonRowID,
		AutoPrintDineIn:   cfg.AutoPrintDineIn(),
		AutoPrintTakeaway: cfg.AutoPrintTakeaway(),
	}
}

func billToDomain(dto BillConfigDTO) *settings.BillConfig {
	return settings.NewBillConfig(dto.AutoPrintDineIn, dto.AutoPrintTakeaway)
}
