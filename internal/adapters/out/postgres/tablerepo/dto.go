// Package tablerepo provides data transfer objects and mapping functions for
// table persistence. This package implements the repository pattern for the
// table domain aggregate, handling the conversion between domain entities and
// database representations.
package tablerepo

import (
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/table"
)

// TableDTO represents the database structure for persisting table aggregates.
type TableDTO struct {
	ID       string `gorm:"type:text;primaryKey"`
	Name     string `gorm:"type:text"`
	Seats    int
	Category string `gorm:"type:text"`
	Status   string `gorm:"type:text"`
}

// TableName specifies the database table name for table entities.
// Overrides GORM's default naming convention to use "tables".
func (TableDTO) TableName() string {
	return "tables"
}

// fromDomain converts a table domain aggregate to its database representation.
func fromDomain(aggregate *table.Table) TableDTO {
	return TableDTO{
		ID:       aggregate.ID().String(),
		Name:     aggregate.Name(),
		Seats:    aggregate.Seats(),
		Category: aggregate.Category(),
		Status:   aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a table domain aggregate.
func toDomain(dto TableDTO) (*table.Table, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	status, err := table.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return table.RestoreTable(id, dto.Name, dto.Seats, dto.Category, status)
}
