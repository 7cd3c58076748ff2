package queries

import (
	"context"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/table"

	"gorm.io/gorm"
)

// GetAllTablesQueryHandler retrieves the table registry from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllTablesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTablesQueryHandler creates a handler for table registry queries.
func NewGetAllTablesQueryHandler(db *gorm.DB) GetAllTablesQueryHandler {
	return GetAllTablesQueryHandler{db: db}
}

// Handle executes the query and returns all tables sorted by name.
func (h GetAllTablesQueryHandler) Handle(
	ctx context.Context,
	query GetAllTablesQuery,
) ([]GetAllTablesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tables := make([]GetAllTablesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			seats,
			category,
			status
		FROM tables
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllTablesQueryResponse
		var id, status string

		err = rows.Scan(
			&id,
			&row.Name,
			&row.Seats,
			&row.Category,
			&status,
		)
		if err != nil {
			return nil, err
		}

		tableID, idErr := kernel.IDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		row.ID = tableID

		tableStatus, statusErr := table.StatusFromString(status)
		if statusErr != nil {
			return nil, statusErr
		}
		row.Status = tableStatus

		tables = append(tables, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tables, nil
}
