package queries

import (
	"context"
	"encoding/json"
	"time"

	"dinepos/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all active orders from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for active order queries.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query and returns all active orders, oldest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			table_id,
			table_name,
			items,
			start_time
		FROM table_orders
		ORDER BY start_time
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllOrdersQueryResponse
		var tableID, items string
		var startTime time.Time

		err = rows.Scan(
			&tableID,
			&row.TableName,
			&items,
			&startTime,
		)
		if err != nil {
			return nil, err
		}

		id, idErr := kernel.IDFromString(tableID)
		if idErr != nil {
			return nil, idErr
		}
		row.TableID = id
		row.Items = json.RawMessage(items)
		row.StartTime = startTime.UTC()

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
