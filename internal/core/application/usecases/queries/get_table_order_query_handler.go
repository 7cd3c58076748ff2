package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// GetTableOrderQueryHandler retrieves a single table's active order.
type GetTableOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetTableOrderQueryHandler creates a handler for single-table order queries.
func NewGetTableOrderQueryHandler(db *gorm.DB) GetTableOrderQueryHandler {
	return GetTableOrderQueryHandler{db: db}
}

// Handle executes the query. A table with no active order yields a nil
// response and no error; the HTTP layer renders that as an empty object.
func (h GetTableOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTableOrderQuery,
) (*GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			table_name,
			items,
			start_time
		FROM table_orders
		WHERE table_id = ?
	`, query.TableID().String()).Row()

	var tableName, items string
	var startTime time.Time

	if err := row.Scan(&tableName, &items, &startTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &GetAllOrdersQueryResponse{
		TableID:   query.TableID(),
		TableName: tableName,
		Items:     json.RawMessage(items),
		StartTime: startTime.UTC(),
	}, nil
}
