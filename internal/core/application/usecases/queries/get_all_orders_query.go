package queries

import (
	"encoding/json"
	"errors"
	"time"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/guard"
)

var (
	ErrGetAllOrdersQueryIsNotConstructed = errors.New(
		"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
	)
)

// GetAllOrdersQuery retrieves every active dine-in order for the floor view.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all active orders.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// GetAllOrdersQueryResponse represents one active order in the read model.
// Items carry the stored line item JSON untouched so attribute fields pass
// through to the client unchanged.
type GetAllOrdersQueryResponse struct {
	TableID   kernel.ID
	TableName string
	Items     json.RawMessage
	StartTime time.Time
}
