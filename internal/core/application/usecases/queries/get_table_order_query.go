package queries

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/guard"
)

var (
	ErrGetTableOrderQueryIsNotConstructed = errors.New(
		"GetTableOrderQuery must be created via NewGetTableOrderQuery constructor",
	)
)

// GetTableOrderQuery retrieves the active order for a single table.
type GetTableOrderQuery struct { //nolint:recvcheck //using for validation
	tableID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetTableOrderQuery creates a query for one table's active order.
func NewGetTableOrderQuery(tableID kernel.ID) (GetTableOrderQuery, error) {
	if err := tableID.Validate(); err != nil {
		return GetTableOrderQuery{}, err
	}

	return GetTableOrderQuery{tableID: tableID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTableOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTableOrderQueryIsNotConstructed)
}

// TableID returns the identifier of the queried table.
func (q GetTableOrderQuery) TableID() kernel.ID {
	return q.tableID
}
