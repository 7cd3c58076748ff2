// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/guard"
)

var (
	ErrGetAllTablesQueryIsNotConstructed = errors.New(
		"GetAllTablesQuery must be created via NewGetAllTablesQuery constructor",
	)
)

// GetAllTablesQuery retrieves the full table registry for the floor view.
//
// Example:
//
//	query := NewGetAllTablesQuery()
//	handler := NewGetAllTablesQueryHandler(db)
//
//	tables, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve tables: %w", err)
//	}
type GetAllTablesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTablesQuery creates a query to retrieve all tables.
func NewGetAllTablesQuery() GetAllTablesQuery {
	return GetAllTablesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllTablesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTablesQueryIsNotConstructed)
}

// GetAllTablesQueryResponse represents one table in the registry read model.
type GetAllTablesQueryResponse struct {
	ID       kernel.ID
	Name     string
	Seats    int
	Category string
	Status   table.Status
}
