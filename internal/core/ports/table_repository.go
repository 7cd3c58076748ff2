package ports

import (
	"context"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/table"
)

// TableRepository defines the persistence contract for table aggregates.
type TableRepository interface {
	// Add persists a new table. A table with the same identifier must not
	// already exist; duplicates are rejected with an already-exists error.
	Add(ctx context.Context, aggregate *table.Table) error

	// Update persists changes to an existing table.
	// Returns a not-found error if the table is absent.
	Update(ctx context.Context, aggregate *table.Table) error

	// Get retrieves a table by its identifier.
	// Returns a not-found error if the table is absent.
	Get(ctx context.Context, id kernel.ID) (*table.Table, error)

	// Delete removes a table by its identifier.
	// Returns a not-found error if the table is absent.
	Delete(ctx context.Context, id kernel.ID) error
}
