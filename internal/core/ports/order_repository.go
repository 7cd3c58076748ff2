package ports

import (
	"context"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for table order aggregates.
// Orders are keyed by table identifier, which is what enforces the one active
// order per table invariant at the storage level.
type OrderRepository interface {
	// Add persists a new order for a table.
	Add(ctx context.Context, aggregate *order.TableOrder) error

	// Update persists changes to an existing order.
	// Returns a not-found error if no order exists for the table.
	Update(ctx context.Context, aggregate *order.TableOrder) error

	// GetByTableID retrieves the active order for a table.
	// Returns a not-found error if no order exists for the table.
	GetByTableID(ctx context.Context, tableID kernel.ID) (*order.TableOrder, error)

	// DeleteByTableID removes the active order for a table.
	// Returns a not-found error if no order exists for the table.
	DeleteByTableID(ctx context.Context, tableID kernel.ID) error
}
