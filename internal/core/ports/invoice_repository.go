package ports

import (
	"context"

	"dinepos/internal/core/domain/model/invoice"
)

// InvoiceRepository defines the persistence contract for invoices.
// Invoices are append-only: there is deliberately no update or delete.
type InvoiceRepository interface {
	// Add persists a new invoice.
	Add(ctx context.Context, aggregate *invoice.Invoice) error
}
