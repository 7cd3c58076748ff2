// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, per-table exclusion
// where the operation touches the order/table pair, transaction management,
// and persistence.
package commands

import (
	"context"

	"dinepos/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories its operation touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// TableRepoFactory provides access to the table repository within a transaction.
	TableRepoFactory interface {
		TableRepository() ports.TableRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// SettingsRepoFactory provides access to the settings repository within a transaction.
	SettingsRepoFactory interface {
		SettingsRepository() ports.SettingsRepository
	}

	// TableUoW manages transactions for table-registry-only operations.
	TableUoW interface {
		TxManager
		TableRepoFactory
	}

	// TableUoWFactory creates new table unit of work instances.
	TableUoWFactory interface {
		Create() TableUoW
	}

	// DiningUoW manages transactions that read-then-write the order/table
	// pair for one table: item submission, marking sent, completion, and the
	// active-order check on table deletion.
	DiningUoW interface {
		TxManager
		TableRepoFactory
		OrderRepoFactory
	}

	// DiningUoWFactory creates new dining unit of work instances.
	DiningUoWFactory interface {
		Create() DiningUoW
	}

	// InvoiceUoW manages transactions for invoice-only operations.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// CheckoutUoW manages the finalize transaction, which spans all three
	// aggregates: the order is deleted, the table released, and the invoice
	// persisted atomically.
	CheckoutUoW interface {
		TxManager
		TableRepoFactory
		OrderRepoFactory
		InvoiceRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// SettingsUoW manages transactions for the configuration singletons.
	SettingsUoW interface {
		TxManager
		SettingsRepoFactory
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
