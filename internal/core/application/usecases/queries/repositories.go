package queries

import (
	"context"

	"dinepos/internal/core/ports"
)

// The configuration reads are the one place the query side needs a unit of
// work: a missing config row is created with defaults on first read, which
// is a write.
type (
	// SettingsUoW manages transactions for the configuration singletons.
	SettingsUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error

		SettingsRepository() ports.SettingsRepository
	}

	// SettingsUoWFactory creates new settings unit of work instances.
	SettingsUoWFactory interface {
		Create() SettingsUoW
	}
)
