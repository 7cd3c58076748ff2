package ports

import (
	"context"

	"dinepos/internal/core/domain/model/settings"
)

// SettingsRepository defines the persistence contract for the KOT and bill
// configuration singletons.
//
// FetchOrCreate is an upsert: when no row exists yet, the defaults are
// inserted and returned. Concurrent first-reads racing to create the row must
// leave exactly one row behind.
type SettingsRepository interface {
	// FetchOrCreateKOT returns the KOT configuration, inserting the default
	// row first if none exists.
	FetchOrCreateKOT(ctx context.Context) (*settings.KOTConfig, error)

	// UpdateKOT persists the KOT configuration singleton.
	UpdateKOT(ctx context.Context, cfg *settings.KOTConfig) error

	// FetchOrCreateBill returns the bill configuration, inserting the default
	// row first if none exists.
	FetchOrCreateBill(ctx context.Context) (*settings.BillConfig, error)

	// UpdateBill persists the bill configuration singleton.
	UpdateBill(ctx context.Context, cfg *settings.BillConfig) error
}
