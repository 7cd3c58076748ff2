package queries

import (
	"context"

	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/pkg/locks"
)

// GetKOTConfigQueryHandler reads the KOT configuration singleton, inserting
// the default row on first access.
type GetKOTConfigQueryHandler struct {
	uowFactory  SettingsUoWFactory
	configLocks *locks.KeyedMutex
}

// NewGetKOTConfigQueryHandler creates a handler for KOT configuration reads.
func NewGetKOTConfigQueryHandler(uowFactory SettingsUoWFactory, configLocks *locks.KeyedMutex) GetKOTConfigQueryHandler {
	return GetKOTConfigQueryHandler{
		uowFactory:  uowFactory,
		configLocks: configLocks,
	}
}

// Handle returns the stored KOT configuration. First access runs under the
// config key's exclusive section so racing readers create a single row.
func (h GetKOTConfigQueryHandler) Handle(ctx context.Context, query GetKOTConfigQuery) (*settings.KOTConfig, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	unlock := h.configLocks.Lock(settings.KOTConfigKey)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	cfg, err := uow.SettingsRepository().FetchOrCreateKOT(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}
