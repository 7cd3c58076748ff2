package queries

import (
	"context"

	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/pkg/locks"
)

// GetBillConfigQueryHandler reads the bill configuration singleton, inserting
// the default row on first access.
type GetBillConfigQueryHandler struct {
	uowFactory  SettingsUoWFactory
	configLocks *locks.KeyedMutex
}

// NewGetBillConfigQueryHandler creates a handler for bill configuration reads.
func NewGetBillConfigQueryHandler(uowFactory SettingsUoWFactory, configLocks *locks.KeyedMutex) GetBillConfigQueryHandler {
	return GetBillConfigQueryHandler{
		uowFactory:  uowFactory,
		configLocks: configLocks,
	}
}

// Handle returns the stored bill configuration. First access runs under the
// config key's exclusive section so racing readers create a single row.
func (h GetBillConfigQueryHandler) Handle(ctx context.Context, query GetBillConfigQuery) (*settings.BillConfig, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	unlock := h.configLocks.Lock(settings.BillConfigKey)
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	cfg, err := uow.SettingsRepository().FetchOrCreateBill(ctx)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}
