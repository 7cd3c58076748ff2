package commands

import (
	"context"

	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/pkg/locks"
)

// UpdateBillConfigCommandHandler applies a partial update to the bill
// auto-print configuration singleton.
type UpdateBillConfigCommandHandler struct {
	uowFactory  SettingsUoWFactory
	configLocks *locks.KeyedMutex
}

// NewUpdateBillConfigCommandHandler creates a handler for bill config updates.
func NewUpdateBillConfigCommandHandler(uowFactory SettingsUoWFactory, configLocks *locks.KeyedMutex) UpdateBillConfigCommandHandler {
	return UpdateBillConfigCommandHandler{
		uowFactory:  uowFactory,
		configLocks: configLocks,
	}
}

// Handle reads the current configuration, creating it with defaults when the
// row does not exist yet, patches it, and returns the stored state.
func (h UpdateBillConfigCommandHandler) Handle(ctx context.Context, cmd UpdateBillConfigCommand) (*settings.BillConfig, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.configLocks.Lock(settings.BillConfigKey)
	defer unlock()

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.SettingsRepository()
	cfg, err := repo.FetchOrCreateBill(ctx)
	if err != nil {
		return nil, err
	}

	cfg.Patch(cmd.AutoPrintDineIn(), cmd.AutoPrintTakeAway())

	if err = repo.UpdateBill(ctx, cfg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}
