package commands

import (
	"context"

	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/pkg/locks"
)

// UpdateKOTConfigCommandHandler applies a partial update to the KOT printing
// configuration singleton.
type UpdateKOTConfigCommandHandler struct {
	uowFactory  SettingsUoWFactory
	configLocks *locks.KeyedMutex
}

// NewUpdateKOTConfigCommandHandler creates a handler for KOT config updates.
func NewUpdateKOTConfigCommandHandler(uowFactory SettingsUoWFactory, configLocks *locks.KeyedMutex) UpdateKOTConfigCommandHandler {
	return UpdateKOTConfigCommandHandler{
		uowFactory:  uowFactory,
		configLocks: configLocks,
	}
}

// Handle reads the current configuration, creating it with defaults when the
// row does not exist yet, patches it, and returns the stored state. Updates
// to the same singleton run one at a time so patches are never lost.
func (h UpdateKOTConfigCommandHandler) Handle(ctx context.Context, cmd UpdateKOTConfigCommand) (*settings.KOTConfig, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.configLocks.Lock(settings.KOTConfigKey)
	defer unlock()

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.SettingsRepository()
	cfg, err := repo.FetchOrCreateKOT(ctx)
	if err != nil {
		return nil, err
	}

	if err = cfg.Patch(cmd.PrintByDepartment(), cmd.NumberOfCopies()); err != nil {
		return nil, err
	}

	if err = repo.UpdateKOT(ctx, cfg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return cfg, nil
}
