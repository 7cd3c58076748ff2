package commands

import (
	"context"
	"errors"

	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/locks"
)

// DeleteTableCommandHandler handles table removal.
// Deletion is rejected with ErrTableHasActiveOrder while an active order
// still references the table; there is no cascade.
type DeleteTableCommandHandler struct {
	uowFactory DiningUoWFactory
	tableLocks *locks.KeyedMutex
}

// NewDeleteTableCommandHandler creates a handler for table removal.
func NewDeleteTableCommandHandler(uowFactory DiningUoWFactory, tableLocks *locks.KeyedMutex) DeleteTableCommandHandler {
	return DeleteTableCommandHandler{uowFactory: uowFactory, tableLocks: tableLocks}
}

// Handle processes the table removal command.
// Returns a not-found error if the table is absent.
func (h *DeleteTableCommandHandler) Handle(ctx context.Context, cmd DeleteTableCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.tableLocks.Lock(cmd.ID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, err := uow.OrderRepository().GetByTableID(ctx, cmd.ID())
	switch {
	case err == nil:
		return ErrTableHasActiveOrder
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = uow.TableRepository().Delete(ctx, cmd.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
