package commands

import (
	"context"

	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/locks"
)

// UpdateTableCommandHandler handles partial updates of table fields.
// The update runs under the table's exclusive section so it cannot interleave
// with an order lifecycle operation flipping the same table's status.
type UpdateTableCommandHandler struct {
	uowFactory TableUoWFactory
	tableLocks *locks.KeyedMutex
}

// NewUpdateTableCommandHandler creates a handler for table updates.
func NewUpdateTableCommandHandler(uowFactory TableUoWFactory, tableLocks *locks.KeyedMutex) UpdateTableCommandHandler {
	return UpdateTableCommandHandler{uowFactory: uowFactory, tableLocks: tableLocks}
}

// Handle processes the partial update and returns the updated table.
// Returns a not-found error if the table is absent.
func (h *UpdateTableCommandHandler) Handle(ctx context.Context, cmd UpdateTableCommand) (*table.Table, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.tableLocks.Lock(cmd.ID().String())
	defer unlock()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.TableRepository()
	tbl, err := repo.Get(ctx, cmd.ID())
	if err != nil {
		return nil, err
	}

	if err = applyTablePatch(tbl, cmd); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, tbl); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tbl, nil
}

func applyTablePatch(tbl *table.Table, cmd UpdateTableCommand) error {
	if cmd.Name() != nil {
		if err := tbl.Rename(*cmd.Name()); err != nil {
			return err
		}
	}
	if cmd.Seats() != nil {
		if err := tbl.ChangeSeats(*cmd.Seats()); err != nil {
			return err
		}
	}
	if cmd.Category() != nil {
		if err := tbl.ChangeCategory(*cmd.Category()); err != nil {
			return err
		}
	}
	if cmd.Status() != nil {
		if err := tbl.ChangeStatus(*cmd.Status()); err != nil {
			return err
		}
	}
	return nil
}
