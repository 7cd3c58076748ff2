package commands

import (
	"context"
	"errors"

	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/locks"
)

// CompleteOrderCommandHandler removes a table's active order and releases
// the table back to available.
type CompleteOrderCommandHandler struct {
	uowFactory DiningUoWFactory
	tableLocks *locks.KeyedMutex
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory DiningUoWFactory, tableLocks *locks.KeyedMutex) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
		tableLocks: tableLocks,
	}
}

// Handle deletes the table's order, if any, and releases the table. Both
// sides are tolerant: a table with no active order still gets released, and
// a table absent from the registry still gets its order removed.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlock := h.tableLocks.Lock(cmd.TableID().String())
	defer unlock()

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.OrderRepository().DeleteByTableID(ctx, cmd.TableID()); err != nil &&
		!errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err := h.releaseTable(ctx, uow, cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h CompleteOrderCommandHandler) releaseTable(ctx context.Context, uow DiningUoW, cmd CompleteOrderCommand) error {
	tableRepo := uow.TableRepository()

	diningTable, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}

		return err
	}

	diningTable.Release()

	return tableRepo.Update(ctx, diningTable)
}
