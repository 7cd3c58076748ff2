package commands

import (
	"context"

	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/pkg/locks"
)

// MarkItemsSentCommandHandler transitions all items on a table's order to
// the sent state. After this, resubmitting the same menu item appends a new
// line instead of bumping the quantity of an already fired one.
type MarkItemsSentCommandHandler struct {
	uowFactory DiningUoWFactory
	tableLocks *locks.KeyedMutex
}

// NewMarkItemsSentCommandHandler creates a handler for marking items sent.
func NewMarkItemsSentCommandHandler(uowFactory DiningUoWFactory, tableLocks *locks.KeyedMutex) MarkItemsSentCommandHandler {
	return MarkItemsSentCommandHandler{
		uowFactory: uowFactory,
		tableLocks: tableLocks,
	}
}

// Handle marks every item on the table's order as sent and returns the
// updated order. Tables without an active order yield errs.ErrObjectNotFound.
func (h MarkItemsSentCommandHandler) Handle(ctx context.Context, cmd MarkItemsSentCommand) (*order.TableOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	unlock := h.tableLocks.Lock(cmd.TableID().String())
	defer unlock()

	uow := h.uowFactory.Create()

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	orderRepo := uow.OrderRepository()
	tableOrder, err := orderRepo.GetByTableID(ctx, cmd.TableID())
	if err != nil {
		return nil, err
	}

	if err = tableOrder.MarkAllSent(); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, tableOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tableOrder, nil
}
