package commands

import (
	"context"
	"errors"
	"time"

	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/locks"
)

// SubmitItemsCommandHandler opens a table's order on first submission and
// merges later batches into it, then marks the table occupied.
type SubmitItemsCommandHandler struct {
	uowFactory DiningUoWFactory
	tableLocks *locks.KeyedMutex
}

// NewSubmitItemsCommandHandler creates a handler for item submissions.
func NewSubmitItemsCommandHandler(uowFactory DiningUoWFactory, tableLocks *locks.KeyedMutex) SubmitItemsCommandHandler {
	return SubmitItemsCommandHandler{
		uowFactory: uowFactory,
		tableLocks: tableLocks,
	}
}

// Handle applies the batch to the table's order and returns the updated order.
// Submissions for the same table run one at a time, so concurrent batches
// never open two orders for a single table. A submission to a table missing
// from the registry still opens an order; only the status flip is skipped.
func (h SubmitItemsCommandHandler) Handle(ctx context.Context, cmd SubmitItemsCommand) (*order.TableOrder, error) {
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
	switch {
	case err == nil:
		if err = tableOrder.MergeItems(cmd.Items()); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, tableOrder); err != nil {
			return nil, err
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// The first batch is stored as submitted; merging only applies to
		// batches arriving after the order exists.
		tableOrder, err = order.NewTableOrder(cmd.TableID(), cmd.TableName(), cmd.Items(), time.Now().UTC())
		if err != nil {
			return nil, err
		}
		if err = orderRepo.Add(ctx, tableOrder); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err = h.occupyTable(ctx, uow, cmd); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tableOrder, nil
}

func (h SubmitItemsCommandHandler) occupyTable(ctx context.Context, uow DiningUoW, cmd SubmitItemsCommand) error {
	tableRepo := uow.TableRepository()

	diningTable, err := tableRepo.Get(ctx, cmd.TableID())
	if err != nil {
		// Orders are accepted even for tables absent from the registry.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil
		}

		return err
	}

	diningTable.Occupy()

	return tableRepo.Update(ctx, diningTable)
}
