package commands

import (
	"context"
	"errors"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/locks"
)

// FinalizeTableCommandHandler settles a table atomically: invoice recorded,
// order removed, table released. If any step fails the transaction rolls
// back and the table keeps its order.
type FinalizeTableCommandHandler struct {
	uowFactory CheckoutUoWFactory
	tableLocks *locks.KeyedMutex
}

// NewFinalizeTableCommandHandler creates a handler for settling tables.
func NewFinalizeTableCommandHandler(uowFactory CheckoutUoWFactory, tableLocks *locks.KeyedMutex) FinalizeTableCommandHandler {
	return FinalizeTableCommandHandler{
		uowFactory: uowFactory,
		tableLocks: tableLocks,
	}
}

// Handle records the bill, deletes the table's order, releases the table,
// and returns the stored invoice. The table must have an active order; its
// display name from that order is snapshotted onto the invoice.
func (h FinalizeTableCommandHandler) Handle(ctx context.Context, cmd FinalizeTableCommand) (*invoice.Invoice, error) {
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

	inv, err := invoice.NewInvoice(
		kernel.NewID(),
		cmd.BillNumber(),
		invoice.DineIn,
		tableOrder.TableName(),
		cmd.Items(),
		cmd.Subtotal(),
		cmd.Tax(),
		cmd.Total(),
		cmd.Timestamp(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return nil, err
	}

	if err = orderRepo.DeleteByTableID(ctx, cmd.TableID()); err != nil {
		return nil, err
	}

	if err = h.releaseTable(ctx, uow, cmd); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}

func (h FinalizeTableCommandHandler) releaseTable(ctx context.Context, uow CheckoutUoW, cmd FinalizeTableCommand) error {
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
