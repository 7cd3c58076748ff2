package commands

import (
	"context"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
)

// CreateInvoiceCommandHandler appends a new invoice to the archive.
type CreateInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewCreateInvoiceCommandHandler creates a handler for recording invoices.
func NewCreateInvoiceCommandHandler(uowFactory InvoiceUoWFactory) CreateInvoiceCommandHandler {
	return CreateInvoiceCommandHandler{uowFactory: uowFactory}
}

// Handle assigns the invoice a fresh identifier, stores it, and returns it.
func (h CreateInvoiceCommandHandler) Handle(ctx context.Context, cmd CreateInvoiceCommand) (*invoice.Invoice, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	inv, err := invoice.NewInvoice(
		kernel.NewID(),
		cmd.BillNumber(),
		cmd.OrderType(),
		cmd.TableName(),
		cmd.Items(),
		cmd.Subtotal(),
		cmd.Tax(),
		cmd.Total(),
		cmd.Timestamp(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()

	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.InvoiceRepository().Add(ctx, inv); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return inv, nil
}
