package commands

import (
	"errors"
	"time"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/guard"
)

var (
	ErrFinalizeTableCommandIsNotConstructed = errors.New(
		"FinalizeTableCommand must be created via NewFinalizeTableCommand constructor",
	)
)

// FinalizeTableCommand settles a dine-in table in one step: the bill is
// recorded, the active order removed, and the table released, all inside a
// single transaction.
type FinalizeTableCommand struct { //nolint:recvcheck //using for validation
	tableID    kernel.ID
	billNumber string
	items      []map[string]any
	subtotal   float64
	tax        float64
	total      float64
	timestamp  time.Time

	guard guard.ConstructorGuard
}

// NewFinalizeTableCommand creates a command to settle a dine-in table.
// The resulting invoice is always dine-in; its table name is snapshotted
// from the table's active order during handling.
func NewFinalizeTableCommand(
	tableID kernel.ID,
	billNumber string,
	items []map[string]any,
	subtotal, tax, total float64,
	rawTimestamp string,
) (FinalizeTableCommand, error) {
	if err := tableID.Validate(); err != nil {
		return FinalizeTableCommand{}, err
	}
	if billNumber == "" {
		return FinalizeTableCommand{}, errs.NewValueIsRequiredError("billNumber")
	}

	timestamp, err := invoice.ParseTimestamp(rawTimestamp)
	if err != nil {
		return FinalizeTableCommand{}, err
	}

	return FinalizeTableCommand{
		tableID:    tableID,
		billNumber: billNumber,
		items:      append([]map[string]any(nil), items...),
		subtotal:   subtotal,
		tax:        tax,
		total:      total,
		timestamp:  timestamp,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinalizeTableCommand) Validate() error {
	return c.guard.Validate(ErrFinalizeTableCommandIsNotConstructed)
}

// TableID returns the identifier of the table being settled.
func (c FinalizeTableCommand) TableID() kernel.ID {
	return c.tableID
}

// BillNumber returns the caller-supplied bill sequence label.
func (c FinalizeTableCommand) BillNumber() string {
	return c.billNumber
}

// Items returns the opaque line item snapshot for the bill.
func (c FinalizeTableCommand) Items() []map[string]any {
	return append([]map[string]any(nil), c.items...)
}

// Subtotal returns the caller-computed subtotal.
func (c FinalizeTableCommand) Subtotal() float64 {
	return c.subtotal
}

// Tax returns the caller-computed tax.
func (c FinalizeTableCommand) Tax() float64 {
	return c.tax
}

// Total returns the caller-computed total.
func (c FinalizeTableCommand) Total() float64 {
	return c.total
}

// Timestamp returns the parsed, UTC-normalized issue time.
func (c FinalizeTableCommand) Timestamp() time.Time {
	return c.timestamp
}
