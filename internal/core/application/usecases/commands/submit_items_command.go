package commands

import (
	"errors"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/guard"
)

var (
	ErrSubmitItemsCommandIsNotConstructed = errors.New(
		"SubmitItemsCommand must be created via NewSubmitItemsCommand constructor",
	)
)

// SubmitItemsCommand represents an item batch submitted to a table.
// The first submission for a table opens its order; subsequent submissions
// merge into the existing item sequence.
//
// Example:
//
//	items := []order.LineItem{espresso, latte}
//	cmd, err := NewSubmitItemsCommand(tableID, "Table 1", items)
//	if err != nil {
//	    return fmt.Errorf("invalid submission: %w", err)
//	}
//
//	handler := NewSubmitItemsCommandHandler(uowFactory, tableLocks)
//	updated, err := handler.Handle(ctx, cmd)
type SubmitItemsCommand struct { //nolint:recvcheck //using for validation
	tableID   kernel.ID
	tableName string
	items     []order.LineItem

	guard guard.ConstructorGuard
}

// NewSubmitItemsCommand creates a command to submit an item batch to a table.
// The table name is required because it is denormalized onto a newly opened
// order; an empty batch is valid and merges as a no-op.
func NewSubmitItemsCommand(tableID kernel.ID, tableName string, items []order.LineItem) (SubmitItemsCommand, error) {
	if err := tableID.Validate(); err != nil {
		return SubmitItemsCommand{}, err
	}
	if tableName == "" {
		return SubmitItemsCommand{}, errs.NewValueIsRequiredError("table name")
	}

	return SubmitItemsCommand{
		tableID:   tableID,
		tableName: tableName,
		items:     append([]order.LineItem(nil), items...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitItemsCommand) Validate() error {
	return c.guard.Validate(ErrSubmitItemsCommandIsNotConstructed)
}

// TableID returns the identifier of the table receiving the batch.
func (c SubmitItemsCommand) TableID() kernel.ID {
	return c.tableID
}

// TableName returns the display name denormalized onto the order.
func (c SubmitItemsCommand) TableName() string {
	return c.tableName
}

// Items returns the submitted item batch.
func (c SubmitItemsCommand) Items() []order.LineItem {
	return append([]order.LineItem(nil), c.items...)
}
