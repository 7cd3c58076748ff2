package order

import (
	"errors"
	"time"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/errs"
)

var (
	// ErrTableOrderIsNotConstructed is returned when a TableOrder instance was not
	// created through the NewTableOrder or RestoreTableOrder factory functions.
	ErrTableOrderIsNotConstructed = errors.New(
		"TableOrder must be created via NewTableOrder or RestoreTableOrder constructor")
)

// TableOrder represents the single active order bound to one table.
// It is the aggregate root of the order aggregator and owns the item-merge
// algorithm.
//
// TableOrder follows these invariants:
//   - Bound to exactly one table by identifier; at most one order exists per
//     table at any time (enforced by the repository's table-id key)
//   - Every line item has a valid menu item reference and positive quantity
//   - Line items already sent to the kitchen are immutable by merge
//   - Can only be created through NewTableOrder or RestoreTableOrder
//
// The order is destroyed on completion; the invoice, if one is created, is
// the sole durable record of what was served.
type TableOrder struct {
	// tableID identifies the table this order is bound to
	tableID kernel.ID

	// tableName is a denormalized snapshot of the table's display name
	tableName string

	// items is the ordered sequence of line items
	items []LineItem

	// startTime records when the first item batch was submitted
	startTime time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewTableOrder creates the order for a table from its first item batch.
// The batch is adopted verbatim; an empty batch creates an empty order.
//
// Returns a validation error if the table id is invalid, the table name is
// empty, or the start time is zero.
func NewTableOrder(tableID kernel.ID, tableName string, items []LineItem, startTime time.Time) (*TableOrder, error) {
	return RestoreTableOrder(tableID, tableName, items, startTime)
}

// RestoreTableOrder reconstructs a TableOrder from persistence.
func RestoreTableOrder(tableID kernel.ID, tableName string, items []LineItem, startTime time.Time) (*TableOrder, error) {
	o := &TableOrder{isConstructed: true}

	if err := errors.Join(
		o.setTableID(tableID),
		o.setTableName(tableName),
		o.setStartTime(startTime),
	); err != nil {
		return nil, err
	}

	o.items = append([]LineItem(nil), items...)
	return o, nil
}

// Validate ensures the TableOrder instance was properly constructed.
func (o *TableOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrTableOrderIsNotConstructed
	}
	return nil
}

// TableID returns the identifier of the table this order is bound to.
func (o *TableOrder) TableID() kernel.ID {
	return o.tableID
}

// TableName returns the denormalized table display name.
func (o *TableOrder) TableName() string {
	return o.tableName
}

// Items returns a copy of the ordered line item sequence.
func (o *TableOrder) Items() []LineItem {
	return append([]LineItem(nil), o.items...)
}

// StartTime returns when the order was opened.
func (o *TableOrder) StartTime() time.Time {
	return o.startTime
}

// MergeItems merges an incoming item batch into the existing sequence.
//
// Each incoming item is evaluated against the existing sequence in original
// order, stopping at the first line with the same menu item identifier:
//
//   - match with sentToKitchen set: the incoming item is appended as a brand
//     new line, so the repeat order is tracked and fired separately
//   - match with sentToKitchen clear: the incoming quantity is coalesced into
//     that line in place
//   - no match: the incoming item is appended as a new line
//
// The batch is processed sequentially: a line appended for one incoming item
// is part of the sequence seen by the next, so two pending duplicates within
// one batch coalesce with each other. An empty batch is a valid no-op.
func (o *TableOrder) MergeItems(incoming []LineItem) error {
	if err := o.Validate(); err != nil {
		return err
	}

	for _, in := range incoming {
		merged := false
		for i := range o.items {
			if o.items[i].MenuItemID() != in.MenuItemID() {
				continue
			}
			if o.items[i].SentToKitchen() {
				o.items = append(o.items, in)
			} else {
				o.items[i].addQuantity(in.Quantity())
			}
			merged = true
			break
		}
		if !merged {
			o.items = append(o.items, in)
		}
	}

	return nil
}

// MarkAllSent flags every line item as sent to the kitchen, regardless of its
// current flag. The operation is coarse and idempotent; a re-submission after
// a partial send relies on the merge rule to keep previously sent lines
// separate rather than on selective marking here.
func (o *TableOrder) MarkAllSent() error {
	if err := o.Validate(); err != nil {
		return err
	}

	for i := range o.items {
		o.items[i].markSent()
	}
	return nil
}

func (o *TableOrder) setTableID(tableID kernel.ID) error {
	if err := tableID.Validate(); err != nil {
		return err
	}
	o.tableID = tableID
	return nil
}

func (o *TableOrder) setTableName(tableName string) error {
	if tableName == "" {
		return errs.NewValueIsRequiredError("table name")
	}
	o.tableName = tableName
	return nil
}

func (o *TableOrder) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("start time")
	}
	o.startTime = startTime
	return nil
}
