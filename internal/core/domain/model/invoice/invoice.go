package invoice

import (
	"errors"
	"time"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through the NewInvoice or RestoreInvoice factory functions.
	ErrInvoiceIsNotConstructed = errors.New(
		"Invoice must be created via NewInvoice or RestoreInvoice constructor")
)

// Invoice is the immutable, durable record of a finished order.
//
// An invoice is pure construction: subtotal, tax, and total are caller-computed
// and passed through without recomputation or arithmetic consistency checks,
// and the item snapshot is stored as received. There is no update or merge
// operation; invoices are append-only, and they are not linked back to the
// source order, which is deleted on completion.
//
// Bill number sequencing is the caller's concern and is not enforced here.
type Invoice struct {
	// id is the unique identifier for the invoice, externally assignable
	id kernel.ID

	// billNumber is the caller-supplied bill sequence label
	billNumber string

	// orderType distinguishes dine-in from take-away
	orderType OrderType

	// tableName is the table display name snapshot, empty for take-away
	tableName string

	// items is the opaque line item snapshot
	items []map[string]any

	// subtotal, tax, and total are caller-computed monetary figures
	subtotal float64
	tax      float64
	total    float64

	// timestamp is when the bill was issued
	timestamp time.Time

	// isConstructed ensures the invoice was created via a constructor
	isConstructed bool
}

// NewInvoice creates an Invoice with validation of its identity fields.
// Monetary figures and the item snapshot are caller-trusted and stored as
// given. The table name may be empty for take-away invoices.
func NewInvoice(
	id kernel.ID,
	billNumber string,
	orderType OrderType,
	tableName string,
	items []map[string]any,
	subtotal, tax, total float64,
	timestamp time.Time,
) (*Invoice, error) {
	inv := &Invoice{isConstructed: true}

	if err := errors.Join(
		inv.setID(id),
		inv.setBillNumber(billNumber),
		inv.setOrderType(orderType),
		inv.setTimestamp(timestamp),
	); err != nil {
		return nil, err
	}

	inv.tableName = tableName
	inv.items = append([]map[string]any(nil), items...)
	inv.subtotal = subtotal
	inv.tax = tax
	inv.total = total

	return inv, nil
}

// RestoreInvoice reconstructs an Invoice from persistence.
func RestoreInvoice(
	id kernel.ID,
	billNumber string,
	orderType OrderType,
	tableName string,
	items []map[string]any,
	subtotal, tax, total float64,
	timestamp time.Time,
) (*Invoice, error) {
	return NewInvoice(id, billNumber, orderType, tableName, items, subtotal, tax, total, timestamp)
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.ID {
	return i.id
}

// BillNumber returns the caller-supplied bill sequence label.
func (i *Invoice) BillNumber() string {
	return i.billNumber
}

// OrderType returns whether the invoice is dine-in or take-away.
func (i *Invoice) OrderType() OrderType {
	return i.orderType
}

// TableName returns the table name snapshot; empty for take-away invoices.
func (i *Invoice) TableName() string {
	return i.tableName
}

// Items returns the opaque line item snapshot.
func (i *Invoice) Items() []map[string]any {
	return append([]map[string]any(nil), i.items...)
}

// Subtotal returns the caller-computed subtotal.
func (i *Invoice) Subtotal() float64 {
	return i.subtotal
}

// Tax returns the caller-computed tax.
func (i *Invoice) Tax() float64 {
	return i.tax
}

// Total returns the caller-computed total.
func (i *Invoice) Total() float64 {
	return i.total
}

// Timestamp returns when the bill was issued.
func (i *Invoice) Timestamp() time.Time {
	return i.timestamp
}

func (i *Invoice) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setBillNumber(billNumber string) error {
	if billNumber == "" {
		return errs.NewValueIsRequiredError("billNumber")
	}
	i.billNumber = billNumber
	return nil
}

func (i *Invoice) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	i.orderType = orderType
	return nil
}

func (i *Invoice) setTimestamp(timestamp time.Time) error {
	if timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timestamp")
	}
	i.timestamp = timestamp
	return nil
}
