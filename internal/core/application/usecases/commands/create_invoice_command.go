package commands

import (
	"errors"
	"time"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/pkg/errs"
	"dinepos/internal/pkg/guard"
)

var (
	ErrCreateInvoiceCommandIsNotConstructed = errors.New(
		"CreateInvoiceCommand must be created via NewCreateInvoiceCommand constructor",
	)
)

// CreateInvoiceCommand records a finalized bill. Monetary figures arrive
// caller-computed and are stored as given; the raw timestamp string is parsed
// here so a malformed value is rejected before any transaction starts.
type CreateInvoiceCommand struct { //nolint:recvcheck //using for validation
	billNumber string
	orderType  invoice.OrderType
	tableName  string
	items      []map[string]any
	subtotal   float64
	tax        float64
	total      float64
	timestamp  time.Time

	guard guard.ConstructorGuard
}

// NewCreateInvoiceCommand creates a command to record an invoice. The
// rawTimestamp must be an ISO 8601 instant; the table name may be empty for
// take-away bills.
func NewCreateInvoiceCommand(
	billNumber string,
	orderType invoice.OrderType,
	tableName string,
	items []map[string]any,
	subtotal, tax, total float64,
	rawTimestamp string,
) (CreateInvoiceCommand, error) {
	if billNumber == "" {
		return CreateInvoiceCommand{}, errs.NewValueIsRequiredError("billNumber")
	}
	if err := orderType.Validate(); err != nil {
		return CreateInvoiceCommand{}, err
	}

	timestamp, err := invoice.ParseTimestamp(rawTimestamp)
	if err != nil {
		return CreateInvoiceCommand{}, err
	}

	return CreateInvoiceCommand{
		billNumber: billNumber,
		orderType:  orderType,
		tableName:  tableName,
		items:      append([]map[string]any(nil), items...),
		subtotal:   subtotal,
		tax:        tax,
		total:      total,
		timestamp:  timestamp,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrCreateInvoiceCommandIsNotConstructed)
}

// BillNumber returns the caller-supplied bill sequence label.
func (c CreateInvoiceCommand) BillNumber() string {
	return c.billNumber
}

// OrderType returns whether the bill is dine-in or take-away.
func (c CreateInvoiceCommand) OrderType() invoice.OrderType {
	return c.orderType
}

// TableName returns the table name snapshot, empty for take-away.
func (c CreateInvoiceCommand) TableName() string {
	return c.tableName
}

// Items returns the opaque line item snapshot.
func (c CreateInvoiceCommand) Items() []map[string]any {
	return append([]map[string]any(nil), c.items...)
}

// Subtotal returns the caller-computed subtotal.
func (c CreateInvoiceCommand) Subtotal() float64 {
	return c.subtotal
}

// Tax returns the caller-computed tax.
func (c CreateInvoiceCommand) Tax() float64 {
	return c.tax
}

// Total returns the caller-computed total.
func (c CreateInvoiceCommand) Total() float64 {
	return c.total
}

// Timestamp returns the parsed, UTC-normalized issue time.
func (c CreateInvoiceCommand) Timestamp() time.Time {
	return c.timestamp
}
