package queries

import (
	"encoding/json"
	"errors"
	"time"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/pkg/guard"
)

var (
	ErrGetAllInvoicesQueryIsNotConstructed = errors.New(
		"GetAllInvoicesQuery must be created via NewGetAllInvoicesQuery constructor",
	)
)

// GetAllInvoicesQuery retrieves the invoice archive for reporting.
type GetAllInvoicesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllInvoicesQuery creates a query to retrieve all invoices.
func NewGetAllInvoicesQuery() GetAllInvoicesQuery {
	return GetAllInvoicesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllInvoicesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllInvoicesQueryIsNotConstructed)
}

// GetAllInvoicesQueryResponse represents one archived invoice.
// Items carry the stored line item JSON snapshot untouched.
type GetAllInvoicesQueryResponse struct {
	ID         kernel.ID
	BillNumber string
	OrderType  invoice.OrderType
	TableName  string
	Items      json.RawMessage
	Subtotal   float64
	Tax        float64
	Total      float64
	Timestamp  time.Time
}
