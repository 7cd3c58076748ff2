package queries

import (
	"context"
	"encoding/json"
	"time"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAllInvoicesQueryHandler retrieves the invoice archive from the database.
type GetAllInvoicesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllInvoicesQueryHandler creates a handler for invoice archive queries.
func NewGetAllInvoicesQueryHandler(db *gorm.DB) GetAllInvoicesQueryHandler {
	return GetAllInvoicesQueryHandler{db: db}
}

// Handle executes the query and returns all invoices, newest first.
func (h GetAllInvoicesQueryHandler) Handle(
	ctx context.Context,
	query GetAllInvoicesQuery,
) ([]GetAllInvoicesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	invoices := make([]GetAllInvoicesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			bill_number,
			order_type,
			table_name,
			items,
			subtotal,
			tax,
			total,
			issued_at
		FROM invoices
		ORDER BY issued_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetAllInvoicesQueryResponse
		var id, orderType, items string
		var issuedAt time.Time

		err = rows.Scan(
			&id,
			&row.BillNumber,
			&orderType,
			&row.TableName,
			&items,
			&row.Subtotal,
			&row.Tax,
			&row.Total,
			&issuedAt,
		)
		if err != nil {
			return nil, err
		}

		invoiceID, idErr := kernel.IDFromString(id)
		if idErr != nil {
			return nil, idErr
		}
		row.ID = invoiceID

		ot, otErr := invoice.OrderTypeFromString(orderType)
		if otErr != nil {
			return nil, otErr
		}
		row.OrderType = ot
		row.Items = json.RawMessage(items)
		row.Timestamp = issuedAt.UTC()

		invoices = append(invoices, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return invoices, nil
}
