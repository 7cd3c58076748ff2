// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. Invoices are append-only; the repository exposes
// no update or delete.
package invoicerepo

import (
	"encoding/json"
	"time"

	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/kernel"
)

// InvoiceDTO represents the database structure for persisting invoices.
type InvoiceDTO struct {
	ID               string    `gorm:"type:text;primaryKey"`
	BillNumber       string    `gorm:"type:text"`
	OrderType        string    `gorm:"type:text"`
	TableDisplayName string    `gorm:"type:text;column:table_name"`
	Items            string    `gorm:"type:jsonb"`
	Subtotal         float64   `gorm:"type:numeric"`
	Tax              float64   `gorm:"type:numeric"`
	Total            float64   `gorm:"type:numeric"`
	IssuedAt         time.Time `gorm:"type:timestamptz;column:issued_at"`
}

// TableName specifies the database table name for invoice entities.
// Overrides GORM's default naming convention to use "invoices".
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) (InvoiceDTO, error) {
	items := aggregate.Items()
	if items == nil {
		items = []map[string]any{}
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return InvoiceDTO{}, err
	}

	return InvoiceDTO{
		ID:               aggregate.ID().String(),
		BillNumber:       aggregate.BillNumber(),
		OrderType:        aggregate.OrderType().String(),
		TableDisplayName: aggregate.TableName(),
		Items:            string(raw),
		Subtotal:         aggregate.Subtotal(),
		Tax:              aggregate.Tax(),
		Total:            aggregate.Total(),
		IssuedAt:         aggregate.Timestamp(),
	}, nil
}

// toDomain converts a database DTO to an invoice aggregate.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.IDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	orderType, err := invoice.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err = json.Unmarshal([]byte(dto.Items), &items); err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		dto.BillNumber,
		orderType,
		dto.TableDisplayName,
		items,
		dto.Subtotal,
		dto.Tax,
		dto.Total,
		dto.IssuedAt.UTC(),
	)
}
