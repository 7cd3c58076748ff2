package http

import (
	"encoding/json"
	"fmt"
	"time"

	"dinepos/internal/core/application/usecases/queries"
	"dinepos/internal/core/domain/model/invoice"
	"dinepos/internal/core/domain/model/order"
	"dinepos/internal/core/domain/model/settings"
	"dinepos/internal/core/domain/model/table"
	"dinepos/internal/pkg/errs"
)

// ErrorResponse is the wire shape of every error reply.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TableResponse is the wire shape of a table.
type TableResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// CreateTableRequest is the body of POST /api/tables. An absent id means the
// server generates one; an absent status defaults to available.
type CreateTableRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Seats    int    `json:"seats"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// UpdateTableRequest is the body of PUT /api/tables/:id. Absent fields are
// left unchanged.
type UpdateTableRequest struct {
	Name     *string `json:"name"`
	Seats    *int    `json:"seats"`
	Category *string `json:"category"`
	Status   *string `json:"status"`
}

// OrderResponse is the wire shape of an active order. Items carry the line
// item objects with their passthrough attributes untouched.
type OrderResponse struct {
	TableID   string          `json:"table_id"`
	TableName string          `json:"table_name"`
	Items     json.RawMessage `json:"items"`
	StartTime string          `json:"start_time"`
}

// SubmitItemsRequest is the body of POST /api/orders/table/:id.
type SubmitItemsRequest struct {
	TableName string           `json:"table_name"`
	Items     []map[string]any `json:"items"`
}

// InvoiceResponse is the wire shape of an archived invoice.
type InvoiceResponse struct {
	ID         string          `json:"id"`
	BillNumber string          `json:"billNumber"`
	OrderType  string          `json:"orderType"`
	TableName  string          `json:"tableName,omitempty"`
	Items      json.RawMessage `json:"items"`
	Subtotal   float64         `json:"subtotal"`
	Tax        float64         `json:"tax"`
	Total      float64         `json:"total"`
	Timestamp  string          `json:"timestamp"`
}

// CreateInvoiceRequest is the body of POST /api/invoices.
type CreateInvoiceRequest struct {
	BillNumber string           `json:"billNumber"`
	OrderType  string           `json:"orderType"`
	TableName  string           `json:"tableName"`
	Items      []map[string]any `json:"items"`
	Subtotal   float64          `json:"subtotal"`
	Tax        float64          `json:"tax"`
	Total      float64          `json:"total"`
	Timestamp  string           `json:"timestamp"`
}

// FinalizeTableRequest is the body of POST /api/tables/:id/finalize.
type FinalizeTableRequest struct {
	BillNumber string           `json:"billNumber"`
	Items      []map[string]any `json:"items"`
	Subtotal   float64          `json:"subtotal"`
	Tax        float64          `json:"tax"`
	Total      float64          `json:"total"`
	Timestamp  string           `json:"timestamp"`
}

// KOTConfigResponse is the wire shape of the kitchen ticket configuration.
type KOTConfigResponse struct {
	PrintByDepartment bool `json:"printByDepartment"`
	NumberOfCopies    int  `json:"numberOfCopies"`
}

// UpdateKOTConfigRequest is the body of PUT /api/config/kot. Absent fields
// are left unchanged.
type UpdateKOTConfigRequest struct {
	PrintByDepartment *bool `json:"printByDepartment"`
	NumberOfCopies    *int  `json:"numberOfCopies"`
}

// BillConfigResponse is the wire shape of the bill printing configuration.
type BillConfigResponse struct {
	AutoPrintDineIn   bool `json:"autoPrintDineIn"`
	AutoPrintTakeaway bool `json:"autoPrintTakeaway"`
}

// UpdateBillConfigRequest is the body of PUT /api/config/bill. Absent fields
// are left unchanged.
type UpdateBillConfigRequest struct {
	AutoPrintDineIn   *bool `json:"autoPrintDineIn"`
	AutoPrintTakeaway *bool `json:"autoPrintTakeaway"`
}

func tableToResponse(tbl *table.Table) TableResponse {
	return TableResponse{
		ID:       tbl.ID().String(),
		Name:     tbl.Name(),
		Seats:    tbl.Seats(),
		Category: tbl.Category(),
		Status:   tbl.Status().String(),
	}
}

func tableQueryToResponse(row queries.GetAllTablesQueryResponse) TableResponse {
	return TableResponse{
		ID:       row.ID.String(),
		Name:     row.Name,
		Seats:    row.Seats,
		Category: row.Category,
		Status:   row.Status.String(),
	}
}

// parseLineItems converts the wire item objects into line items. Each object
// must carry a string id and a numeric quantity; every other key rides along
// as a passthrough attribute.
func parseLineItems(raw []map[string]any) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(raw))
	for _, entry := range raw {
		id, ok := entry["id"].(string)
		if !ok || id == "" {
			return nil, errs.NewValueIsRequiredError("items[].id")
		}

		quantity, ok := entry["quantity"].(float64)
		if !ok {
			return nil, errs.NewValueIsRequiredError("items[].quantity")
		}

		attributes := make(map[string]any, len(entry))
		for key, value := range entry {
			if key == "id" || key == "quantity" || key == "sentToKitchen" {
				continue
			}
			attributes[key] = value
		}

		item, err := order.NewLineItem(id, int(quantity), attributes)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func lineItemsToMaps(items []order.LineItem) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entry := make(map[string]any, len(item.Attributes())+3)
		for key, value := range item.Attributes() {
			entry[key] = value
		}
		entry["id"] = item.MenuItemID()
		entry["quantity"] = item.Quantity()
		entry["sentToKitchen"] = item.SentToKitchen()
		out = append(out, entry)
	}
	return out
}

func orderToResponse(tableOrder *order.TableOrder) (OrderResponse, error) {
	items, err := json.Marshal(lineItemsToMaps(tableOrder.Items()))
	if err != nil {
		return OrderResponse{}, fmt.Errorf("marshal order items: %w", err)
	}

	return OrderResponse{
		TableID:   tableOrder.TableID().String(),
		TableName: tableOrder.TableName(),
		Items:     items,
		StartTime: tableOrder.StartTime().UTC().Format(time.RFC3339),
	}, nil
}

func orderQueryToResponse(row queries.GetAllOrdersQueryResponse) OrderResponse {
	return OrderResponse{
		TableID:   row.TableID.String(),
		TableName: row.TableName,
		Items:     row.Items,
		StartTime: row.StartTime.Format(time.RFC3339),
	}
}

func invoiceToResponse(inv *invoice.Invoice) (InvoiceResponse, error) {
	items := inv.Items()
	if items == nil {
		items = []map[string]any{}
	}
	rawItems, err := json.Marshal(items)
	if err != nil {
		return InvoiceResponse{}, fmt.Errorf("marshal invoice items: %w", err)
	}

	return InvoiceResponse{
		ID:         inv.ID().String(),
		BillNumber: inv.BillNumber(),
		OrderType:  inv.OrderType().String(),
		TableName:  inv.TableName(),
		Items:      rawItems,
		Subtotal:   inv.Subtotal(),
		Tax:        inv.Tax(),
		Total:      inv.Total(),
		Timestamp:  inv.Timestamp().UTC().Format(time.RFC3339),
	}, nil
}

func invoiceQueryToResponse(row queries.GetAllInvoicesQueryResponse) InvoiceResponse {
	return InvoiceResponse{
		ID:         row.ID.String(),
		BillNumber: row.BillNumber,
		OrderType:  row.OrderType.String(),
		TableName:  row.TableName,
		Items:      row.Items,
		Subtotal:   row.Subtotal,
		Tax:        row.Tax,
		Total:      row.Total,
		Timestamp:  row.Timestamp.Format(time.RFC3339),
	}
}

func kotConfigToResponse(cfg *settings.KOTConfig) KOTConfigResponse {
	return KOTConfigResponse{
		PrintByDepartment: cfg.PrintByDepartment(),
		NumberOfCopies:    cfg.NumberOfCopies(),
	}
}

func billConfigToResponse(cfg *settings.BillConfig) BillConfigResponse {
	return BillConfigResponse{
		AutoPrintDineIn:   cfg.AutoPrintDineIn(),
		AutoPrintTakeaway: cfg.AutoPrintTakeaway(),
	}
}
