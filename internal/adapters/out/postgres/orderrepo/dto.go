// Package orderrepo provides data transfer objects and mapping functions for
// table order persistence. The line item sequence is stored as a JSON column
// so client-supplied attribute fields survive the round trip untouched.
package orderrepo

import (
	"encoding/json"
	"time"

	"dinepos/internal/core/domain/model/kernel"
	"dinepos/internal/core/domain/model/order"
)

// TableOrderDTO represents the database structure for persisting table orders.
// The table identifier is the primary key, which enforces the one active
// order per table invariant at the storage level.
type TableOrderDTO struct {
	TableID          string    `gorm:"type:text;primaryKey;column:table_id"`
	TableDisplayName string    `gorm:"type:text;column:table_name"`
	Items            string    `gorm:"type:jsonb"`
	StartTime        time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "table_orders".
func (TableOrderDTO) TableName() string {
	return "table_orders"
}

// fromDomain converts a table order aggregate to its database representation.
func fromDomain(aggregate *order.TableOrder) (TableOrderDTO, error) {
	items := aggregate.Items()
	rows := make([]map[string]any, 0, len(items))
	for _, item := range items {
		attributes := item.Attributes()
		// Attributes may be nil; the row map is always allocated here.
		row := make(map[string]any, len(attributes)+3)
		for k, v := range attributes {
			row[k] = v
		}
		row["id"] = item.MenuItemID()
		row["quantity"] = item.Quantity()
		row["sentToKitchen"] = item.SentToKitchen()
		rows = append(rows, row)
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return TableOrderDTO{}, err
	}

	return TableOrderDTO{
		TableID:          aggregate.TableID().String(),
		TableDisplayName: aggregate.TableName(),
		Items:            string(raw),
		StartTime:        aggregate.StartTime(),
	}, nil
}

// toDomain converts a database DTO to a table order aggregate.
func toDomain(dto TableOrderDTO) (*order.TableOrder, error) {
	tableID, err := kernel.IDFromString(dto.TableID)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err = json.Unmarshal([]byte(dto.Items), &rows); err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(rows))
	for _, row := range rows {
		menuItemID, _ := row["id"].(string)
		quantity := 0
		if q, ok := row["quantity"].(float64); ok {
			quantity = int(q)
		}
		sent, _ := row["sentToKitchen"].(bool)

		attributes := make(map[string]any, len(row))
		for k, v := range row {
			switch k {
			case "id", "quantity", "sentToKitchen":
			default:
				attributes[k] = v
			}
		}

		item, itemErr := order.RestoreLineItem(menuItemID, quantity, sent, attributes)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreTableOrder(tableID, dto.TableDisplayName, items, dto.StartTime.UTC())
}
