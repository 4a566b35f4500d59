package models

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// OrderItem references an inventory item by id.
type OrderItem struct {
	InventoryItemID string `json:"inventory_item_id"`
	Quantity        int    `json:"quantity"`
}

// Order is a customer order. TotalAmount is authoritative and never recomputed from items.
type Order struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id"`
	WarehouseID string            `json:"warehouse_id"`
	Items       []OrderItem       `json:"items"`
	Status      enums.OrderStatus `json:"status"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Date        types.Date        `json:"date"`
}

// Clone copies the line items so the result shares no backing array.
func (o Order) Clone() Order {
	o.Items = append([]OrderItem(nil), o.Items...)
	return o
}
