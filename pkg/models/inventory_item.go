package models

import (
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// InventoryItem is a stock line held by exactly one warehouse.
type InventoryItem struct {
	ID          string              `json:"id"`
	WarehouseID string              `json:"warehouse_id"`
	ItemName    string              `json:"item_name"`
	Quantity    int                 `json:"quantity"`
	Unit        string              `json:"unit"`
	Type        enums.InventoryType `json:"type"`
	LastUpdated types.Date          `json:"last_updated"`
}
