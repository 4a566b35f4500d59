package inventory

import (
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

var (
	ErrItemNotFound      = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrDuplicateItem     = errors.New("inventory item already exists")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
)

// AddItem appends item and returns the new collection. The input slice is not modified.
func AddItem(items []models.InventoryItem, item models.InventoryItem) ([]models.InventoryItem, error) {
	if item.Quantity < 0 {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrNegativeQuantity, "quantity must not be negative")
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrDuplicateItem, fmt.Sprintf("Item ID %s already exists", item.ID))
		}
	}
	out := make([]models.InventoryItem, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item), nil
}

// UpdateItem replaces the item with the same id.
func UpdateItem(items []models.InventoryItem, item models.InventoryItem) ([]models.InventoryItem, error) {
	if item.Quantity < 0 {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrNegativeQuantity, "quantity must not be negative")
	}
	for i, existing := range items {
		if existing.ID != item.ID {
			continue
		}
		out := append([]models.InventoryItem(nil), items...)
		out[i] = item
		return out, nil
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrItemNotFound, fmt.Sprintf("Item ID %s not found", item.ID))
}

// Deduct removes amount from the first item matching itemID in warehouseID and stamps
// last_updated. An empty warehouseID matches by id alone. Stock never goes negative:
// a shortfall fails without touching the collection.
func Deduct(items []models.InventoryItem, itemID, warehouseID string, amount int, now time.Time) ([]models.InventoryItem, int, error) {
	if amount <= 0 {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "deduction amount must be positive")
	}

	i := Find(items, itemID, warehouseID)
	if i < 0 {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrItemNotFound, fmt.Sprintf("Item ID %s not found", itemID))
	}
	if items[i].Quantity < amount {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInsufficient, ErrInsufficientStock, fmt.Sprintf("%s (Insufficient Stock)", items[i].ItemName)).
			WithDetails(map[string]any{"item_id": itemID, "available": items[i].Quantity, "requested": amount})
	}

	out := append([]models.InventoryItem(nil), items...)
	out[i].Quantity -= amount
	out[i].LastUpdated = types.NewDate(now)
	return out, out[i].Quantity, nil
}

// Find returns the index of the first item matching itemID (and warehouseID when set), or -1.
func Find(items []models.InventoryItem, itemID, warehouseID string) int {
	for i, item := range items {
		if item.ID != itemID {
			continue
		}
		if warehouseID != "" && item.WarehouseID != warehouseID {
			continue
		}
		return i
	}
	return -1
}
