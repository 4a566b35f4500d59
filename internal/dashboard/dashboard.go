package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// DefaultLowStockThreshold flags items with fewer units than this.
const DefaultLowStockThreshold = 50

// Summary holds the headline figures for one actor's view.
type Summary struct {
	TotalInventoryUnits int                         `json:"total_inventory_units"`
	LowStockItems       int                         `json:"low_stock_items"`
	ItemsByType         map[enums.InventoryType]int `json:"items_by_type"`
	WorkersPresentToday int                         `json:"workers_present_today"`
	TotalRevenue        decimal.Decimal             `json:"total_revenue"`
	PendingPayments     decimal.Decimal             `json:"pending_payments"`
	ActiveWarehouses    int                         `json:"active_warehouses"`
	Notifications       int                         `json:"notifications"`
	GeneratedAt         time.Time                   `json:"generated_at"`
}

// Compute derives the summary from collections that were already scoped to
// the actor. Waste never counts as low stock.
func Compute(c state.Collections, now time.Time, lowStockThreshold int) Summary {
	if lowStockThreshold <= 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	summary := Summary{
		ItemsByType:     map[enums.InventoryType]int{},
		TotalRevenue:    decimal.Zero,
		PendingPayments: decimal.Zero,
		Notifications:   len(c.Notifications),
		GeneratedAt:     now,
	}
	for _, t := range []enums.InventoryType{enums.InventoryTypeRawMaterial, enums.InventoryTypeWIP, enums.InventoryTypeFinishedGood, enums.InventoryTypeWaste} {
		summary.ItemsByType[t] = 0
	}

	for _, item := range c.Inventory {
		summary.TotalInventoryUnits += item.Quantity
		summary.ItemsByType[item.Type]++
		if item.Quantity < lowStockThreshold && item.Type != enums.InventoryTypeWaste {
			summary.LowStockItems++
		}
	}

	today := types.NewDate(now)
	for _, rec := range c.Attendance {
		if rec.Date.SameDay(today) && rec.Status == enums.AttendanceStatusPresent {
			summary.WorkersPresentToday++
		}
	}

	for _, inv := range c.Invoices {
		summary.TotalRevenue = summary.TotalRevenue.Add(inv.PaidAmount)
		summary.PendingPayments = summary.PendingPayments.Add(inv.Balance())
	}

	for _, w := range c.Warehouses {
		if w.IsActive() {
			summary.ActiveWarehouses++
		}
	}
	return summary
}
