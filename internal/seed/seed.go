package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// Collections returns the initial collections selected by cfg: nothing when
// seeding is disabled, the JSON file when one is set, Default otherwise.
func Collections(cfg config.SeedConfig) (state.Collections, error) {
	if !cfg.Enabled {
		return state.Collections{}, nil
	}
	if cfg.File != "" {
		return Load(cfg.File)
	}
	return Default(), nil
}

// Load reads collections from a JSON document shaped like state.Collections.
func Load(path string) (state.Collections, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return state.Collections{}, fmt.Errorf("read seed file: %w", err)
	}
	var c state.Collections
	if err := json.Unmarshal(raw, &c); err != nil {
		return state.Collections{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}
	return c, nil
}

// Default is the demo dataset: one owner, one admin and two workers across
// three warehouses, with a completed and paid order plus one still processing.
func Default() state.Collections {
	rate := func(v int64) decimal.NullDecimal { return decimal.NewNullDecimal(decimal.NewFromInt(v)) }
	date := types.MustParseDate
	at := func(day string, hour, minute int) time.Time {
		return date(day).Time().Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
	}
	checkOut := at("2023-10-27", 17, 0)

	return state.Collections{
		Users: []models.User{
			{ID: "u1", YNumber: "Y00001", FullName: "Abdellah Teshome", Email: "owner@anuinv.com", Role: enums.RoleOwner, HourlyRate: rate(0)},
			{ID: "u2", YNumber: "Y00002", FullName: "Warehouse Manager 1", Email: "admin1@anuinv.com", Role: enums.RoleWarehouseAdmin, AssignedWarehouseID: "w1", HourlyRate: rate(150)},
			{ID: "u3", YNumber: "Y00003", FullName: "John Worker", Email: "yee1@anuinv.com", Role: enums.RoleWorker, AssignedWarehouseID: "w1", HourlyRate: rate(60)},
			{ID: "u4", YNumber: "Y00004", FullName: "Jane Worker", Email: "yee2@anuinv.com", Role: enums.RoleWorker, AssignedWarehouseID: "w2", HourlyRate: rate(60)},
		},
		Warehouses: []models.Warehouse{
			{ID: "w1", Name: "Addis Main Factory", Location: "Addis Ababa", Status: enums.WarehouseStatusActive, WorkerCount: 12},
			{ID: "w2", Name: "Adama Distribution", Location: "Adama", Status: enums.WarehouseStatusActive, WorkerCount: 5},
			{ID: "w3", Name: "Old Storage", Location: "Bole", Status: enums.WarehouseStatusDisabled, WorkerCount: 0},
		},
		Inventory: []models.InventoryItem{
			{ID: "i1", WarehouseID: "w1", ItemName: "Sugar", Quantity: 500, Unit: "kg", Type: enums.InventoryTypeRawMaterial, LastUpdated: date("2023-10-26")},
			{ID: "i2", WarehouseID: "w1", ItemName: "Glucose Syrup", Quantity: 200, Unit: "liters", Type: enums.InventoryTypeRawMaterial, LastUpdated: date("2023-10-25")},
			{ID: "i3", WarehouseID: "w1", ItemName: "Fruit Chews (Unwrapped)", Quantity: 5000, Unit: "pcs", Type: enums.InventoryTypeWIP, LastUpdated: date("2023-10-27")},
			{ID: "i4", WarehouseID: "w1", ItemName: "Fruit Chews (Packaged)", Quantity: 120, Unit: "boxes", Type: enums.InventoryTypeFinishedGood, LastUpdated: date("2023-10-27")},
			{ID: "i5", WarehouseID: "w1", ItemName: "Burnt Batch #402", Quantity: 15, Unit: "kg", Type: enums.InventoryTypeWaste, LastUpdated: date("2023-10-24")},
			{ID: "i6", WarehouseID: "w2", ItemName: "Lollipops", Quantity: 300, Unit: "boxes", Type: enums.InventoryTypeFinishedGood, LastUpdated: date("2023-10-26")},
		},
		Attendance: []models.AttendanceRecord{
			{ID: "a1", UserID: "u3", WarehouseID: "w1", Date: date("2023-10-27"), CheckIn: at("2023-10-27", 8, 0), CheckOut: &checkOut, Status: enums.AttendanceStatusPresent, Shift: enums.ShiftMorning},
			{ID: "a2", UserID: "u3", WarehouseID: "w1", Date: date("2023-10-28"), CheckIn: at("2023-10-28", 8, 15), Status: enums.AttendanceStatusPresent, Shift: enums.ShiftMorning},
		},
		Customers: []models.Customer{
			{ID: "c1", Name: "Sweet Tooth Wholesale", Type: enums.CustomerTypeCompany, ContactPerson: "Alice Smith", Email: "alice@sweets.com", Phone: "+251 911 000 000"},
			{ID: "c2", Name: "Kiosk #42", Type: enums.CustomerTypeIndividual, ContactPerson: "Kebede", Email: "n/a", Phone: "+251 922 111 111"},
		},
		Orders: []models.Order{
			{ID: "o1", CustomerID: "c1", WarehouseID: "w1", Items: []models.OrderItem{{InventoryItemID: "i4", Quantity: 50}}, Status: enums.OrderStatusCompleted, TotalAmount: decimal.NewFromInt(15000), Date: date("2023-10-20")},
			{ID: "o2", CustomerID: "c2", WarehouseID: "w1", Items: []models.OrderItem{{InventoryItemID: "i4", Quantity: 5}}, Status: enums.OrderStatusProcessing, TotalAmount: decimal.NewFromInt(500), Date: date("2023-10-27")},
		},
		Invoices: []models.Invoice{
			{ID: "inv1", OrderID: "o1", CustomerID: "c1", TotalAmount: decimal.NewFromInt(15000), PaidAmount: decimal.NewFromInt(15000), Status: enums.InvoiceStatusPaid, DueDate: date("2023-11-21"), CreatedAt: date("2023-10-21")},
		},
	}
}
