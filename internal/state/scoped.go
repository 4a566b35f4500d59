package state

import (
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/visibility"
)

// Scoped returns the collections the current actor may read. Without an actor
// every collection is empty.
func (s *State) Scoped() Collections {
	actor := s.Actor()
	return Collections{
		Users: visibility.Filter(actor, visibility.KindUsers, s.Users, func(u models.User) visibility.Scope {
			return visibility.Scope{UserID: u.ID, WarehouseID: u.AssignedWarehouseID}
		}),
		Warehouses: visibility.Filter(actor, visibility.KindWarehouses, s.Warehouses, func(w models.Warehouse) visibility.Scope {
			return visibility.Scope{WarehouseID: w.ID}
		}),
		Inventory: visibility.Filter(actor, visibility.KindInventory, s.Inventory, func(i models.InventoryItem) visibility.Scope {
			return visibility.Scope{WarehouseID: i.WarehouseID}
		}),
		Attendance: cloneAttendance(visibility.Filter(actor, visibility.KindAttendance, s.Attendance, func(a models.AttendanceRecord) visibility.Scope {
			return visibility.Scope{WarehouseID: a.WarehouseID, UserID: a.UserID}
		})),
		Customers: visibility.Filter(actor, visibility.KindCustomers, s.Customers, func(models.Customer) visibility.Scope {
			return visibility.Scope{}
		}),
		Orders: cloneOrders(visibility.Filter(actor, visibility.KindOrders, s.Orders, func(o models.Order) visibility.Scope {
			return visibility.Scope{WarehouseID: o.WarehouseID}
		})),
		Invoices: visibility.Filter(actor, visibility.KindInvoices, s.Invoices, func(inv models.Invoice) visibility.Scope {
			return visibility.Scope{WarehouseID: s.OrderWarehouse(inv.OrderID)}
		}),
		Payments: visibility.Filter(actor, visibility.KindInvoices, s.Payments, func(p models.Payment) visibility.Scope {
			inv, _ := s.Invoice(p.InvoiceID)
			return visibility.Scope{WarehouseID: s.OrderWarehouse(inv.OrderID)}
		}),
		Payroll: visibility.Filter(actor, visibility.KindPayroll, s.Payroll, func(p models.PayrollEstimate) visibility.Scope {
			return visibility.Scope{WarehouseID: p.WarehouseID, UserID: p.UserID}
		}),
		Notifications: visibility.Filter(actor, visibility.KindNotifications, s.Notifications, func(models.Notification) visibility.Scope {
			return visibility.Scope{}
		}),
	}
}

func cloneAttendance(rows []models.AttendanceRecord) []models.AttendanceRecord {
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}

func cloneOrders(rows []models.Order) []models.Order {
	for i := range rows {
		rows[i] = rows[i].Clone()
	}
	return rows
}
