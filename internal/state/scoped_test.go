package state

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

func scopedState(actorID string) *State {
	return &State{
		ActorID: actorID,
		Collections: Collections{
			Users: []models.User{
				{ID: "u1", Role: enums.RoleOwner},
				{ID: "u2", Role: enums.RoleWarehouseAdmin, AssignedWarehouseID: "w1"},
				{ID: "u3", Role: enums.RoleWorker, AssignedWarehouseID: "w1"},
				{ID: "u4", Role: enums.RoleWorker, AssignedWarehouseID: "w2"},
			},
			Warehouses: []models.Warehouse{{ID: "w1"}, {ID: "w2"}},
			Inventory:  []models.InventoryItem{{ID: "i1", WarehouseID: "w1"}, {ID: "i6", WarehouseID: "w2"}},
			Attendance: []models.AttendanceRecord{
				{ID: "a1", UserID: "u3", WarehouseID: "w1"},
				{ID: "a3", UserID: "u4", WarehouseID: "w2"},
			},
			Customers: []models.Customer{{ID: "c1"}},
			Orders:    []models.Order{{ID: "o1", WarehouseID: "w1"}, {ID: "o9", WarehouseID: "w2"}},
			Invoices:  []models.Invoice{{ID: "inv1", OrderID: "o1"}, {ID: "inv9", OrderID: "o9"}},
			Payments:  []models.Payment{{ID: "p1", InvoiceID: "inv1"}, {ID: "p9", InvoiceID: "inv9"}},
			Payroll: []models.PayrollEstimate{
				{ID: "pr1", UserID: "u3", WarehouseID: "w1"},
				{ID: "pr2", UserID: "u4", WarehouseID: "w2"},
			},
			Notifications: []models.Notification{{ID: "n1"}},
		},
	}
}

func rowIDs[T any](rows []T, id func(T) string) []string {
	out := []string{}
	for _, row := range rows {
		out = append(out, id(row))
	}
	return out
}

func TestScopedOwnerSeesEverything(t *testing.T) {
	st := scopedState("u1")
	scoped := st.Scoped()

	assert.Len(t, scoped.Users, 4)
	assert.Len(t, scoped.Inventory, 2)
	assert.Len(t, scoped.Attendance, 2)
	assert.Len(t, scoped.Invoices, 2)
	assert.Len(t, scoped.Payments, 2)
	assert.Len(t, scoped.Payroll, 2)
}

func TestScopedAdminSeesOwnWarehouse(t *testing.T) {
	st := scopedState("u2")
	scoped := st.Scoped()

	assert.Equal(t, []string{"u2", "u3"}, rowIDs(scoped.Users, func(u models.User) string { return u.ID }))
	assert.Equal(t, []string{"w1"}, rowIDs(scoped.Warehouses, func(w models.Warehouse) string { return w.ID }))
	assert.Equal(t, []string{"i1"}, rowIDs(scoped.Inventory, func(i models.InventoryItem) string { return i.ID }))
	assert.Equal(t, []string{"a1"}, rowIDs(scoped.Attendance, func(a models.AttendanceRecord) string { return a.ID }))
	assert.Equal(t, []string{"o1"}, rowIDs(scoped.Orders, func(o models.Order) string { return o.ID }))
	assert.Equal(t, []string{"inv1"}, rowIDs(scoped.Invoices, func(i models.Invoice) string { return i.ID }))
	assert.Equal(t, []string{"p1"}, rowIDs(scoped.Payments, func(p models.Payment) string { return p.ID }))
	assert.Equal(t, []string{"pr1"}, rowIDs(scoped.Payroll, func(p models.PayrollEstimate) string { return p.ID }))
	assert.Len(t, scoped.Customers, 1)
	assert.Len(t, scoped.Notifications, 1)
}

func TestScopedWorkerSeesOwnAttendance(t *testing.T) {
	st := scopedState("u4")
	scoped := st.Scoped()

	assert.Equal(t, []string{"a3"}, rowIDs(scoped.Attendance, func(a models.AttendanceRecord) string { return a.ID }))
	assert.Equal(t, []string{"w2"}, rowIDs(scoped.Warehouses, func(w models.Warehouse) string { return w.ID }))
	assert.Empty(t, scoped.Inventory)
	assert.Empty(t, scoped.Orders)
	assert.Empty(t, scoped.Invoices)
	assert.Empty(t, scoped.Payroll)
	assert.Empty(t, scoped.Customers)
	assert.Len(t, scoped.Notifications, 1)
}

func TestScopedWithoutActorIsEmpty(t *testing.T) {
	st := scopedState("")
	scoped := st.Scoped()

	assert.Empty(t, scoped.Users)
	assert.Empty(t, scoped.Inventory)
	assert.Empty(t, scoped.Notifications)
}
