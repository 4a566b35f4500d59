package visibility

import (
	"strings"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

// Kind names a record collection guarded by the rule table.
type Kind string

const (
	KindInventory     Kind = "inventory"
	KindAttendance    Kind = "attendance"
	KindOrders        Kind = "orders"
	KindInvoices      Kind = "invoices"
	KindPayroll       Kind = "payroll"
	KindWarehouses    Kind = "warehouses"
	KindCustomers     Kind = "customers"
	KindUsers         Kind = "users"
	KindNotifications Kind = "notifications"
	KindDashboard     Kind = "dashboard"
)

type Action string

const (
	ActionRead  Action = "read"
	ActionWrite Action = "write"
)

// Scope carries the ownership keys of a record. Invoices use the warehouse of their order.
type Scope struct {
	WarehouseID string
	UserID      string
}

// Allows is the single authorization rule table. A nil actor is never allowed.
func Allows(actor *models.User, kind Kind, action Action, scope Scope) bool {
	if actor == nil {
		return false
	}

	switch actor.Role {
	case enums.RoleOwner:
		return true
	case enums.RoleWarehouseAdmin:
		return adminAllows(actor, kind, action, scope)
	case enums.RoleWorker:
		return workerAllows(actor, kind, action, scope)
	default:
		return false
	}
}

func adminAllows(actor *models.User, kind Kind, action Action, scope Scope) bool {
	switch kind {
	case KindInventory, KindAttendance, KindOrders, KindInvoices, KindPayroll:
		return sameWarehouse(actor, scope)
	case KindWarehouses:
		return action == ActionRead && sameWarehouse(actor, scope)
	case KindCustomers:
		return true
	case KindUsers:
		// Staff of the admin's own warehouse are the payroll targets it can pick from.
		return action == ActionRead && (scope.UserID == actor.ID || sameWarehouse(actor, scope))
	case KindNotifications, KindDashboard:
		return action == ActionRead
	default:
		return false
	}
}

func workerAllows(actor *models.User, kind Kind, action Action, scope Scope) bool {
	switch kind {
	case KindAttendance:
		return scope.UserID != "" && scope.UserID == actor.ID
	case KindWarehouses:
		return action == ActionRead && sameWarehouse(actor, scope)
	case KindUsers:
		return action == ActionRead && scope.UserID == actor.ID
	case KindNotifications, KindDashboard:
		return action == ActionRead
	default:
		return false
	}
}

// sameWarehouse never matches for an actor without an assigned warehouse.
func sameWarehouse(actor *models.User, scope Scope) bool {
	assigned := strings.TrimSpace(actor.AssignedWarehouseID)
	return assigned != "" && assigned == scope.WarehouseID
}

// Ensure returns UNAUTHORIZED without an actor and FORBIDDEN when the rule table denies.
func Ensure(actor *models.User, kind Kind, action Action, scope Scope) error {
	if actor == nil {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if !Allows(actor, kind, action, scope) {
		return pkgerrors.New(pkgerrors.CodeForbidden, "not permitted for "+string(kind)).
			WithDetails(map[string]any{"kind": kind, "action": action, "role": actor.Role})
	}
	return nil
}

// Filter keeps the rows the actor may read. Every listing goes through here.
func Filter[T any](actor *models.User, kind Kind, rows []T, scopeOf func(T) Scope) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		if Allows(actor, kind, ActionRead, scopeOf(row)) {
			out = append(out, row)
		}
	}
	return out
}

// Navigation section identifiers.
const (
	SectionDashboard  = "dashboard"
	SectionWarehouses = "warehouses"
	SectionInventory  = "inventory"
	SectionAttendance = "attendance"
	SectionCRM        = "crm"
	SectionPayroll    = "payroll"
	SectionUsers      = "users"
	SectionProfile    = "profile"
)

// Sections returns the navigation sections permitted for a role, in menu order.
func Sections(role enums.Role) []string {
	switch role {
	case enums.RoleOwner:
		return []string{SectionDashboard, SectionWarehouses, SectionInventory, SectionAttendance, SectionCRM, SectionPayroll, SectionUsers, SectionProfile}
	case enums.RoleWarehouseAdmin:
		return []string{SectionDashboard, SectionWarehouses, SectionInventory, SectionAttendance, SectionCRM, SectionPayroll, SectionProfile}
	case enums.RoleWorker:
		return []string{SectionDashboard, SectionWarehouses, SectionAttendance, SectionProfile}
	default:
		return nil
	}
}

// CanEstimatePayrollFor reports whether actor may create a payroll estimate for target.
// Owners cover workers and warehouse admins; admins cover workers of their own warehouse.
func CanEstimatePayrollFor(actor *models.User, target models.User) bool {
	if actor == nil {
		return false
	}
	switch actor.Role {
	case enums.RoleOwner:
		return target.Role == enums.RoleWorker || target.Role == enums.RoleWarehouseAdmin
	case enums.RoleWarehouseAdmin:
		return target.Role == enums.RoleWorker && sameWarehouse(actor, Scope{WarehouseID: target.AssignedWarehouseID})
	default:
		return false
	}
}
