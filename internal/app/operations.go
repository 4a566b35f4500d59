package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/attendance"
	"github.com/angelmondragon/factoryops-backend/internal/customers"
	"github.com/angelmondragon/factoryops-backend/internal/inventory"
	"github.com/angelmondragon/factoryops-backend/internal/invoices"
	"github.com/angelmondragon/factoryops-backend/internal/payroll"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/internal/users"
	"github.com/angelmondragon/factoryops-backend/internal/warehouses"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/validate"
	"github.com/angelmondragon/factoryops-backend/pkg/visibility"
)

const (
	OpLogin               = "login"
	OpLogout              = "logout"
	OpAddWarehouse        = "add_warehouse"
	OpUpdateWarehouse     = "update_warehouse"
	OpAddInventoryItem    = "add_inventory_item"
	OpUpdateInventoryItem = "update_inventory_item"
	OpCheckIn             = "check_in"
	OpCheckOut            = "check_out"
	OpFulfillOrder        = "fulfill_order"
	OpAddCustomer         = "add_customer"
	OpGenerateInvoice     = "generate_invoice"
	OpRecordPayment       = "record_payment"
	OpCreatePayroll       = "create_payroll_estimate"
	OpAddUser             = "add_user"
	OpUpdateUser          = "update_user"
	OpDeleteUser          = "delete_user"
)

var (
	ErrOrderNotCompleted = errors.New("order not completed")
	ErrPayrollTarget     = errors.New("payroll target not permitted")
)

// Session is the result of a successful login.
type Session struct {
	User      models.User `json:"user"`
	SessionID string      `json:"session_id"`
}

// Login makes the first user with role the current actor.
func (a *App) Login(ctx context.Context, role enums.Role) (Session, error) {
	var out Session
	err := a.mutate(ctx, OpLogin, func(tx *state.State) error {
		user, err := a.session.Login(tx, role)
		if err != nil {
			return err
		}
		out = Session{User: user, SessionID: tx.SessionID}
		return nil
	})
	return out, err
}

// Logout ends the session and clears the notification log. Without an active
// session it does nothing.
func (a *App) Logout(ctx context.Context) error {
	return a.mutate(ctx, OpLogout, func(tx *state.State) error {
		if tx.ActorID == "" {
			return nil
		}
		a.session.Logout(tx)
		return nil
	})
}

func (a *App) AddWarehouse(ctx context.Context, input warehouses.CreateWarehouseInput) (models.Warehouse, error) {
	var out models.Warehouse
	err := a.mutate(ctx, OpAddWarehouse, func(tx *state.State) error {
		if err := authorize(tx, visibility.KindWarehouses, visibility.ActionWrite, visibility.Scope{}); err != nil {
			return err
		}
		warehouse, err := a.warehouses.Add(tx, input)
		out = warehouse
		return err
	})
	return out, err
}

func (a *App) UpdateWarehouse(ctx context.Context, id string, input warehouses.UpdateWarehouseInput) (models.Warehouse, error) {
	var out models.Warehouse
	err := a.mutate(ctx, OpUpdateWarehouse, func(tx *state.State) error {
		if err := authorize(tx, visibility.KindWarehouses, visibility.ActionWrite, visibility.Scope{WarehouseID: id}); err != nil {
			return err
		}
		warehouse, err := a.warehouses.Update(tx, id, input)
		out = warehouse
		return err
	})
	return out, err
}

// AddInventoryItem creates a stock line in an active warehouse the actor manages.
func (a *App) AddInventoryItem(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error) {
	var out models.InventoryItem
	err := a.mutate(ctx, OpAddInventoryItem, func(tx *state.State) error {
		if err := a.authorizeStockWrite(tx, input.WarehouseID); err != nil {
			return err
		}
		item, err := a.inventory.Add(tx, input)
		out = item
		return err
	})
	return out, err
}

// UpdateInventoryItem replaces a stock line. The actor must manage both the
// current warehouse of the item and the one it ends up in.
func (a *App) UpdateInventoryItem(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error) {
	var out models.InventoryItem
	err := a.mutate(ctx, OpUpdateInventoryItem, func(tx *state.State) error {
		if existing, ok := tx.InventoryItem(strings.TrimSpace(input.ID)); ok {
			if err := authorize(tx, visibility.KindInventory, visibility.ActionWrite, visibility.Scope{WarehouseID: existing.WarehouseID}); err != nil {
				return err
			}
		}
		if err := a.authorizeStockWrite(tx, input.WarehouseID); err != nil {
			return err
		}
		item, err := a.inventory.Update(tx, input)
		out = item
		return err
	})
	return out, err
}

func (a *App) authorizeStockWrite(tx *state.State, warehouseID string) error {
	if _, err := requireActor(tx); err != nil {
		return err
	}
	warehouseID = strings.TrimSpace(warehouseID)
	if warehouseID == "" {
		return validate.Field("warehouse_id", "is required")
	}
	if err := authorize(tx, visibility.KindInventory, visibility.ActionWrite, visibility.Scope{WarehouseID: warehouseID}); err != nil {
		return err
	}
	_, err := warehouses.RequireActive(tx, warehouseID)
	return err
}

// CheckIn opens an attendance record for the current actor. An empty
// warehouse defaults to the actor's assignment.
func (a *App) CheckIn(ctx context.Context, warehouseID string, shift enums.Shift) (models.AttendanceRecord, error) {
	var out models.AttendanceRecord
	err := a.mutate(ctx, OpCheckIn, func(tx *state.State) error {
		actor, err := requireActor(tx)
		if err != nil {
			return err
		}
		warehouseID = strings.TrimSpace(warehouseID)
		if warehouseID == "" {
			warehouseID = actor.AssignedWarehouseID
		}
		if warehouseID == "" {
			return validate.Field("warehouse_id", "is required")
		}
		if err := authorize(tx, visibility.KindAttendance, visibility.ActionWrite, visibility.Scope{WarehouseID: warehouseID, UserID: actor.ID}); err != nil {
			return err
		}
		if _, err := warehouses.RequireActive(tx, warehouseID); err != nil {
			return err
		}
		rec, err := a.attendance.CheckIn(tx, attendance.CheckInInput{UserID: actor.ID, WarehouseID: warehouseID, Shift: shift})
		out = rec
		return err
	})
	return out, err
}

// CheckOut closes an attendance record. Unknown or closed records are a
// silent no-op and return nil. Record ownership is not checked.
func (a *App) CheckOut(ctx context.Context, recordID string) (*models.AttendanceRecord, error) {
	var out *models.AttendanceRecord
	err := a.mutate(ctx, OpCheckOut, func(tx *state.State) error {
		if _, err := requireActor(tx); err != nil {
			return err
		}
		rec, err := a.attendance.CheckOut(tx, recordID)
		out = rec
		return err
	})
	return out, err
}

// FulfillOrder deducts stock for every line and completes the order, or
// changes nothing.
func (a *App) FulfillOrder(ctx context.Context, orderID string) (models.Order, error) {
	var out models.Order
	err := a.mutate(ctx, OpFulfillOrder, func(tx *state.State) error {
		if _, err := requireActor(tx); err != nil {
			return err
		}
		if order, ok := tx.Order(strings.TrimSpace(orderID)); ok {
			if err := authorize(tx, visibility.KindOrders, visibility.ActionWrite, visibility.Scope{WarehouseID: order.WarehouseID}); err != nil {
				return err
			}
		}
		order, err := a.orders.Fulfill(tx, orderID)
		out = order
		return err
	})
	return out, err
}

func (a *App) AddCustomer(ctx context.Context, input customers.CustomerInput) (models.Customer, error) {
	var out models.Customer
	err := a.mutate(ctx, OpAddCustomer, func(tx *state.State) error {
		if err := authorize(tx, visibility.KindCustomers, visibility.ActionWrite, visibility.Scope{}); err != nil {
			return err
		}
		customer, err := a.customers.Add(tx, input)
		out = customer
		return err
	})
	return out, err
}

// GenerateInvoice bills a completed order. Each order is billed at most once.
func (a *App) GenerateInvoice(ctx context.Context, orderID string) (models.Invoice, error) {
	var out models.Invoice
	err := a.mutate(ctx, OpGenerateInvoice, func(tx *state.State) error {
		if _, err := requireActor(tx); err != nil {
			return err
		}
		if order, ok := tx.Order(strings.TrimSpace(orderID)); ok {
			if err := authorize(tx, visibility.KindInvoices, visibility.ActionWrite, visibility.Scope{WarehouseID: order.WarehouseID}); err != nil {
				return err
			}
			if order.Status != enums.OrderStatusCompleted {
				if _, billed := tx.InvoiceForOrder(order.ID); !billed {
					return pkgerrors.Wrap(pkgerrors.CodeStateConflict, ErrOrderNotCompleted, fmt.Sprintf("Order #%s must be completed before invoicing", order.ID)).
						WithDetails(map[string]any{"order_id": order.ID, "status": order.Status})
				}
			}
		}
		invoice, err := a.invoices.Generate(tx, orderID)
		out = invoice
		return err
	})
	return out, err
}

// RecordPayment applies a strictly positive payment to an invoice.
func (a *App) RecordPayment(ctx context.Context, invoiceID string, amount decimal.Decimal, method enums.PaymentMethod) (models.Invoice, error) {
	var out models.Invoice
	err := a.mutate(ctx, OpRecordPayment, func(tx *state.State) error {
		if _, err := requireActor(tx); err != nil {
			return err
		}
		if !amount.IsPositive() {
			return validate.Field("amount", "must be greater than 0")
		}
		if invoice, ok := tx.Invoice(strings.TrimSpace(invoiceID)); ok {
			scope := visibility.Scope{WarehouseID: tx.OrderWarehouse(invoice.OrderID)}
			if err := authorize(tx, visibility.KindInvoices, visibility.ActionWrite, scope); err != nil {
				return err
			}
		}
		invoice, err := a.invoices.RecordPayment(tx, invoices.PaymentInput{InvoiceID: invoiceID, Amount: amount, Method: method})
		out = invoice
		return err
	})
	return out, err
}

// CreatePayrollEstimate freezes a gross-pay estimate for a worker or admin.
func (a *App) CreatePayrollEstimate(ctx context.Context, input payroll.EstimateInput) (models.PayrollEstimate, error) {
	var out models.PayrollEstimate
	err := a.mutate(ctx, OpCreatePayroll, func(tx *state.State) error {
		actor, err := requireActor(tx)
		if err != nil {
			return err
		}
		if target, ok := tx.User(strings.TrimSpace(input.UserID)); ok {
			scope := visibility.Scope{WarehouseID: target.AssignedWarehouseID, UserID: target.ID}
			if err := authorize(tx, visibility.KindPayroll, visibility.ActionWrite, scope); err != nil {
				return err
			}
			if !visibility.CanEstimatePayrollFor(actor, target) {
				return pkgerrors.Wrap(pkgerrors.CodeForbidden, ErrPayrollTarget, fmt.Sprintf("Cannot estimate payroll for %s", target.FullName)).
					WithDetails(map[string]any{"user_id": target.ID, "role": target.Role})
			}
		}
		estimate, err := a.payroll.Estimate(tx, actor.ID, input)
		out = estimate
		return err
	})
	return out, err
}

func (a *App) AddUser(ctx context.Context, input users.CreateUserInput) (models.User, error) {
	var out models.User
	err := a.mutate(ctx, OpAddUser, func(tx *state.State) error {
		if err := authorize(tx, visibility.KindUsers, visibility.ActionWrite, visibility.Scope{UserID: input.ID}); err != nil {
			return err
		}
		user, err := a.users.Add(tx, input)
		out = user
		return err
	})
	return out, err
}

func (a *App) UpdateUser(ctx context.Context, id string, input users.UpdateUserInput) (models.User, error) {
	var out models.User
	err := a.mutate(ctx, OpUpdateUser, func(tx *state.State) error {
		if err := authorize(tx, visibility.KindUsers, visibility.ActionWrite, visibility.Scope{UserID: id}); err != nil {
			return err
		}
		user, err := a.users.Update(tx, id, input)
		out = user
		return err
	})
	return out, err
}

func (a *App) DeleteUser(ctx context.Context, id string) error {
	return a.mutate(ctx, OpDeleteUser, func(tx *state.State) error {
		if err := authorize(tx, visibility.KindUsers, visibility.ActionWrite, visibility.Scope{UserID: id}); err != nil {
			return err
		}
		return a.users.Delete(tx, id)
	})
}

// authorize checks the rule table against the actor resolved inside tx.
func authorize(tx *state.State, kind visibility.Kind, action visibility.Action, scope visibility.Scope) error {
	actor, err := requireActor(tx)
	if err != nil {
		return err
	}
	return visibility.Ensure(actor, kind, action, scope)
}
