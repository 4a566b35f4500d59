package controllers

import (
	"context"
	"io"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/app"
	"github.com/angelmondragon/factoryops-backend/internal/attendance"
	"github.com/angelmondragon/factoryops-backend/internal/customers"
	"github.com/angelmondragon/factoryops-backend/internal/dashboard"
	"github.com/angelmondragon/factoryops-backend/internal/inventory"
	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/payroll"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/internal/users"
	"github.com/angelmondragon/factoryops-backend/internal/warehouses"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

// fakeApp implements every controller interface; unset funcs return zero values.
type fakeApp struct {
	loginFn         func(ctx context.Context, role enums.Role) (app.Session, error)
	logoutFn        func(ctx context.Context) error
	meFn            func(ctx context.Context) (models.User, error)
	snapshotFn      func(ctx context.Context) (state.Collections, error)
	addWarehouseFn  func(ctx context.Context, input warehouses.CreateWarehouseInput) (models.Warehouse, error)
	updWarehouseFn  func(ctx context.Context, id string, input warehouses.UpdateWarehouseInput) (models.Warehouse, error)
	addItemFn       func(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error)
	updItemFn       func(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error)
	attendanceFn    func(ctx context.Context) ([]attendance.Row, error)
	checkInFn       func(ctx context.Context, warehouseID string, shift enums.Shift) (models.AttendanceRecord, error)
	checkOutFn      func(ctx context.Context, recordID string) (*models.AttendanceRecord, error)
	addCustomerFn   func(ctx context.Context, input customers.CustomerInput) (models.Customer, error)
	fulfillFn       func(ctx context.Context, orderID string) (models.Order, error)
	invoiceFn       func(ctx context.Context, orderID string) (models.Invoice, error)
	paymentFn       func(ctx context.Context, invoiceID string, amount decimal.Decimal, method enums.PaymentMethod) (models.Invoice, error)
	payrollFn       func(ctx context.Context, input payroll.EstimateInput) (models.PayrollEstimate, error)
	addUserFn       func(ctx context.Context, input users.CreateUserInput) (models.User, error)
	updUserFn       func(ctx context.Context, id string, input users.UpdateUserInput) (models.User, error)
	deleteUserFn    func(ctx context.Context, id string) error
	notificationsFn func(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error)
	dashboardFn     func(ctx context.Context) (dashboard.Summary, error)
	sectionsFn      func(ctx context.Context) ([]string, error)
	payrollReportFn func(ctx context.Context, w io.Writer) error
	invoiceReportFn func(ctx context.Context, w io.Writer) error
}

func (f *fakeApp) Login(ctx context.Context, role enums.Role) (app.Session, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, role)
	}
	return app.Session{}, nil
}

func (f *fakeApp) Logout(ctx context.Context) error {
	if f.logoutFn != nil {
		return f.logoutFn(ctx)
	}
	return nil
}

func (f *fakeApp) Me(ctx context.Context) (models.User, error) {
	if f.meFn != nil {
		return f.meFn(ctx)
	}
	return models.User{}, nil
}

func (f *fakeApp) Snapshot(ctx context.Context) (state.Collections, error) {
	if f.snapshotFn != nil {
		return f.snapshotFn(ctx)
	}
	return state.Collections{}, nil
}

func (f *fakeApp) AddWarehouse(ctx context.Context, input warehouses.CreateWarehouseInput) (models.Warehouse, error) {
	if f.addWarehouseFn != nil {
		return f.addWarehouseFn(ctx, input)
	}
	return models.Warehouse{}, nil
}

func (f *fakeApp) UpdateWarehouse(ctx context.Context, id string, input warehouses.UpdateWarehouseInput) (models.Warehouse, error) {
	if f.updWarehouseFn != nil {
		return f.updWarehouseFn(ctx, id, input)
	}
	return models.Warehouse{}, nil
}

func (f *fakeApp) AddInventoryItem(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error) {
	if f.addItemFn != nil {
		return f.addItemFn(ctx, input)
	}
	return models.InventoryItem{}, nil
}

func (f *fakeApp) UpdateInventoryItem(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error) {
	if f.updItemFn != nil {
		return f.updItemFn(ctx, input)
	}
	return models.InventoryItem{}, nil
}

func (f *fakeApp) Attendance(ctx context.Context) ([]attendance.Row, error) {
	if f.attendanceFn != nil {
		return f.attendanceFn(ctx)
	}
	return nil, nil
}

func (f *fakeApp) CheckIn(ctx context.Context, warehouseID string, shift enums.Shift) (models.AttendanceRecord, error) {
	if f.checkInFn != nil {
		return f.checkInFn(ctx, warehouseID, shift)
	}
	return models.AttendanceRecord{}, nil
}

func (f *fakeApp) CheckOut(ctx context.Context, recordID string) (*models.AttendanceRecord, error) {
	if f.checkOutFn != nil {
		return f.checkOutFn(ctx, recordID)
	}
	return nil, nil
}

func (f *fakeApp) AddCustomer(ctx context.Context, input customers.CustomerInput) (models.Customer, error) {
	if f.addCustomerFn != nil {
		return f.addCustomerFn(ctx, input)
	}
	return models.Customer{}, nil
}

func (f *fakeApp) FulfillOrder(ctx context.Context, orderID string) (models.Order, error) {
	if f.fulfillFn != nil {
		return f.fulfillFn(ctx, orderID)
	}
	return models.Order{}, nil
}

func (f *fakeApp) GenerateInvoice(ctx context.Context, orderID string) (models.Invoice, error) {
	if f.invoiceFn != nil {
		return f.invoiceFn(ctx, orderID)
	}
	return models.Invoice{}, nil
}

func (f *fakeApp) RecordPayment(ctx context.Context, invoiceID string, amount decimal.Decimal, method enums.PaymentMethod) (models.Invoice, error) {
	if f.paymentFn != nil {
		return f.paymentFn(ctx, invoiceID, amount, method)
	}
	return models.Invoice{}, nil
}

func (f *fakeApp) CreatePayrollEstimate(ctx context.Context, input payroll.EstimateInput) (models.PayrollEstimate, error) {
	if f.payrollFn != nil {
		return f.payrollFn(ctx, input)
	}
	return models.PayrollEstimate{}, nil
}

func (f *fakeApp) AddUser(ctx context.Context, input users.CreateUserInput) (models.User, error) {
	if f.addUserFn != nil {
		return f.addUserFn(ctx, input)
	}
	return models.User{}, nil
}

func (f *fakeApp) UpdateUser(ctx context.Context, id string, input users.UpdateUserInput) (models.User, error) {
	if f.updUserFn != nil {
		return f.updUserFn(ctx, id, input)
	}
	return models.User{}, nil
}

func (f *fakeApp) DeleteUser(ctx context.Context, id string) error {
	if f.deleteUserFn != nil {
		return f.deleteUserFn(ctx, id)
	}
	return nil
}

func (f *fakeApp) Notifications(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error) {
	if f.notificationsFn != nil {
		return f.notificationsFn(ctx, params)
	}
	return &notifications.ListResult{}, nil
}

func (f *fakeApp) Dashboard(ctx context.Context) (dashboard.Summary, error) {
	if f.dashboardFn != nil {
		return f.dashboardFn(ctx)
	}
	return dashboard.Summary{}, nil
}

func (f *fakeApp) Sections(ctx context.Context) ([]string, error) {
	if f.sectionsFn != nil {
		return f.sectionsFn(ctx)
	}
	return nil, nil
}

func (f *fakeApp) WritePayrollReport(ctx context.Context, w io.Writer) error {
	if f.payrollReportFn != nil {
		return f.payrollReportFn(ctx, w)
	}
	return nil
}

func (f *fakeApp) WriteInvoiceReport(ctx context.Context, w io.Writer) error {
	if f.invoiceReportFn != nil {
		return f.invoiceReportFn(ctx, w)
	}
	return nil
}
