package app

import (
	"context"
	"io"

	"github.com/angelmondragon/factoryops-backend/internal/attendance"
	"github.com/angelmondragon/factoryops-backend/internal/dashboard"
	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/reports"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/visibility"
)

// view returns a detached snapshot together with its actor, failing
// UNAUTHORIZED when nobody is logged in.
func (a *App) view(ctx context.Context) (*state.State, *models.User, error) {
	st := a.store.View(ctx)
	actor, err := requireActor(st)
	if err != nil {
		return nil, nil, err
	}
	return st, actor, nil
}

// Me returns the current actor.
func (a *App) Me(ctx context.Context) (models.User, error) {
	_, actor, err := a.view(ctx)
	if err != nil {
		return models.User{}, err
	}
	return *actor, nil
}

// Snapshot returns every collection filtered to what the actor may read.
func (a *App) Snapshot(ctx context.Context) (state.Collections, error) {
	st, _, err := a.view(ctx)
	if err != nil {
		return state.Collections{}, err
	}
	return st.Scoped(), nil
}

// Sections lists the navigation sections open to the actor's role.
func (a *App) Sections(ctx context.Context) ([]string, error) {
	_, actor, err := a.view(ctx)
	if err != nil {
		return nil, err
	}
	return visibility.Sections(actor.Role), nil
}

func (a *App) Dashboard(ctx context.Context) (dashboard.Summary, error) {
	st, _, err := a.view(ctx)
	if err != nil {
		return dashboard.Summary{}, err
	}
	return dashboard.Compute(st.Scoped(), a.clock(), a.opts.LowStockThreshold), nil
}

func (a *App) Notifications(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error) {
	st, _, err := a.view(ctx)
	if err != nil {
		return nil, err
	}
	scoped := &state.State{Collections: state.Collections{Notifications: st.Scoped().Notifications}}
	return a.notes.List(scoped, params)
}

// Attendance lists visible attendance rows with current user names.
func (a *App) Attendance(ctx context.Context) ([]attendance.Row, error) {
	st, _, err := a.view(ctx)
	if err != nil {
		return nil, err
	}
	return attendance.Rows(st, st.Scoped().Attendance), nil
}

// WritePayrollReport streams the visible payroll estimates as XLSX.
func (a *App) WritePayrollReport(ctx context.Context, w io.Writer) error {
	st, _, err := a.view(ctx)
	if err != nil {
		return err
	}
	return reports.WritePayroll(w, st.Scoped().Payroll, func(id string) string {
		user, _ := st.User(id)
		return user.FullName
	})
}

// WriteInvoiceReport streams the visible invoices as XLSX.
func (a *App) WriteInvoiceReport(ctx context.Context, w io.Writer) error {
	st, _, err := a.view(ctx)
	if err != nil {
		return err
	}
	return reports.WriteInvoices(w, st.Scoped().Invoices, func(id string) string {
		customer, _ := st.Customer(id)
		return customer.Name
	})
}
