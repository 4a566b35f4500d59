package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/angelmondragon/factoryops-backend/internal/attendance"
	"github.com/angelmondragon/factoryops-backend/internal/customers"
	"github.com/angelmondragon/factoryops-backend/internal/inventory"
	"github.com/angelmondragon/factoryops-backend/internal/invoices"
	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/orders"
	"github.com/angelmondragon/factoryops-backend/internal/payroll"
	"github.com/angelmondragon/factoryops-backend/internal/session"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/internal/users"
	"github.com/angelmondragon/factoryops-backend/internal/warehouses"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/metrics"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

// Options carries the tunables the engines read from configuration.
type Options struct {
	AllowMultipleOpenCheckIns bool
	InvoiceDueDays            int
	LowStockThreshold         int
}

// OptionsFromConfig maps the loaded configuration onto Options.
func OptionsFromConfig(cfg *config.Config) Options {
	if cfg == nil {
		return Options{AllowMultipleOpenCheckIns: true}
	}
	return Options{
		AllowMultipleOpenCheckIns: cfg.Attendance.AllowMultipleOpen,
		InvoiceDueDays:            cfg.Invoicing.DueDays,
		LowStockThreshold:         cfg.Dashboard.LowStockThreshold,
	}
}

// Params configure the application facade.
type Params struct {
	Store   *state.Store
	Logger  *logger.Logger
	Metrics *metrics.OperationMetrics
	Clock   state.Clock
	IDs     state.IDGenerator
	Options Options
}

// App is the operation surface every host drives. Each mutating call
// authorizes the current actor, runs inside one store transaction and leaves
// exactly one notification behind: the engine's on success, an error entry
// carrying the failure message otherwise.
type App struct {
	store   *state.Store
	logg    *logger.Logger
	metrics *metrics.OperationMetrics
	clock   state.Clock
	opts    Options

	notes      notifications.Service
	session    session.Service
	warehouses warehouses.Service
	inventory  inventory.Service
	attendance attendance.Service
	orders     orders.Service
	customers  customers.Service
	invoices   invoices.Service
	payroll    payroll.Service
	users      users.Service
}

// New wires every engine against the shared store.
func New(params Params) (*App, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("store required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	clock := params.Clock
	if clock == nil {
		clock = state.SystemClock
	}
	ids := params.IDs
	if ids == nil {
		ids = state.UUIDGenerator
	}

	a := &App{
		store:   params.Store,
		logg:    params.Logger,
		metrics: params.Metrics,
		clock:   clock,
		opts:    params.Options,
	}

	var err error
	if a.notes, err = notifications.NewService(clock, ids); err != nil {
		return nil, fmt.Errorf("notifications: %w", err)
	}
	if a.session, err = session.NewService(a.notes, ids); err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	if a.warehouses, err = warehouses.NewService(a.notes, ids); err != nil {
		return nil, fmt.Errorf("warehouses: %w", err)
	}
	if a.inventory, err = inventory.NewService(a.notes, clock, ids); err != nil {
		return nil, fmt.Errorf("inventory: %w", err)
	}
	if a.attendance, err = attendance.NewService(a.notes, clock, ids, attendance.Options{AllowMultipleOpen: params.Options.AllowMultipleOpenCheckIns}); err != nil {
		return nil, fmt.Errorf("attendance: %w", err)
	}
	if a.orders, err = orders.NewService(a.notes, clock); err != nil {
		return nil, fmt.Errorf("orders: %w", err)
	}
	if a.customers, err = customers.NewService(a.notes, ids); err != nil {
		return nil, fmt.Errorf("customers: %w", err)
	}
	if a.invoices, err = invoices.NewService(a.notes, clock, ids, params.Options.InvoiceDueDays); err != nil {
		return nil, fmt.Errorf("invoices: %w", err)
	}
	if a.payroll, err = payroll.NewService(a.notes, clock, ids); err != nil {
		return nil, fmt.Errorf("payroll: %w", err)
	}
	if a.users, err = users.NewService(a.notes, ids); err != nil {
		return nil, fmt.Errorf("users: %w", err)
	}
	return a, nil
}

// SessionID is the id tokens must carry to be accepted.
func (a *App) SessionID() string {
	return a.store.SessionID()
}

func (a *App) mutate(ctx context.Context, op string, fn func(tx *state.State) error) error {
	opCtx := a.logg.WithOperation(ctx, op)
	start := time.Now()
	err := a.store.WithTx(opCtx, fn)
	elapsed := time.Since(start)
	opCtx = a.logg.WithField(opCtx, "duration_ms", elapsed.Milliseconds())

	if err != nil {
		typed := asTyped(err)
		a.notifyFailure(opCtx, typed)
		a.logFailure(opCtx, typed)
		a.metrics.Record(op, elapsed, string(typed.Code()))
		return typed
	}

	a.logg.Info(opCtx, "operation completed")
	a.metrics.Record(op, elapsed, "")
	return nil
}

// notifyFailure commits the error notification on its own; the failed
// transaction has already been discarded.
func (a *App) notifyFailure(ctx context.Context, err *pkgerrors.Error) {
	commitErr := a.store.WithTx(context.WithoutCancel(ctx), func(tx *state.State) error {
		a.notes.Push(tx, enums.NotificationKindError, err.Message())
		return nil
	})
	if commitErr != nil {
		a.logg.Error(ctx, "failed to record error notification", commitErr)
	}
}

func (a *App) logFailure(ctx context.Context, err *pkgerrors.Error) {
	ctx = a.logg.WithFields(ctx, map[string]any{
		"error_code": string(err.Code()),
		"error":      err.Error(),
	})
	if err.Code().ServerSide() {
		a.logg.Error(ctx, "operation failed", err)
		return
	}
	a.logg.Warn(ctx, "operation rejected")
}

// asTyped maps any failure onto the error taxonomy. Context expiry surfaces as
// a dependency error; anything untyped is internal.
func asTyped(err error) *pkgerrors.Error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "request cancelled")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "unexpected failure")
}

// requireActor resolves the current actor or fails UNAUTHORIZED.
func requireActor(tx *state.State) (*models.User, error) {
	actor := tx.Actor()
	if actor == nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Please log in to continue")
	}
	return actor, nil
}
