package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/factoryops-backend/api/controllers"
	"github.com/angelmondragon/factoryops-backend/api/middleware"
	"github.com/angelmondragon/factoryops-backend/internal/app"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/redis"
)

// Deps carries everything the router hands to middleware and controllers.
// Cache and Pinger stay nil when Redis is not configured.
type Deps struct {
	Config   *config.Config
	Logger   *logger.Logger
	App      *app.App
	Cache    redis.IdempotencyStore
	Pinger   redis.Pinger
	Gatherer prometheus.Gatherer
	Clock    state.Clock
}

func NewRouter(deps Deps) http.Handler {
	cfg, logg, svc := deps.Config, deps.Logger, deps.App
	clock := deps.Clock
	if clock == nil {
		clock = state.SystemClock
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.Pinger, logg))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Post("/api/v1/session/login", controllers.SessionLogin(svc, cfg.JWT, clock, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, svc, logg))
		r.Use(middleware.Idempotency(deps.Cache, logg))

		r.Post("/session/logout", controllers.SessionLogout(svc, logg))
		r.Get("/me", controllers.Me(svc, logg))
		r.Get("/sections", controllers.Sections(svc, logg))
		r.Get("/dashboard", controllers.Dashboard(svc, logg))
		r.Get("/notifications", controllers.ListNotifications(svc, logg))

		r.Route("/warehouses", func(r chi.Router) {
			r.Get("/", controllers.ListWarehouses(svc, logg))
			r.Post("/", controllers.CreateWarehouse(svc, logg))
			r.Put("/{id}", controllers.UpdateWarehouse(svc, logg))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", controllers.ListInventory(svc, logg))
			r.Post("/", controllers.CreateInventoryItem(svc, logg))
			r.Put("/{id}", controllers.UpdateInventoryItem(svc, logg))
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", controllers.ListAttendance(svc, logg))
			r.Post("/check-in", controllers.CheckIn(svc, logg))
			r.Post("/{id}/check-out", controllers.CheckOut(svc, logg))
		})

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", controllers.ListCustomers(svc, logg))
			r.Post("/", controllers.CreateCustomer(svc, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(svc, logg))
			r.Post("/{id}/fulfill", controllers.FulfillOrder(svc, logg))
			r.Post("/{id}/invoice", controllers.GenerateInvoice(svc, logg))
		})

		r.Route("/invoices", func(r chi.Router) {
			r.Get("/", controllers.ListInvoices(svc, logg))
			r.Post("/{id}/payments", controllers.RecordPayment(svc, logg))
		})

		r.Get("/payroll", controllers.ListPayroll(svc, logg))
		r.Post("/payroll", controllers.CreatePayrollEstimate(svc, logg))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", controllers.ListUsers(svc, logg))
			r.Post("/", controllers.CreateUser(svc, logg))
			r.Put("/{id}", controllers.UpdateUser(svc, logg))
			r.Delete("/{id}", controllers.DeleteUser(svc, logg))
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/payroll.xlsx", controllers.PayrollReport(svc, clock, logg))
			r.Get("/invoices.xlsx", controllers.InvoiceReport(svc, clock, logg))
		})
	})

	return r
}
