package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/internal/dashboard"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
)

type dashboardService interface {
	Dashboard(ctx context.Context) (dashboard.Summary, error)
	Sections(ctx context.Context) ([]string, error)
}

func Dashboard(svc dashboardService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard unavailable"))
			return
		}
		summary, err := svc.Dashboard(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, summary)
	}
}

// Sections lists the navigation sections the actor's role may open.
func Sections(svc dashboardService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard unavailable"))
			return
		}
		sections, err := svc.Sections(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string][]string{"sections": sections})
	}
}
