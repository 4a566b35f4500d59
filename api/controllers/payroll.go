package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/payroll"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

type payrollService interface {
	CreatePayrollEstimate(ctx context.Context, input payroll.EstimateInput) (models.PayrollEstimate, error)
}

func ListPayroll(svc snapshotReader, logg *logger.Logger) http.HandlerFunc {
	return listFrom(svc, logg, func(c state.Collections) []models.PayrollEstimate { return c.Payroll })
}

func CreatePayrollEstimate(svc payrollService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "payroll service unavailable"))
			return
		}
		var body payroll.EstimateInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		estimate, err := svc.CreatePayrollEstimate(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, estimate)
	}
}
