package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/customers"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

type customerService interface {
	AddCustomer(ctx context.Context, input customers.CustomerInput) (models.Customer, error)
}

func ListCustomers(svc snapshotReader, logg *logger.Logger) http.HandlerFunc {
	return listFrom(svc, logg, func(c state.Collections) []models.Customer { return c.Customers })
}

func CreateCustomer(svc customerService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "customer service unavailable"))
			return
		}
		var body customers.CustomerInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		customer, err := svc.AddCustomer(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, customer)
	}
}
