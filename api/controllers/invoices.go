package controllers

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

type paymentService interface {
	RecordPayment(ctx context.Context, invoiceID string, amount decimal.Decimal, method enums.PaymentMethod) (models.Invoice, error)
}

type paymentRequest struct {
	Amount decimal.Decimal     `json:"amount"`
	Method enums.PaymentMethod `json:"method" validate:"required"`
}

func ListInvoices(svc snapshotReader, logg *logger.Logger) http.HandlerFunc {
	return listFrom(svc, logg, func(c state.Collections) []models.Invoice { return c.Invoices })
}

func RecordPayment(svc paymentService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "invoice service unavailable"))
			return
		}
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body paymentRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		invoice, err := svc.RecordPayment(r.Context(), id, body.Amount, body.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, invoice)
	}
}
