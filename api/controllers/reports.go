package controllers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/internal/reports"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

type reportService interface {
	WritePayrollReport(ctx context.Context, w io.Writer) error
	WriteInvoiceReport(ctx context.Context, w io.Writer) error
}

func PayrollReport(svc reportService, clock state.Clock, logg *logger.Logger) http.HandlerFunc {
	return workbook(clock, logg, "payroll", func(ctx context.Context, w io.Writer) error {
		if svc == nil {
			return pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable")
		}
		return svc.WritePayrollReport(ctx, w)
	})
}

func InvoiceReport(svc reportService, clock state.Clock, logg *logger.Logger) http.HandlerFunc {
	return workbook(clock, logg, "invoices", func(ctx context.Context, w io.Writer) error {
		if svc == nil {
			return pkgerrors.New(pkgerrors.CodeInternal, "report service unavailable")
		}
		return svc.WriteInvoiceReport(ctx, w)
	})
}

// workbook renders into a buffer first so a failed render still gets a JSON error.
func workbook(clock state.Clock, logg *logger.Logger, name string, render func(context.Context, io.Writer) error) http.HandlerFunc {
	if clock == nil {
		clock = state.SystemClock
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		if err := render(r.Context(), &buf); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filename := fmt.Sprintf("%s-%s.xlsx", name, types.NewDate(clock()).String())
		err := responses.WriteAttachment(w, reports.ContentType, filename, func(out http.ResponseWriter) error {
			_, err := buf.WriteTo(out)
			return err
		})
		if err != nil && logg != nil {
			logg.Error(r.Context(), "write report", err)
		}
	}
}
