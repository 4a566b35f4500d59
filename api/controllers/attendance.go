package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/attendance"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

type attendanceService interface {
	Attendance(ctx context.Context) ([]attendance.Row, error)
	CheckIn(ctx context.Context, warehouseID string, shift enums.Shift) (models.AttendanceRecord, error)
	CheckOut(ctx context.Context, recordID string) (*models.AttendanceRecord, error)
}

type checkInRequest struct {
	WarehouseID string      `json:"warehouse_id"`
	Shift       enums.Shift `json:"shift" validate:"required"`
}

func ListAttendance(svc attendanceService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
			return
		}
		rows, err := svc.Attendance(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if rows == nil {
			rows = []attendance.Row{}
		}
		responses.WriteSuccess(w, rows)
	}
}

// CheckIn records the current actor as present. An empty warehouse_id falls
// back to the actor's assigned warehouse.
func CheckIn(svc attendanceService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
			return
		}
		var body checkInRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		record, err := svc.CheckIn(r.Context(), body.WarehouseID, body.Shift)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, record)
	}
}

// CheckOut closes an open record. Unknown or already closed records yield null data.
func CheckOut(svc attendanceService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "attendance service unavailable"))
			return
		}
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		record, err := svc.CheckOut(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}
