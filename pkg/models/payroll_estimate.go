package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// PayrollEstimate freezes gross pay at creation; later rate changes do not touch it.
type PayrollEstimate struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	WarehouseID string          `json:"warehouse_id"`
	StartDate   types.Date      `json:"start_date"`
	EndDate     types.Date      `json:"end_date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	GrossPay    decimal.Decimal `json:"gross_pay"`
	GeneratedAt time.Time       `json:"generated_at"`
	GeneratedBy string          `json:"generated_by"`
}
