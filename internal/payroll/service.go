package payroll

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNegativeHours = errors.New("hours worked must not be negative")
)

// Service computes gross-pay estimates.
type Service interface {
	Estimate(tx *state.State, generatedBy string, input EstimateInput) (models.PayrollEstimate, error)
}

// EstimateInput is trusted as given: the period is not ordered and hours are not
// reconciled against attendance.
type EstimateInput struct {
	UserID      string          `json:"user_id" validate:"required"`
	StartDate   types.Date      `json:"start_date"`
	EndDate     types.Date      `json:"end_date"`
	HoursWorked decimal.Decimal `json:"hours_worked"`
}

type service struct {
	notes notifications.Service
	clock state.Clock
	ids   state.IDGenerator
}

// NewService wires the payroll calculator.
func NewService(notes notifications.Service, clock state.Clock, ids state.IDGenerator) (Service, error) {
	if notes == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator required")
	}
	return &service{notes: notes, clock: clock, ids: ids}, nil
}

// Estimate freezes hours x rate into a new estimate, stored newest first.
func (s *service) Estimate(tx *state.State, generatedBy string, input EstimateInput) (models.PayrollEstimate, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	if err := validate.Struct(input); err != nil {
		return models.PayrollEstimate{}, err
	}
	if input.HoursWorked.IsNegative() {
		return models.PayrollEstimate{}, pkgerrors.Wrap(pkgerrors.CodeValidation, ErrNegativeHours, "hours worked must not be negative").
			WithDetails(map[string]string{"hours_worked": "must be greater than or equal to 0"})
	}

	user, ok := tx.User(input.UserID)
	if !ok {
		return models.PayrollEstimate{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrUserNotFound, fmt.Sprintf("User %s not found", input.UserID))
	}

	rate := user.Rate()
	estimate := models.PayrollEstimate{
		ID:          s.ids("pr"),
		UserID:      user.ID,
		WarehouseID: user.AssignedWarehouseID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		HoursWorked: input.HoursWorked,
		HourlyRate:  rate,
		GrossPay:    GrossPay(input.HoursWorked, rate),
		GeneratedAt: s.clock(),
		GeneratedBy: generatedBy,
	}
	tx.Payroll = append([]models.PayrollEstimate{estimate}, tx.Payroll...)
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Payroll estimated for user %s", user.ID))
	return estimate, nil
}

// GrossPay is hours x rate with no rounding.
func GrossPay(hours, rate decimal.Decimal) decimal.Decimal {
	return hours.Mul(rate)
}
