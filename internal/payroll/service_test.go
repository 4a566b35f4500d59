package payroll

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

var fixedNow = time.Date(2023, 10, 31, 18, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) Service {
	t.Helper()
	clock := func() time.Time { return fixedNow }
	seq := 0
	ids := func(prefix string) string {
		seq++
		return fmt.Sprintf("%s-%d", prefix, seq)
	}
	notes, err := notifications.NewService(clock, ids)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	svc, err := NewService(notes, clock, ids)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func newTestState() *state.State {
	st := &state.State{}
	st.Users = []models.User{
		{ID: "u1", FullName: "Owner", Role: enums.RoleOwner, HourlyRate: decimal.NewNullDecimal(decimal.Zero)},
		{ID: "u3", FullName: "John Worker", Role: enums.RoleWorker, AssignedWarehouseID: "w1", HourlyRate: decimal.NewNullDecimal(decimal.NewFromInt(60))},
		{ID: "u5", FullName: "No Rate", Role: enums.RoleWorker, AssignedWarehouseID: "w2"},
	}
	return st
}

func TestEstimateIsDeterministicAndFrozen(t *testing.T) {
	svc := newTestService(t)
	tx := newTestState()

	estimate, err := svc.Estimate(tx, "u1", EstimateInput{
		UserID:      "u3",
		StartDate:   types.MustParseDate("2023-10-01"),
		EndDate:     types.MustParseDate("2023-10-15"),
		HoursWorked: decimal.NewFromInt(10),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !estimate.GrossPay.Equal(decimal.NewFromInt(600)) {
		t.Fatalf("expected gross pay 600, got %s", estimate.GrossPay)
	}
	if estimate.WarehouseID != "w1" || estimate.GeneratedBy != "u1" || !estimate.GeneratedAt.Equal(fixedNow) {
		t.Fatalf("unexpected estimate metadata %+v", estimate)
	}

	tx.Users[1].HourlyRate = decimal.NewNullDecimal(decimal.NewFromInt(90))
	if !tx.Payroll[0].GrossPay.Equal(decimal.NewFromInt(600)) || !tx.Payroll[0].HourlyRate.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("stored estimate must not follow rate changes, got %s", tx.Payroll[0].GrossPay)
	}
	if tx.Notifications[0].Message != "Payroll estimated for user u3" {
		t.Fatalf("unexpected notification %q", tx.Notifications[0].Message)
	}
}

func TestEstimateStoresNewestFirst(t *testing.T) {
	svc := newTestService(t)
	tx := newTestState()

	first, _ := svc.Estimate(tx, "u1", EstimateInput{UserID: "u3", HoursWorked: decimal.NewFromInt(1)})
	second, _ := svc.Estimate(tx, "u1", EstimateInput{UserID: "u3", HoursWorked: decimal.NewFromInt(2)})
	if tx.Payroll[0].ID != second.ID || tx.Payroll[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s, %s", tx.Payroll[0].ID, tx.Payroll[1].ID)
	}
}

func TestEstimateEdgeCases(t *testing.T) {
	svc := newTestService(t)

	t.Run("missing rate is zero", func(t *testing.T) {
		tx := newTestState()
		estimate, err := svc.Estimate(tx, "u1", EstimateInput{UserID: "u5", HoursWorked: decimal.NewFromInt(40)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !estimate.GrossPay.IsZero() {
			t.Fatalf("expected zero gross pay, got %s", estimate.GrossPay)
		}
	})

	t.Run("fractional hours are exact", func(t *testing.T) {
		tx := newTestState()
		estimate, err := svc.Estimate(tx, "u1", EstimateInput{UserID: "u3", HoursWorked: decimal.RequireFromString("7.25")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !estimate.GrossPay.Equal(decimal.RequireFromString("435")) {
			t.Fatalf("expected 435, got %s", estimate.GrossPay)
		}
	})

	t.Run("end before start is accepted", func(t *testing.T) {
		tx := newTestState()
		_, err := svc.Estimate(tx, "u1", EstimateInput{
			UserID:      "u3",
			StartDate:   types.MustParseDate("2023-10-15"),
			EndDate:     types.MustParseDate("2023-10-01"),
			HoursWorked: decimal.NewFromInt(1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative hours", func(t *testing.T) {
		tx := newTestState()
		_, err := svc.Estimate(tx, "u1", EstimateInput{UserID: "u3", HoursWorked: decimal.NewFromInt(-1)})
		if !errors.Is(err, ErrNegativeHours) || pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
		if len(tx.Payroll) != 0 {
			t.Fatal("rejected estimate must not be stored")
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		tx := newTestState()
		_, err := svc.Estimate(tx, "u1", EstimateInput{UserID: "ghost", HoursWorked: decimal.NewFromInt(1)})
		if !errors.Is(err, ErrUserNotFound) || pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("missing user id", func(t *testing.T) {
		tx := newTestState()
		_, err := svc.Estimate(tx, "u1", EstimateInput{HoursWorked: decimal.NewFromInt(1)})
		if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error, got %v", err)
		}
	})
}
