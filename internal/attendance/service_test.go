package attendance

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time { return c.now }

func newTestService(t *testing.T, clock *testClock, opts Options) Service {
	t.Helper()
	seq := 0
	ids := func(prefix string) string {
		seq++
		return fmt.Sprintf("%s-%d", prefix, seq)
	}
	notes, err := notifications.NewService(clock.Now, ids)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	svc, err := NewService(notes, clock.Now, ids, opts)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func newTestState() *state.State {
	st := &state.State{}
	st.Users = []models.User{{ID: "u3", FullName: "John Worker", Role: enums.RoleWorker, AssignedWarehouseID: "w1"}}
	return st
}

func TestCheckInAndOut(t *testing.T) {
	clock := &testClock{now: time.Date(2023, 10, 28, 8, 15, 0, 0, time.UTC)}
	svc := newTestService(t, clock, Options{AllowMultipleOpen: true})
	tx := newTestState()

	rec, err := svc.CheckIn(tx, CheckInInput{UserID: "u3", WarehouseID: "w1", Shift: enums.ShiftMorning})
	if err != nil {
		t.Fatalf("check in: %v", err)
	}
	if !rec.IsOpen() || rec.Status != enums.AttendanceStatusPresent || rec.Date.String() != "2023-10-28" {
		t.Fatalf("unexpected record %+v", rec)
	}
	if tx.Notifications[0].Message != "Checked in for morning shift" {
		t.Fatalf("unexpected notification %q", tx.Notifications[0].Message)
	}

	clock.now = clock.now.Add(9 * time.Hour)
	closed, err := svc.CheckOut(tx, rec.ID)
	if err != nil {
		t.Fatalf("check out: %v", err)
	}
	if closed == nil || closed.CheckOut == nil || !closed.CheckOut.Equal(clock.now) {
		t.Fatalf("expected closed record, got %+v", closed)
	}
	if tx.Notifications[0].Kind != enums.NotificationKindInfo || tx.Notifications[0].Message != "Checked out successfully" {
		t.Fatalf("unexpected notification %+v", tx.Notifications[0])
	}

	firstCheckOut := *tx.Attendance[0].CheckOut
	clock.now = clock.now.Add(time.Hour)
	again, err := svc.CheckOut(tx, rec.ID)
	if err != nil || again != nil {
		t.Fatalf("expected no-op on second check out, got %+v, %v", again, err)
	}
	if !tx.Attendance[0].CheckOut.Equal(firstCheckOut) {
		t.Fatal("closed record must not be touched again")
	}
	if len(tx.Notifications) != 3 || tx.Notifications[0].Message != NoOpenRecordMessage {
		t.Fatalf("expected a no-op notification after the second check out, got %+v", tx.Notifications)
	}
}

func TestCheckOutUnknownIsNoop(t *testing.T) {
	clock := &testClock{now: time.Date(2023, 10, 28, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock, Options{AllowMultipleOpen: true})
	tx := newTestState()

	rec, err := svc.CheckOut(tx, "missing")
	if err != nil || rec != nil {
		t.Fatalf("expected silent no-op, got %+v, %v", rec, err)
	}
	if len(tx.Attendance) != 0 {
		t.Fatalf("expected attendance untouched, got %d records", len(tx.Attendance))
	}
	if len(tx.Notifications) != 1 || tx.Notifications[0].Message != NoOpenRecordMessage || tx.Notifications[0].Kind != enums.NotificationKindInfo {
		t.Fatalf("expected one info notification, got %+v", tx.Notifications)
	}
}

func TestMultipleOpenCheckIns(t *testing.T) {
	clock := &testClock{now: time.Date(2023, 10, 28, 8, 0, 0, 0, time.UTC)}
	input := CheckInInput{UserID: "u3", WarehouseID: "w1", Shift: enums.ShiftMorning}

	t.Run("allowed", func(t *testing.T) {
		svc := newTestService(t, clock, Options{AllowMultipleOpen: true})
		tx := newTestState()
		for i := 0; i < 2; i++ {
			if _, err := svc.CheckIn(tx, input); err != nil {
				t.Fatalf("check in %d: %v", i, err)
			}
		}
		if len(tx.Attendance) != 2 {
			t.Fatalf("expected 2 records, got %d", len(tx.Attendance))
		}
	})

	t.Run("rejected", func(t *testing.T) {
		svc := newTestService(t, clock, Options{AllowMultipleOpen: false})
		tx := newTestState()
		if _, err := svc.CheckIn(tx, input); err != nil {
			t.Fatalf("first check in: %v", err)
		}
		_, err := svc.CheckIn(tx, input)
		if !errors.Is(err, ErrAlreadyCheckedIn) || pkgerrors.As(err).Code() != pkgerrors.CodeConflict {
			t.Fatalf("expected conflict, got %v", err)
		}
	})

	t.Run("previous day does not block", func(t *testing.T) {
		svc := newTestService(t, clock, Options{AllowMultipleOpen: false})
		tx := newTestState()
		tx.Attendance = []models.AttendanceRecord{{
			ID: "a2", UserID: "u3", WarehouseID: "w1", Date: types.MustParseDate("2023-10-27"),
			CheckIn: time.Date(2023, 10, 27, 8, 0, 0, 0, time.UTC), Status: enums.AttendanceStatusPresent, Shift: enums.ShiftMorning,
		}}
		if _, err := svc.CheckIn(tx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckInValidation(t *testing.T) {
	clock := &testClock{now: time.Date(2023, 10, 28, 8, 0, 0, 0, time.UTC)}
	svc := newTestService(t, clock, Options{AllowMultipleOpen: true})

	tests := []struct {
		name  string
		input CheckInInput
	}{
		{name: "missing user", input: CheckInInput{WarehouseID: "w1", Shift: enums.ShiftMorning}},
		{name: "missing warehouse", input: CheckInInput{UserID: "u3", Shift: enums.ShiftMorning}},
		{name: "invalid shift", input: CheckInInput{UserID: "u3", WarehouseID: "w1", Shift: "graveyard"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tx := newTestState()
			_, err := svc.CheckIn(tx, tc.input)
			if pkgerrors.As(err).Code() != pkgerrors.CodeValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(tx.Attendance) != 0 {
				t.Fatal("rejected check in must not append")
			}
		})
	}
}

func TestRowsResolveCurrentName(t *testing.T) {
	st := newTestState()
	st.Attendance = []models.AttendanceRecord{
		{ID: "a1", UserID: "u3"},
		{ID: "a9", UserID: "ghost"},
	}
	st.Users[0].FullName = "John Renamed"

	rows := Rows(st, st.Attendance)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].UserName != "John Renamed" {
		t.Fatalf("expected renamed user, got %q", rows[0].UserName)
	}
	if rows[1].UserName != "" {
		t.Fatalf("expected empty name for unknown user, got %q", rows[1].UserName)
	}
}
