package attendance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

var ErrAlreadyCheckedIn = errors.New("already checked in today")

// Service records shift check-ins and check-outs.
type Service interface {
	CheckIn(tx *state.State, input CheckInInput) (models.AttendanceRecord, error)
	CheckOut(tx *state.State, recordID string) (*models.AttendanceRecord, error)
}

type CheckInInput struct {
	UserID      string      `json:"user_id" validate:"required"`
	WarehouseID string      `json:"warehouse_id" validate:"required"`
	Shift       enums.Shift `json:"shift" validate:"required"`
}

type Options struct {
	// AllowMultipleOpen permits several open records for the same user and day.
	AllowMultipleOpen bool
}

type service struct {
	notes notifications.Service
	clock state.Clock
	ids   state.IDGenerator
	opts  Options
}

func NewService(notes notifications.Service, clock state.Clock, ids state.IDGenerator, opts Options) (Service, error) {
	if notes == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator required")
	}
	return &service{notes: notes, clock: clock, ids: ids, opts: opts}, nil
}

func (s *service) CheckIn(tx *state.State, input CheckInInput) (models.AttendanceRecord, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.WarehouseID = strings.TrimSpace(input.WarehouseID)
	if err := validate.Struct(input); err != nil {
		return models.AttendanceRecord{}, err
	}
	if !input.Shift.IsValid() {
		return models.AttendanceRecord{}, validate.Field("shift", fmt.Sprintf("invalid shift %q", input.Shift))
	}

	now := s.clock()
	today := types.NewDate(now)
	if !s.opts.AllowMultipleOpen {
		for _, rec := range tx.Attendance {
			if rec.UserID == input.UserID && rec.IsOpen() && rec.Date.SameDay(today) {
				return models.AttendanceRecord{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrAlreadyCheckedIn, "Already checked in today").
					WithDetails(map[string]any{"record_id": rec.ID})
			}
		}
	}

	rec := models.AttendanceRecord{
		ID:          s.ids("a"),
		UserID:      input.UserID,
		WarehouseID: input.WarehouseID,
		Date:        today,
		CheckIn:     now,
		Status:      enums.AttendanceStatusPresent,
		Shift:       input.Shift,
	}
	tx.Attendance = append(tx.Attendance, rec)
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Checked in for %s shift", input.Shift))
	return rec, nil
}

// CheckOut closes the record with the given id. An unknown id or an already
// closed record leaves the collection untouched and returns nil; either way one
// info notification is pushed.
func (s *service) CheckOut(tx *state.State, recordID string) (*models.AttendanceRecord, error) {
	recordID = strings.TrimSpace(recordID)
	for i, rec := range tx.Attendance {
		if rec.ID != recordID {
			continue
		}
		if !rec.IsOpen() {
			s.notes.Push(tx, enums.NotificationKindInfo, NoOpenRecordMessage)
			return nil, nil
		}
		now := s.clock()
		rec.CheckOut = &now
		tx.Attendance[i] = rec
		s.notes.Push(tx, enums.NotificationKindInfo, "Checked out successfully")
		out := rec.Clone()
		return &out, nil
	}
	s.notes.Push(tx, enums.NotificationKindInfo, NoOpenRecordMessage)
	return nil, nil
}

// NoOpenRecordMessage is the notification left by a check-out that closed nothing.
const NoOpenRecordMessage = "No open attendance record to check out"

// Row is an attendance record joined with the user's current name.
type Row struct {
	models.AttendanceRecord
	UserName string `json:"user_name"`
}

// Rows resolves user names at read time so renames show up on every row.
func Rows(st *state.State, records []models.AttendanceRecord) []Row {
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row := Row{AttendanceRecord: rec.Clone()}
		if user, ok := st.User(rec.UserID); ok {
			row.UserName = user.FullName
		}
		rows = append(rows, row)
	}
	return rows
}
