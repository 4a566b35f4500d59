package models

import (
	"time"

	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/types"
)

// AttendanceRecord is opened on check-in and closed once on check-out.
type AttendanceRecord struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"user_id"`
	WarehouseID string                 `json:"warehouse_id"`
	Date        types.Date             `json:"date"`
	CheckIn     time.Time              `json:"check_in"`
	CheckOut    *time.Time             `json:"check_out,omitempty"`
	Status      enums.AttendanceStatus `json:"status"`
	Shift       enums.Shift            `json:"shift"`
}

// IsOpen reports whether the record still awaits a check-out.
func (a AttendanceRecord) IsOpen() bool { return a.CheckOut == nil }

// Clone detaches the check-out pointer from the receiver.
func (a AttendanceRecord) Clone() AttendanceRecord {
	if a.CheckOut != nil {
		out := *a.CheckOut
		a.CheckOut = &out
	}
	return a
}
