package state

import (
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

// Collections is every entity list the application owns. Order within each list
// is meaningful: lookups return the first match.
type Collections struct {
	Users         []models.User             `json:"users"`
	Warehouses    []models.Warehouse        `json:"warehouses"`
	Inventory     []models.InventoryItem    `json:"inventory"`
	Attendance    []models.AttendanceRecord `json:"attendance"`
	Customers     []models.Customer         `json:"customers"`
	Orders        []models.Order            `json:"orders"`
	Invoices      []models.Invoice          `json:"invoices"`
	Payments      []models.Payment          `json:"payments"`
	Payroll       []models.PayrollEstimate  `json:"payroll_estimates"`
	Notifications []models.Notification     `json:"notifications"`
}

// Clone deep-copies every collection.
func (c Collections) Clone() Collections {
	out := Collections{
		Users:         append([]models.User(nil), c.Users...),
		Warehouses:    append([]models.Warehouse(nil), c.Warehouses...),
		Inventory:     append([]models.InventoryItem(nil), c.Inventory...),
		Customers:     append([]models.Customer(nil), c.Customers...),
		Invoices:      append([]models.Invoice(nil), c.Invoices...),
		Payments:      append([]models.Payment(nil), c.Payments...),
		Payroll:       append([]models.PayrollEstimate(nil), c.Payroll...),
		Notifications: append([]models.Notification(nil), c.Notifications...),
	}
	if c.Attendance != nil {
		out.Attendance = make([]models.AttendanceRecord, len(c.Attendance))
		for i, rec := range c.Attendance {
			out.Attendance[i] = rec.Clone()
		}
	}
	if c.Orders != nil {
		out.Orders = make([]models.Order, len(c.Orders))
		for i, o := range c.Orders {
			out.Orders[i] = o.Clone()
		}
	}
	return out
}

// State is the application aggregate: the collections plus the current session.
type State struct {
	ActorID   string
	SessionID string
	Collections
}

// Clone returns a fully detached copy.
func (s *State) Clone() *State {
	if s == nil {
		return &State{}
	}
	return &State{
		ActorID:     s.ActorID,
		SessionID:   s.SessionID,
		Collections: s.Collections.Clone(),
	}
}

// Actor resolves the current actor against the users collection so renames are
// always reflected. Returns nil when nobody is logged in.
func (s *State) Actor() *models.User {
	if s == nil || s.ActorID == "" {
		return nil
	}
	user, ok := s.User(s.ActorID)
	if !ok {
		return nil
	}
	return &user
}

// Clock returns the current time.
type Clock func() time.Time

// SystemClock is the production Clock.
func SystemClock() time.Time {
	return time.Now().UTC()
}

// IDGenerator mints identifiers carrying a readable prefix.
type IDGenerator func(prefix string) string

// UUIDGenerator is the production IDGenerator.
func UUIDGenerator(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}
