package notifications

import (
	"strings"

	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/pagination"
)

// Service defines the append-only notification log. Newest entries come first.
type Service interface {
	Push(tx *state.State, kind enums.NotificationKind, message string) models.Notification
	List(st *state.State, params ListParams) (*ListResult, error)
	Clear(tx *state.State)
}

type service struct {
	clock state.Clock
	ids   state.IDGenerator
}

// ListParams configures pagination for notifications.
type ListParams struct {
	Limit  int
	Cursor string
	Kind   enums.NotificationKind
}

// ListResult wraps returned notifications and the cursor for the next page.
type ListResult struct {
	Items  []models.Notification `json:"items"`
	Cursor string                `json:"cursor"`
}

// NewService wires notifications dependencies.
func NewService(clock state.Clock, ids state.IDGenerator) (Service, error) {
	if clock == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications clock required")
	}
	if ids == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications id generator required")
	}
	return &service{clock: clock, ids: ids}, nil
}

func (s *service) Push(tx *state.State, kind enums.NotificationKind, message string) models.Notification {
	if !kind.IsValid() {
		kind = enums.NotificationKindInfo
	}
	n := models.Notification{
		ID:        s.ids("n"),
		Message:   strings.TrimSpace(message),
		Kind:      kind,
		Timestamp: s.clock(),
	}
	tx.Notifications = append([]models.Notification{n}, tx.Notifications...)
	return n
}

func (s *service) List(st *state.State, params ListParams) (*ListResult, error) {
	if params.Kind != "" && !params.Kind.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid notification kind")
	}

	rows := st.Notifications
	if params.Kind != "" {
		rows = make([]models.Notification, 0, len(st.Notifications))
		for _, n := range st.Notifications {
			if n.Kind == params.Kind {
				rows = append(rows, n)
			}
		}
	}

	page, next, err := pagination.Page(rows, pagination.Params{Limit: params.Limit, Cursor: params.Cursor}, cursorOf)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	if page == nil {
		page = []models.Notification{}
	}
	cursor := ""
	if next != nil {
		cursor = pagination.EncodeCursor(*next)
	}
	return &ListResult{Items: page, Cursor: cursor}, nil
}

func (s *service) Clear(tx *state.State) {
	tx.Notifications = nil
}

func cursorOf(n models.Notification) pagination.Cursor {
	return pagination.Cursor{CreatedAt: n.Timestamp, ID: n.ID}
}
