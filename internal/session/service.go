package session

import (
	"errors"
	"fmt"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

var ErrNoUserForRole = errors.New("no user with role")

// Service simulates login by role selection. There is no credential check.
type Service interface {
	Login(tx *state.State, role enums.Role) (models.User, error)
	Logout(tx *state.State)
}

type service struct {
	notes notifications.Service
	ids   state.IDGenerator
}

func NewService(notes notifications.Service, ids state.IDGenerator) (Service, error) {
	if notes == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator required")
	}
	return &service{notes: notes, ids: ids}, nil
}

// Login makes the first user holding role the current actor and rotates the
// session id, which invalidates tokens minted for any earlier session.
func (s *service) Login(tx *state.State, role enums.Role) (models.User, error) {
	if !role.IsValid() {
		return models.User{}, validate.Field("role", fmt.Sprintf("invalid role %q", role))
	}
	for _, user := range tx.Users {
		if user.Role != role {
			continue
		}
		tx.ActorID = user.ID
		tx.SessionID = s.ids("sess")
		s.notes.Push(tx, enums.NotificationKindInfo, fmt.Sprintf("Welcome back, %s", user.FullName))
		return user, nil
	}
	return models.User{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrNoUserForRole, fmt.Sprintf("No user with role %s", role))
}

func (s *service) Logout(tx *state.State) {
	tx.ActorID = ""
	tx.SessionID = ""
	s.notes.Clear(tx)
}
