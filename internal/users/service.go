package users

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
	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrDuplicateUser    = errors.New("user already exists")
	ErrOwnerProtected   = errors.New("owner cannot be deleted")
	ErrOwnerRoleLocked  = errors.New("owner role cannot be changed")
	ErrUnknownWarehouse = errors.New("assigned warehouse not found")
)

// Service manages operator accounts.
type Service interface {
	Add(tx *state.State, input CreateUserInput) (models.User, error)
	Update(tx *state.State, id string, input UpdateUserInput) (models.User, error)
	Delete(tx *state.State, id string) error
}

// CreateUserInput holds the data required to add a user.
type CreateUserInput struct {
	ID                  string           `json:"id"`
	YNumber             string           `json:"y_number"`
	FullName            string           `json:"full_name" validate:"required"`
	Email               string           `json:"email" validate:"omitempty,email"`
	Role                enums.Role       `json:"role" validate:"required"`
	AssignedWarehouseID string           `json:"assigned_warehouse_id"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate"`
}

// UpdateUserInput captures the allowed user fields for mutation.
type UpdateUserInput struct {
	YNumber             *string          `json:"y_number"`
	FullName            *string          `json:"full_name"`
	Email               *string          `json:"email"`
	Role                *enums.Role      `json:"role"`
	AssignedWarehouseID *string          `json:"assigned_warehouse_id"`
	HourlyRate          *decimal.Decimal `json:"hourly_rate"`
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

func (s *service) Add(tx *state.State, input CreateUserInput) (models.User, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.AssignedWarehouseID = strings.TrimSpace(input.AssignedWarehouseID)
	if err := validate.Struct(input); err != nil {
		return models.User{}, err
	}
	if err := checkRole(input.Role); err != nil {
		return models.User{}, err
	}
	if err := checkWarehouse(tx, input.AssignedWarehouseID); err != nil {
		return models.User{}, err
	}
	if err := checkRate(input.HourlyRate); err != nil {
		return models.User{}, err
	}
	if input.ID == "" {
		input.ID = s.ids("u")
	} else if tx.UserIndex(input.ID) >= 0 {
		return models.User{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrDuplicateUser, fmt.Sprintf("User ID %s already exists", input.ID))
	}

	user := models.User{
		ID:                  input.ID,
		YNumber:             strings.TrimSpace(input.YNumber),
		FullName:            input.FullName,
		Email:               input.Email,
		Role:                input.Role,
		AssignedWarehouseID: input.AssignedWarehouseID,
	}
	if input.HourlyRate != nil {
		user.HourlyRate = decimal.NewNullDecimal(*input.HourlyRate)
	}
	tx.Users = append(tx.Users, user)
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("User %q added", user.FullName))
	return user, nil
}

func (s *service) Update(tx *state.State, id string, input UpdateUserInput) (models.User, error) {
	id = strings.TrimSpace(id)
	idx := tx.UserIndex(id)
	if idx < 0 {
		return models.User{}, notFound(id)
	}
	user := tx.Users[idx]

	if input.Role != nil && *input.Role != user.Role {
		if user.IsOwner() {
			return models.User{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrOwnerRoleLocked, "Owner role cannot be changed")
		}
		if err := checkRole(*input.Role); err != nil {
			return models.User{}, err
		}
		user.Role = *input.Role
	}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		if name == "" {
			return models.User{}, validate.Field("full_name", "is required")
		}
		user.FullName = name
	}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		if email != "" {
			if err := validate.Var("email", email, "email"); err != nil {
				return models.User{}, err
			}
		}
		user.Email = email
	}
	if input.YNumber != nil {
		user.YNumber = strings.TrimSpace(*input.YNumber)
	}
	if input.AssignedWarehouseID != nil {
		warehouseID := strings.TrimSpace(*input.AssignedWarehouseID)
		if err := checkWarehouse(tx, warehouseID); err != nil {
			return models.User{}, err
		}
		user.AssignedWarehouseID = warehouseID
	}
	if input.HourlyRate != nil {
		if err := checkRate(input.HourlyRate); err != nil {
			return models.User{}, err
		}
		user.HourlyRate = decimal.NewNullDecimal(*input.HourlyRate)
	}

	tx.Users[idx] = user
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("User %q updated", user.FullName))
	return user, nil
}

func (s *service) Delete(tx *state.State, id string) error {
	id = strings.TrimSpace(id)
	idx := tx.UserIndex(id)
	if idx < 0 {
		return notFound(id)
	}
	if tx.Users[idx].IsOwner() {
		return pkgerrors.Wrap(pkgerrors.CodeConflict, ErrOwnerProtected, "Owner cannot be deleted")
	}

	tx.Users = append(tx.Users[:idx:idx], tx.Users[idx+1:]...)
	s.notes.Push(tx, enums.NotificationKindInfo, "User deleted")
	return nil
}

func checkRole(role enums.Role) error {
	if !role.IsValid() {
		return validate.Field("role", fmt.Sprintf("invalid role %q", role))
	}
	return nil
}

func checkWarehouse(tx *state.State, warehouseID string) error {
	if warehouseID == "" {
		return nil
	}
	if tx.WarehouseIndex(warehouseID) < 0 {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, ErrUnknownWarehouse, fmt.Sprintf("Warehouse %s not found", warehouseID)).
			WithDetails(map[string]string{"assigned_warehouse_id": "unknown warehouse"})
	}
	return nil
}

func checkRate(rate *decimal.Decimal) error {
	if rate != nil && rate.IsNegative() {
		return validate.Field("hourly_rate", "must be greater than or equal to 0")
	}
	return nil
}

func notFound(id string) error {
	return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrUserNotFound, fmt.Sprintf("User %s not found", id))
}
