package customers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
	"github.com/angelmondragon/factoryops-backend/pkg/validate"
)

var ErrDuplicateCustomer = errors.New("customer already exists")

// Service manages the customer directory.
type Service interface {
	Add(tx *state.State, input CustomerInput) (models.Customer, error)
}

// CustomerInput captures a new customer. Contact fields are free text.
type CustomerInput struct {
	ID            string             `json:"id"`
	Name          string             `json:"name" validate:"required"`
	Type          enums.CustomerType `json:"type" validate:"required"`
	ContactPerson string             `json:"contact_person"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
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

func (s *service) Add(tx *state.State, input CustomerInput) (models.Customer, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	if err := validate.Struct(input); err != nil {
		return models.Customer{}, err
	}
	if !input.Type.IsValid() {
		return models.Customer{}, validate.Field("type", fmt.Sprintf("invalid customer type %q", input.Type))
	}
	if input.ID == "" {
		input.ID = s.ids("c")
	} else if _, exists := tx.Customer(input.ID); exists {
		return models.Customer{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrDuplicateCustomer, fmt.Sprintf("Customer ID %s already exists", input.ID))
	}

	customer := models.Customer{
		ID:            input.ID,
		Name:          input.Name,
		Type:          input.Type,
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
	}
	tx.Customers = append(tx.Customers, customer)
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Customer %q added", customer.Name))
	return customer, nil
}
