package warehouses

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

var (
	ErrWarehouseNotFound  = errors.New("warehouse not found")
	ErrWarehouseDisabled  = errors.New("warehouse disabled")
	ErrDuplicateWarehouse = errors.New("warehouse already exists")
)

// Service exposes warehouse master data operations.
type Service interface {
	Add(tx *state.State, input CreateWarehouseInput) (models.Warehouse, error)
	Update(tx *state.State, id string, input UpdateWarehouseInput) (models.Warehouse, error)
}

// CreateWarehouseInput captures a new warehouse. Status defaults to active.
type CreateWarehouseInput struct {
	ID          string                `json:"id"`
	Name        string                `json:"name" validate:"required"`
	Location    string                `json:"location"`
	Status      enums.WarehouseStatus `json:"status"`
	WorkerCount int                   `json:"worker_count" validate:"gte=0"`
}

// UpdateWarehouseInput captures the allowed warehouse fields for mutation.
type UpdateWarehouseInput struct {
	Name        *string                `json:"name"`
	Location    *string                `json:"location"`
	Status      *enums.WarehouseStatus `json:"status"`
	WorkerCount *int                   `json:"worker_count"`
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

func (s *service) Add(tx *state.State, input CreateWarehouseInput) (models.Warehouse, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = strings.TrimSpace(input.Name)
	input.Location = strings.TrimSpace(input.Location)
	if err := validate.Struct(input); err != nil {
		return models.Warehouse{}, err
	}
	if input.Status == "" {
		input.Status = enums.WarehouseStatusActive
	}
	if !input.Status.IsValid() {
		return models.Warehouse{}, validate.Field("status", fmt.Sprintf("invalid warehouse status %q", input.Status))
	}
	if input.ID == "" {
		input.ID = s.ids("w")
	} else if tx.WarehouseIndex(input.ID) >= 0 {
		return models.Warehouse{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrDuplicateWarehouse, fmt.Sprintf("Warehouse ID %s already exists", input.ID))
	}

	warehouse := models.Warehouse{
		ID:          input.ID,
		Name:        input.Name,
		Location:    input.Location,
		Status:      input.Status,
		WorkerCount: input.WorkerCount,
	}
	tx.Warehouses = append(tx.Warehouses, warehouse)
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Warehouse %q created", warehouse.Name))
	return warehouse, nil
}

func (s *service) Update(tx *state.State, id string, input UpdateWarehouseInput) (models.Warehouse, error) {
	id = strings.TrimSpace(id)
	idx := tx.WarehouseIndex(id)
	if idx < 0 {
		return models.Warehouse{}, notFound(id)
	}
	warehouse := tx.Warehouses[idx]

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return models.Warehouse{}, validate.Field("name", "is required")
		}
		warehouse.Name = name
	}
	if input.Location != nil {
		warehouse.Location = strings.TrimSpace(*input.Location)
	}
	if input.Status != nil {
		if !input.Status.IsValid() {
			return models.Warehouse{}, validate.Field("status", fmt.Sprintf("invalid warehouse status %q", *input.Status))
		}
		warehouse.Status = *input.Status
	}
	if input.WorkerCount != nil {
		if *input.WorkerCount < 0 {
			return models.Warehouse{}, validate.Field("worker_count", "must be greater than or equal to 0")
		}
		warehouse.WorkerCount = *input.WorkerCount
	}

	tx.Warehouses[idx] = warehouse
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Warehouse %q updated", warehouse.Name))
	return warehouse, nil
}

// RequireActive resolves the warehouse and rejects disabled ones.
func RequireActive(st *state.State, id string) (models.Warehouse, error) {
	warehouse, ok := st.Warehouse(id)
	if !ok {
		return models.Warehouse{}, notFound(id)
	}
	if !warehouse.IsActive() {
		return models.Warehouse{}, pkgerrors.Wrap(pkgerrors.CodeStateConflict, ErrWarehouseDisabled, fmt.Sprintf("Warehouse %q is disabled", warehouse.Name)).
			WithDetails(map[string]any{"warehouse_id": warehouse.ID})
	}
	return warehouse, nil
}

func notFound(id string) error {
	return pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrWarehouseNotFound, fmt.Sprintf("Warehouse %s not found", id))
}
