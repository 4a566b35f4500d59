package inventory

import (
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

// Service records stock lines against the transaction state.
type Service interface {
	Add(tx *state.State, input ItemInput) (models.InventoryItem, error)
	Update(tx *state.State, input ItemInput) (models.InventoryItem, error)
}

type service struct {
	notes notifications.Service
	clock state.Clock
	ids   state.IDGenerator
}

// ItemInput is the payload for adding or replacing an inventory item.
type ItemInput struct {
	ID          string              `json:"id"`
	WarehouseID string              `json:"warehouse_id" validate:"required"`
	ItemName    string              `json:"item_name" validate:"required"`
	Quantity    int                 `json:"quantity" validate:"gte=0"`
	Unit        string              `json:"unit" validate:"required"`
	Type        enums.InventoryType `json:"type" validate:"required"`
}

// NewService wires the inventory service.
func NewService(notes notifications.Service, clock state.Clock, ids state.IDGenerator) (Service, error) {
	if notes == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	if ids == nil {
		return nil, fmt.Errorf("id generator required")
	}
	return &service{notes: notes, clock: clock, ids: ids}, nil
}

func (s *service) Add(tx *state.State, input ItemInput) (models.InventoryItem, error) {
	item, err := s.toItem(input)
	if err != nil {
		return models.InventoryItem{}, err
	}
	if item.ID == "" {
		item.ID = s.ids("i")
	}

	items, err := AddItem(tx.Inventory, item)
	if err != nil {
		return models.InventoryItem{}, err
	}
	tx.Inventory = items
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Item %q added to inventory", item.ItemName))
	return item, nil
}

func (s *service) Update(tx *state.State, input ItemInput) (models.InventoryItem, error) {
	if strings.TrimSpace(input.ID) == "" {
		return models.InventoryItem{}, validate.Field("id", "is required")
	}
	item, err := s.toItem(input)
	if err != nil {
		return models.InventoryItem{}, err
	}

	items, err := UpdateItem(tx.Inventory, item)
	if err != nil {
		return models.InventoryItem{}, err
	}
	tx.Inventory = items
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Item %q updated", item.ItemName))
	return item, nil
}

func (s *service) toItem(input ItemInput) (models.InventoryItem, error) {
	input.ID = strings.TrimSpace(input.ID)
	input.WarehouseID = strings.TrimSpace(input.WarehouseID)
	input.ItemName = strings.TrimSpace(input.ItemName)
	input.Unit = strings.TrimSpace(input.Unit)
	if err := validate.Struct(input); err != nil {
		return models.InventoryItem{}, err
	}
	if !input.Type.IsValid() {
		return models.InventoryItem{}, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("invalid inventory type %q", input.Type))
	}
	return models.InventoryItem{
		ID:          input.ID,
		WarehouseID: input.WarehouseID,
		ItemName:    input.ItemName,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Type:        input.Type,
		LastUpdated: types.NewDate(s.clock()),
	}, nil
}
