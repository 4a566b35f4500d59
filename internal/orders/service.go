package orders

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/angelmondragon/factoryops-backend/internal/inventory"
	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrAlreadyCompleted   = errors.New("order already completed")
	ErrOrderCancelled     = errors.New("order cancelled")
	ErrFulfillmentBlocked = errors.New("fulfillment blocked")
)

// Service fulfills customer orders against warehouse stock.
type Service interface {
	Fulfill(tx *state.State, orderID string) (models.Order, error)
}

type service struct {
	notes notifications.Service
	clock state.Clock
}

// NewService wires the fulfillment engine.
func NewService(notes notifications.Service, clock state.Clock) (Service, error) {
	if notes == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if clock == nil {
		return nil, fmt.Errorf("clock required")
	}
	return &service{notes: notes, clock: clock}, nil
}

// Fulfill checks every line against the order's warehouse before touching stock, then
// deducts each line and completes the order. Lines are deducted by item id alone, taking
// the first match in collection order, even when that item sits in another warehouse.
func (s *service) Fulfill(tx *state.State, orderID string) (models.Order, error) {
	orderID = strings.TrimSpace(orderID)
	idx := tx.OrderIndex(orderID)
	if idx < 0 {
		return models.Order{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, ErrOrderNotFound, fmt.Sprintf("Order #%s not found", orderID))
	}
	order := tx.Orders[idx].Clone()

	switch order.Status {
	case enums.OrderStatusCompleted:
		return models.Order{}, pkgerrors.Wrap(pkgerrors.CodeConflict, ErrAlreadyCompleted, "Order is already completed")
	case enums.OrderStatusCancelled:
		return models.Order{}, pkgerrors.Wrap(pkgerrors.CodeStateConflict, ErrOrderCancelled, "Order is cancelled and cannot be fulfilled")
	}

	now := s.clock()
	if blocked := precheck(tx.Inventory, order, s.clock); blocked != nil {
		return models.Order{}, blocked
	}

	items := tx.Inventory
	for _, line := range order.Items {
		next, _, err := inventory.Deduct(items, line.InventoryItemID, "", line.Quantity, now)
		if err != nil {
			// Repeated lines or an id held by another warehouse can still fall short here.
			return models.Order{}, blocked(order.ID, err)
		}
		items = next
	}

	order.Status = enums.OrderStatusCompleted
	tx.Inventory = items
	tx.Orders[idx] = order
	s.notes.Push(tx, enums.NotificationKindSuccess, fmt.Sprintf("Order #%s fulfilled. Stock deducted.", order.ID))
	return order.Clone(), nil
}

// precheck collects every failing line so the caller sees all reasons at once.
func precheck(items []models.InventoryItem, order models.Order, clock state.Clock) error {
	var lineErrs error
	for _, line := range order.Items {
		if _, _, err := inventory.Deduct(items, line.InventoryItemID, order.WarehouseID, line.Quantity, clock()); err != nil {
			lineErrs = multierr.Append(lineErrs, err)
		}
	}
	if lineErrs == nil {
		return nil
	}
	return blocked(order.ID, lineErrs)
}

// blocked turns the line failures of an order into one INSUFFICIENT_RESOURCE error
// wrapping ErrFulfillmentBlocked and every line cause.
func blocked(orderID string, lineErrs error) error {
	failures := multierr.Errors(lineErrs)
	reasons := make([]string, 0, len(failures))
	for _, err := range failures {
		reasons = append(reasons, reason(err))
	}
	return pkgerrors.Wrap(pkgerrors.CodeInsufficient, multierr.Append(ErrFulfillmentBlocked, lineErrs), "Cannot fulfill: "+strings.Join(reasons, ", ")).
		WithDetails(map[string]any{"order_id": orderID, "reasons": reasons})
}

func reason(err error) string {
	if typed := pkgerrors.As(err); typed != nil {
		return typed.Message()
	}
	return err.Error()
}
