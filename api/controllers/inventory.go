package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/inventory"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

type inventoryService interface {
	AddInventoryItem(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error)
	UpdateInventoryItem(ctx context.Context, input inventory.ItemInput) (models.InventoryItem, error)
}

func ListInventory(svc snapshotReader, logg *logger.Logger) http.HandlerFunc {
	return listFrom(svc, logg, func(c state.Collections) []models.InventoryItem { return c.Inventory })
}

func CreateInventoryItem(svc inventoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}
		var body inventory.ItemInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		item, err := svc.AddInventoryItem(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

// UpdateInventoryItem replaces the item named in the path; the body id, if any, is ignored.
func UpdateInventoryItem(svc inventoryService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "inventory service unavailable"))
			return
		}
		id, err := validators.PathID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		var body inventory.ItemInput
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		body.ID = id
		item, err := svc.UpdateInventoryItem(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}
