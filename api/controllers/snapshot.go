package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
)

// snapshotReader returns the collections visible to the current actor.
type snapshotReader interface {
	Snapshot(ctx context.Context) (state.Collections, error)
}

// listFrom serves one collection of the actor's scoped snapshot.
func listFrom[T any](svc snapshotReader, logg *logger.Logger, pick func(state.Collections) []T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "state unavailable"))
			return
		}
		snapshot, err := svc.Snapshot(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		items := pick(snapshot)
		if items == nil {
			items = []T{}
		}
		responses.WriteSuccess(w, items)
	}
}
