package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/notifications"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type notificationReader interface {
	Notifications(ctx context.Context, params notifications.ListParams) (*notifications.ListResult, error)
}

// ListNotifications returns the newest notifications first, paged by cursor.
func ListNotifications(svc notificationReader, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", defaultNotificationLimit, 1, maxNotificationLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		kind, _, err := validators.ParseQueryEnum(r, "kind", enums.ParseNotificationKind)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		params := notifications.ListParams{
			Limit:  limit,
			Cursor: validators.QueryString(r, "cursor"),
			Kind:   kind,
		}

		resp, err := svc.Notifications(r.Context(), params)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, resp)
	}
}
