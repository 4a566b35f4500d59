package controllers

import (
	"context"
	"net/http"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/api/validators"
	"github.com/angelmondragon/factoryops-backend/internal/app"
	"github.com/angelmondragon/factoryops-backend/internal/state"
	pkgAuth "github.com/angelmondragon/factoryops-backend/pkg/auth"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

type sessionService interface {
	Login(ctx context.Context, role enums.Role) (app.Session, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (models.User, error)
}

type loginRequest struct {
	Role enums.Role `json:"role" validate:"required"`
}

type loginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// SessionLogin opens a session as the first user holding the requested role and
// returns a bearer token bound to it.
func SessionLogin(svc sessionService, cfg config.JWTConfig, clock state.Clock, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, errors.New(errors.CodeInternal, "session service unavailable"))
			return
		}
		if clock == nil {
			clock = state.SystemClock
		}

		var body loginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		sess, err := svc.Login(r.Context(), body.Role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		token, err := pkgAuth.MintSessionToken(cfg, clock(), pkgAuth.SessionTokenPayload{
			UserID:      sess.User.ID,
			Role:        sess.User.Role,
			WarehouseID: sess.User.AssignedWarehouseID,
			SessionID:   sess.SessionID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, errors.Wrap(errors.CodeInternal, err, "mint session token"))
			return
		}

		responses.WriteSuccess(w, loginResponse{AccessToken: token, User: sess.User})
	}
}

// SessionLogout closes the current session; its token stops working immediately.
func SessionLogout(svc sessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, errors.New(errors.CodeInternal, "session service unavailable"))
			return
		}
		if err := svc.Logout(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "logged_out"})
	}
}

func Me(svc sessionService, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, errors.New(errors.CodeInternal, "session service unavailable"))
			return
		}
		user, err := svc.Me(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, user)
	}
}
