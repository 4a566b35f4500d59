package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	pkgAuth "github.com/angelmondragon/factoryops-backend/pkg/auth"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
)

// SessionChecker reports the id of the session currently open on the server.
type SessionChecker interface {
	SessionID() string
}

// Auth validates a bearer token, checks it belongs to the open session and
// seeds the request context with the claims.
func Auth(cfg config.JWTConfig, sessions SessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgAuth.ParseSessionToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			sessionID := claims.SessionID()
			if sessionID == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing session id"))
				return
			}
			if sessions != nil && sessions.SessionID() != sessionID {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "session expired, please log in again"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxUserID, claims.UserID)
			ctx = context.WithValue(ctx, ctxRole, string(claims.Role))
			ctx = context.WithValue(ctx, ctxSessionID, sessionID)
			if claims.WarehouseID != "" {
				ctx = context.WithValue(ctx, ctxWarehouseID, claims.WarehouseID)
			}

			ctx = logg.WithUserID(ctx, claims.UserID)
			ctx = logg.WithActorRole(ctx, string(claims.Role))
			ctx = logg.WithSessionID(ctx, sessionID)
			if claims.WarehouseID != "" {
				ctx = logg.WithWarehouseID(ctx, claims.WarehouseID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
