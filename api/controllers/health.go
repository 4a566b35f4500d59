package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/angelmondragon/factoryops-backend/api/responses"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/logger"
	"github.com/angelmondragon/factoryops-backend/pkg/redis"
)

const (
	envHeader    = "X-FactoryOps-Env"
	readyTimeout = 2 * time.Second
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings Redis when the idempotency cache is configured.
func HealthReady(cfg *config.Config, cache redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		checks := map[string]string{"state": "ok", "redis": "disabled"}
		if cache != nil {
			ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
			defer cancel()
			if err := cache.Ping(ctx); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "redis unavailable"))
				return
			}
			checks["redis"] = "ok"
		}

		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
