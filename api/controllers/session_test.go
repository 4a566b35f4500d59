package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/angelmondragon/factoryops-backend/internal/app"
	"github.com/angelmondragon/factoryops-backend/pkg/auth"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/factoryops-backend/pkg/errors"
	"github.com/angelmondragon/factoryops-backend/pkg/models"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "factoryops", ExpirationMinutes: 60}
}

func fixedClock() time.Time {
	return time.Now().UTC()
}

func TestSessionLoginMintsBoundToken(t *testing.T) {
	svc := &fakeApp{
		loginFn: func(ctx context.Context, role enums.Role) (app.Session, error) {
			if role != enums.RoleWarehouseAdmin {
				t.Fatalf("unexpected role %s", role)
			}
			return app.Session{
				User: models.User{
					ID:                  "u2",
					FullName:            "Jane Smith",
					Role:                enums.RoleWarehouseAdmin,
					AssignedWarehouseID: "w1",
				},
				SessionID: "sess-9",
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"role":"warehouse_admin"}`))
	resp := httptest.NewRecorder()
	SessionLogin(svc, testJWTConfig(), fixedClock, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data loginResponse `json:"data"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.User.ID != "u2" {
		t.Fatalf("unexpected user %q", envelope.Data.User.ID)
	}

	claims, err := auth.ParseSessionToken(testJWTConfig(), envelope.Data.AccessToken)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SessionID() != "sess-9" {
		t.Fatalf("expected session sess-9 got %q", claims.SessionID())
	}
	if claims.WarehouseID != "w1" || claims.UserID != "u2" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestSessionLoginRequiresRole(t *testing.T) {
	called := false
	svc := &fakeApp{
		loginFn: func(ctx context.Context, role enums.Role) (app.Session, error) {
			called = true
			return app.Session{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	SessionLogin(svc, testJWTConfig(), fixedClock, testLogger())(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
	if called {
		t.Fatal("service should not be called")
	}
}

func TestSessionLoginPropagatesServiceError(t *testing.T) {
	svc := &fakeApp{
		loginFn: func(ctx context.Context, role enums.Role) (app.Session, error) {
			return app.Session{}, pkgerrors.New(pkgerrors.CodeNotFound, "No user found for role worker")
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/login", strings.NewReader(`{"role":"worker"}`))
	resp := httptest.NewRecorder()
	SessionLogin(svc, testJWTConfig(), fixedClock, testLogger())(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}

func TestSessionLogout(t *testing.T) {
	called := false
	svc := &fakeApp{logoutFn: func(ctx context.Context) error {
		called = true
		return nil
	}}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/session/logout", nil)
	resp := httptest.NewRecorder()
	SessionLogout(svc, testLogger())(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", resp.Code)
	}
	if !called {
		t.Fatal("expected logout called")
	}
}

func TestMeUnauthorized(t *testing.T) {
	svc := &fakeApp{meFn: func(ctx context.Context) (models.User, error) {
		return models.User{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "Please log in to continue")
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	resp := httptest.NewRecorder()
	Me(svc, testLogger())(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
