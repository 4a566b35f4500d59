package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelmondragon/factoryops-backend/pkg/auth"
	"github.com/angelmondragon/factoryops-backend/pkg/config"
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
)

func testJWT() config.JWTConfig {
	return config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}
}

type stubSessions string

func (s stubSessions) SessionID() string { return string(s) }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(testJWT(), stubSessions("sess-1"), nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(testJWT(), stubSessions("sess-1"), nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsReplacedSession(t *testing.T) {
	cfg := testJWT()
	token := mintTestToken(t, cfg, enums.RoleOwner, "", "sess-1")

	for _, current := range []string{"", "sess-2"} {
		handler := Auth(cfg, stubSessions(current), nil)(okHandler())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := httptest.NewRecorder()
		handler.ServeHTTP(resp, req)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("session %q: expected 401 got %d", current, resp.Code)
		}
	}
}

func TestAuthAllowsValidToken(t *testing.T) {
	cfg := testJWT()
	token := mintTestToken(t, cfg, enums.RoleWarehouseAdmin, "w1", "sess-1")

	var captured struct {
		user      string
		role      string
		warehouse string
		session   string
	}
	handler := Auth(cfg, stubSessions("sess-1"), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.user = UserIDFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		captured.warehouse = WarehouseIDFromContext(r.Context())
		captured.session = SessionIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.user != "u2" {
		t.Fatalf("expected user u2 got %q", captured.user)
	}
	if captured.role != string(enums.RoleWarehouseAdmin) {
		t.Fatalf("expected role admin got %s", captured.role)
	}
	if captured.warehouse != "w1" {
		t.Fatalf("expected warehouse w1 got %s", captured.warehouse)
	}
	if captured.session != "sess-1" {
		t.Fatalf("expected session sess-1 got %s", captured.session)
	}
}

func TestAuthAllowsTokenWithoutWarehouse(t *testing.T) {
	cfg := testJWT()
	token := mintTestToken(t, cfg, enums.RoleOwner, "", "sess-1")

	var warehouse string
	handler := Auth(cfg, stubSessions("sess-1"), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		warehouse = WarehouseIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if warehouse != "" {
		t.Fatalf("expected empty warehouse got %s", warehouse)
	}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, role enums.Role, warehouseID, sessionID string) string {
	t.Helper()
	userID := "u1"
	if role == enums.RoleWarehouseAdmin {
		userID = "u2"
	}
	token, err := auth.MintSessionToken(cfg, time.Now(), auth.SessionTokenPayload{
		UserID:      userID,
		Role:        role,
		WarehouseID: warehouseID,
		SessionID:   sessionID,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}
