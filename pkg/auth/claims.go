package auth

import (
	"github.com/angelmondragon/factoryops-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenPayload captures the data available when minting a session JWT.
type SessionTokenPayload struct {
	UserID      string
	Role        enums.Role
	WarehouseID string
	SessionID   string
}

// SessionClaims is the typed JWT issued on login. The registered jti carries the
// session id so a token stops working once that session is replaced or cleared.
type SessionClaims struct {
	UserID      string     `json:"user_id"`
	Role        enums.Role `json:"role"`
	WarehouseID string     `json:"warehouse_id,omitempty"`
	jwt.RegisteredClaims
}

// SessionID returns the jti claim.
func (c *SessionClaims) SessionID() string {
	if c == nil {
		return ""
	}
	return c.ID
}
