package auth

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller as asserted by the session
// token. It is trusted for the remainder of the request; the gate does not
// re-fetch the user from the store, so handlers needing authoritative user
// data must load it themselves.
type Principal struct {
	UserID string
	Email  string
}

// Middleware validates the session cookie and attaches the principal.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs the authorization gate.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes. Missing, malformed
// and expired tokens are all rejected identically.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	token := c.Cookies(SessionCookieName)
	if token == "" {
		return apperrors.NewUnauthorized("missing session cookie")
	}

	claims, err := m.tokens.Parse(token)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{UserID: claims.UserID, Email: claims.Email})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated identity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
