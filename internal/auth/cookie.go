package auth

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookieName is the fixed cookie carrying the session token.
const SessionCookieName = "token"

// CookieSettings captures the deployment-dependent cookie flags. Cross-origin
// deployments need SameSite=None with Secure set.
type CookieSettings struct {
	Secure   bool
	SameSite string
}

// SetSessionCookie attaches the session token to the response.
func SetSessionCookie(c *fiber.Ctx, token string, expiresAt time.Time, settings CookieSettings) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   settings.Secure,
		SameSite: settings.SameSite,
		Path:     "/",
	})
}

// ClearSessionCookie expires the session cookie on the client. The token
// itself stays valid until expiry; revocation is client-side only.
func ClearSessionCookie(c *fiber.Ctx, settings CookieSettings) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   settings.Secure,
		SameSite: settings.SameSite,
		Path:     "/",
	})
}
