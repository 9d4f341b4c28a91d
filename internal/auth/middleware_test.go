package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func newGateApp(tm *TokenManager) (*fiber.App, *Principal) {
	var seen Principal
	app := fiber.New()
	m := NewMiddleware(tm)
	app.Get("/protected", m.Handle, func(c *fiber.Ctx) error {
		p, ok := PrincipalFromContext(c)
		if ok {
			seen = *p
		}
		return c.SendStatus(http.StatusOK)
	})
	return app, &seen
}

func TestMiddlewareAttachesPrincipal(t *testing.T) {
	t.Parallel()

	tm := NewTokenManager("secret", time.Hour)
	token, _, err := tm.Issue("user-7", "bob@example.com")
	require.NoError(t, err)

	app, seen := newGateApp(tm)
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "user-7", seen.UserID)
	require.Equal(t, "bob@example.com", seen.Email)
}

func TestMiddlewareRejectsMissingCookie(t *testing.T) {
	t.Parallel()

	app, seen := newGateApp(NewTokenManager("secret", time.Hour))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
	require.NoError(t, err)
	require.NotEqual(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, seen.UserID)
}

func TestMiddlewareRejectsForeignToken(t *testing.T) {
	t.Parallel()

	foreign, _, err := NewTokenManager("other-secret", time.Hour).Issue("user-7", "")
	require.NoError(t, err)

	app, seen := newGateApp(NewTokenManager("secret", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: foreign})

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.NotEqual(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, seen.UserID)
}
