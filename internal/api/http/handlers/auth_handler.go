package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/shop-service/internal/api/dto"
	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/service"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// AuthHandler exposes registration, login, logout and profile endpoints.
type AuthHandler struct {
	auth    *service.AuthService
	cookies auth.CookieSettings
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, cookies auth.CookieSettings) *AuthHandler {
	return &AuthHandler{auth: authService, cookies: cookies}
}

// Register handles POST /api/register. A successful registration sets the
// session cookie, so the client is immediately authenticated.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	_, token, exp, err := h.auth.Register(c.UserContext(), req.Email, req.Phone, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, exp, h.cookies)
	return c.JSON(fiber.Map{"ok": true})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	_, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, token, exp, h.cookies)
	return c.JSON(fiber.Map{"ok": true})
}

// Logout handles POST /api/auth/logout. Only the cookie is cleared; an
// exfiltrated token stays valid until it expires.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, h.cookies)
	return c.JSON(fiber.Map{"ok": true})
}

// Me handles GET /api/me. The email comes from the store, not the token, so
// it is authoritative even if the token's embedded email went stale.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("no principal")
	}

	profile, err := h.auth.Profile(c.UserContext(), principal.UserID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true, "email": profile.Email})
}

// RequestPasswordReset handles POST /api/auth/password/reset/request. The
// reset token is delivered out-of-band by the notification stub; the
// response never discloses it, nor whether the account exists.
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := h.auth.RequestPasswordReset(c.UserContext(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ConfirmPasswordReset handles POST /api/auth/password/reset/confirm.
func (h *AuthHandler) ConfirmPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirm
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload")
	}
	if err := req.Validate(); err != nil {
		return err
	}

	if err := h.auth.ConfirmPasswordReset(c.UserContext(), req.Token, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ok": true})
}
