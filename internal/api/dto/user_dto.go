package dto

import (
	"strings"

	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

// RegisterRequest payload for new customers.
type RegisterRequest struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Validate rejects malformed registration payloads at the boundary.
func (r *RegisterRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return apperrors.NewValidationError("valid email required")
	}
	if r.Password == "" {
		return apperrors.NewValidationError("password required")
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate rejects malformed login payloads at the boundary.
func (r *LoginRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || r.Password == "" {
		return apperrors.NewValidationError("email and password required")
	}
	return nil
}

// PasswordResetRequest asks for a reset token by account email.
type PasswordResetRequest struct {
	Email string `json:"email"`
}

// Validate rejects malformed reset requests.
func (r *PasswordResetRequest) Validate() error {
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return apperrors.NewValidationError("email required")
	}
	return nil
}

// PasswordResetConfirm redeems a reset token.
type PasswordResetConfirm struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// Validate rejects malformed reset confirmations.
func (r *PasswordResetConfirm) Validate() error {
	if strings.TrimSpace(r.Token) == "" || r.Password == "" {
		return apperrors.NewValidationError("token and password required")
	}
	return nil
}
