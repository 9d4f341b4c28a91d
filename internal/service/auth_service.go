package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"

	"github.com/spec-kit/shop-service/internal/auth"
	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/domain"
	"github.com/spec-kit/shop-service/internal/events"
	"github.com/spec-kit/shop-service/internal/repository"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

const profileCachePrefix = "profile:"

// AuthService coordinates registration, login and profile flows.
type AuthService struct {
	users      repository.UserRepository
	resets     repository.PasswordResetRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	cache      *redis.Client
	bcryptCost int
	resetTTL   time.Duration
	cacheTTL   time.Duration
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	PasswordResetRepo repository.PasswordResetRepository
	Dispatcher        events.Dispatcher
	Cache             *redis.Client
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		resets:     deps.PasswordResetRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.SessionTokenTTL()),
		dispatcher: deps.Dispatcher,
		cache:      deps.Cache,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   cfg.Auth.PasswordResetTTL(),
		cacheTTL:   cfg.Auth.ProfileCacheTTL(),
	}
}

// Register creates a new customer account and issues a session token, so a
// successful registration is also a login. Email uniqueness is enforced by
// the store; the pre-check only produces a friendlier failure.
func (s *AuthService) Register(ctx context.Context, email, phone, password string) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewConflict("email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", time.Time{}, apperrors.NewConflict("email already registered")
		}
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	s.publish(ctx, events.Event{
		Type:    events.EventUserRegistered,
		UserID:  user.ID,
		Payload: events.UserRegisteredPayload{Email: user.Email},
	})
	return user, token, exp, nil
}

// Login authenticates a customer. Unknown emails and wrong passwords fail
// identically so the caller cannot tell which field was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.Issue(user.ID, user.Email)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// Profile returns the authoritative password-free record for a user. The
// session token only asserts identity; attributes like email are fetched
// fresh here, through a short-lived Redis cache when one is configured.
func (s *AuthService) Profile(ctx context.Context, userID string) (*domain.Profile, error) {
	if cached := s.cachedProfile(ctx, userID); cached != nil {
		return cached, nil
	}

	profile, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("user no longer exists")
		}
		return nil, err
	}

	s.storeProfile(ctx, profile)
	return profile, nil
}

// RequestPasswordReset creates a single-use reset token for the account and
// hands it to the notification path for out-of-band delivery. The caller
// learns nothing: unknown emails succeed identically so accounts cannot be
// enumerated, and the token itself is never returned.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	token := &repository.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.resetTTL),
	}
	if err := s.resets.Create(ctx, token); err != nil {
		return err
	}

	s.publish(ctx, events.Event{
		Type:   events.EventPasswordResetRequested,
		UserID: user.ID,
		Payload: events.PasswordResetRequestedPayload{
			Email:     user.Email,
			Token:     token.Token,
			ExpiresAt: token.ExpiresAt,
		},
	})
	return nil
}

// ConfirmPasswordReset validates the reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	token, err := s.resets.GetByToken(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewValidationError("invalid reset token")
		}
		return err
	}
	if token.UsedAt != nil || time.Now().After(token.ExpiresAt) {
		return apperrors.NewValidationError("reset token expired or used")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, token.UserID, hash); err != nil {
		return err
	}
	return s.resets.MarkUsed(ctx, token.ID)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// Cache access is best-effort: a miss or an unreachable Redis falls through
// to the store.
func (s *AuthService) cachedProfile(ctx context.Context, userID string) *domain.Profile {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.Get(ctx, profileCachePrefix+userID).Bytes()
	if err != nil {
		return nil
	}
	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil
	}
	return &profile
}

func (s *AuthService) storeProfile(ctx context.Context, profile *domain.Profile) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return
	}
	s.cache.Set(ctx, profileCachePrefix+profile.ID, raw, s.cacheTTL)
}
