package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/shop-service/internal/config"
	"github.com/spec-kit/shop-service/internal/events"
	apperrors "github.com/spec-kit/shop-service/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:               "test-secret",
			SessionTokenTTLMinutes:  60,
			PasswordResetTTLMinutes: 30,
			BcryptCost:              bcrypt.MinCost,
		},
	}
}

func newAuthService(users *fakeUserRepo, resets *fakeResetRepo) *AuthService {
	return NewAuthService(testConfig(), AuthDependencies{
		UserRepo:          users,
		PasswordResetRepo: resets,
		Dispatcher:        events.NewInMemoryDispatcher(),
	})
}

func TestRegisterThenLogin(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeResetRepo())

	user, token, _, err := svc.Register(ctx, "alice@example.com", "555-0100", "pw123")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.NotEqual(t, "pw123", user.PasswordHash)

	claims, err := svc.TokenManager().Parse(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)

	loggedIn, loginToken, _, err := svc.Login(ctx, "alice@example.com", "pw123")
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	claims, err = svc.TokenManager().Parse(loginToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := newFakeUserRepo()
	svc := newAuthService(users, newFakeResetRepo())

	_, _, _, err := svc.Register(ctx, "alice@example.com", "", "pw123")
	require.NoError(t, err)

	_, _, _, err = svc.Register(ctx, "alice@example.com", "", "other")
	require.Error(t, err)
	require.Equal(t, 409, apperrors.ToDomainError(err).HTTPStatus)
	require.Equal(t, 1, users.count())
}

func TestLoginFailsGenerically(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(newFakeUserRepo(), newFakeResetRepo())
	_, _, _, err := svc.Register(ctx, "alice@example.com", "", "pw123")
	require.NoError(t, err)

	_, _, _, wrongPassword := svc.Login(ctx, "alice@example.com", "nope")
	_, _, _, unknownEmail := svc.Login(ctx, "mallory@example.com", "pw123")

	// unknown email and bad password must be indistinguishable
	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	require.Equal(t,
		apperrors.ToDomainError(wrongPassword).HTTPStatus,
		apperrors.ToDomainError(unknownEmail).HTTPStatus)
	require.Equal(t,
		apperrors.ToDomainError(wrongPassword).Message,
		apperrors.ToDomainError(unknownEmail).Message)
}

func TestProfileOmitsPasswordHash(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := newAuthService(newFakeUserRepo(), newFakeResetRepo())
	user, _, _, err := svc.Register(ctx, "alice@example.com", "555-0100", "pw123")
	require.NoError(t, err)

	profile, err := svc.Profile(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", profile.Email)
	require.Equal(t, "555-0100", profile.Phone)
}

func TestProfileUnknownUserUnauthorized(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo(), newFakeResetRepo())
	_, err := svc.Profile(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, 401, apperrors.ToDomainError(err).HTTPStatus)
}

func TestPasswordResetFlow(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	users := newFakeUserRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo:          users,
		PasswordResetRepo: newFakeResetRepo(),
		Dispatcher:        dispatcher,
	})

	// the token reaches the caller only through the notification path
	var issued []events.PasswordResetRequestedPayload
	dispatcher.Subscribe(events.EventPasswordResetRequested, func(_ context.Context, e events.Event) error {
		issued = append(issued, e.Payload.(events.PasswordResetRequestedPayload))
		return nil
	})

	_, _, _, err := svc.Register(ctx, "alice@example.com", "", "pw123")
	require.NoError(t, err)

	require.NoError(t, svc.RequestPasswordReset(ctx, "alice@example.com"))
	require.Len(t, issued, 1)
	require.Equal(t, "alice@example.com", issued[0].Email)
	require.NotEmpty(t, issued[0].Token)

	require.NoError(t, svc.ConfirmPasswordReset(ctx, issued[0].Token, "newpw"))

	_, _, _, err = svc.Login(ctx, "alice@example.com", "pw123")
	require.Error(t, err)
	_, _, _, err = svc.Login(ctx, "alice@example.com", "newpw")
	require.NoError(t, err)

	// single use
	err = svc.ConfirmPasswordReset(ctx, issued[0].Token, "again")
	require.Error(t, err)
}

func TestPasswordResetRequestUnknownEmail(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	resets := newFakeResetRepo()
	dispatcher := events.NewInMemoryDispatcher()
	svc := NewAuthService(testConfig(), AuthDependencies{
		UserRepo:          newFakeUserRepo(),
		PasswordResetRepo: resets,
		Dispatcher:        dispatcher,
	})

	var published int
	dispatcher.Subscribe(events.EventPasswordResetRequested, func(context.Context, events.Event) error {
		published++
		return nil
	})

	// unknown accounts succeed identically so emails cannot be enumerated
	require.NoError(t, svc.RequestPasswordReset(ctx, "nobody@example.com"))
	require.Equal(t, 0, resets.count())
	require.Equal(t, 0, published)
}

func TestPasswordResetUnknownToken(t *testing.T) {
	t.Parallel()

	svc := newAuthService(newFakeUserRepo(), newFakeResetRepo())
	err := svc.ConfirmPasswordReset(context.Background(), "no-such-token", "pw")
	require.Error(t, err)
	require.Equal(t, 400, apperrors.ToDomainError(err).HTTPStatus)
}
