package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "shop-service", cfg.App.Name)
	require.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	require.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	require.Equal(t, 10, cfg.Auth.BcryptCost)
	require.Equal(t, 7*24*time.Hour, cfg.Auth.SessionTokenTTL())
	require.Equal(t, "Lax", cfg.HTTP.CookieSameSite)
	require.False(t, cfg.HTTP.CookieSecure)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "prod-secret")
	t.Setenv("AUTH_SESSION_TOKEN_TTL_MINUTES", "15")
	t.Setenv("HTTP_COOKIE_SECURE", "true")
	t.Setenv("HTTP_COOKIE_SAMESITE", "None")
	t.Setenv("HTTP_CORS_ORIGIN", "https://shop.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, "prod-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 15*time.Minute, cfg.Auth.SessionTokenTTL())
	require.True(t, cfg.HTTP.CookieSecure)
	require.Equal(t, "None", cfg.HTTP.CookieSameSite)
	require.Equal(t, "https://shop.example.com", cfg.HTTP.CORSOrigin)
}

func TestLoadInvalidRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
