package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/records")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Zero(t, cfg.App.RequestTimeout())
	assert.Equal(t, 86400*time.Second, cfg.Auth.TokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, "dev-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Minute, cfg.Redis.ListCacheTTL())
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 5, cfg.Postgres.ConnectRetries)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/records")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("AUTH_TOKEN_TTL_SECONDS", "60")
	t.Setenv("AUTH_BCRYPT_COST", "12")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 5*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL())
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoad_RequiresDSN(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("POSTGRES_DSN", "")

	_, err := Load()
	assert.EqualError(t, err, "POSTGRES_DSN is required")
}

func TestLoad_RequiresSecretInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/records")
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.EqualError(t, err, "AUTH_JWT_SECRET is required in production")
}

func TestLoad_InvalidRedisDB(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("POSTGRES_DSN", "postgres://localhost:5432/records")
	t.Setenv("REDIS_DB", "primary")

	_, err := Load()
	assert.ErrorContains(t, err, "invalid REDIS_DB")
}
