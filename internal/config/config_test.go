package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFailsWithoutJWTSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "inventory-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 7, cfg.Auth.TokenTTLDays)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL_DAYS", "1")
	t.Setenv("APP_PORT", "9090")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL())
	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.False(t, cfg.Postgres.RunMigrations)
}
