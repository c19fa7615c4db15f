package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "bank-ledger-service", cfg.App.Name)
	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "test-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
	assert.Equal(t, "user123", cfg.Auth.Username)
	assert.Equal(t, "password123", cfg.Auth.Password)
	assert.Equal(t, "ACC001", cfg.Ledger.AccountID)
	assert.Equal(t, 1000.00, cfg.Ledger.OpeningBalance)
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoad_MissingSecretFailsFast(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load()
	require.ErrorIs(t, err, ErrMissingJWTSecret)
	assert.Nil(t, cfg)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s")
	t.Setenv("APP_PORT", "9999")
	t.Setenv("AUTH_USERNAME", "alice")
	t.Setenv("LEDGER_OPENING_BALANCE", "42.5")
	t.Setenv("AUTH_TOKEN_TTL_MINUTES", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.App.Port)
	assert.Equal(t, "alice", cfg.Auth.Username)
	assert.Equal(t, 42.5, cfg.Ledger.OpeningBalance)
	assert.Equal(t, 5, cfg.Auth.TokenTTLMinutes)
}

func TestLoad_BadOpeningBalance(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "s")
	t.Setenv("LEDGER_OPENING_BALANCE", "lots")

	_, err := Load()
	require.Error(t, err)
}
