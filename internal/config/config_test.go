package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "attendance-service", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 24, cfg.Auth.TokenTTLHours)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, int64(5*1024*1024), cfg.Upload.MaxSizeBytes)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
}

func TestLoadProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	t.Run("default secret rejected", func(t *testing.T) {
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("explicit secret accepted", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "real-production-secret")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "real-production-secret", cfg.Auth.JWTSecret)
	})
}
