package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaustubh-git5/my-mvp-startup-backend/pkg/config"
)

func TestLoad(t *testing.T) {
	t.Run("fails without JWT_SECRET", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")
		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "")
		t.Setenv("JWT_TTL_MINUTES", "")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 24*60, cfg.JWTTTLMinutes)
		assert.Equal(t, "s3cret", cfg.JWTSecret)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "s3cret")
		t.Setenv("PORT", "9000")
		t.Setenv("JWT_TTL_MINUTES", "15")
		t.Setenv("JWT_ISSUER", "test-issuer")

		cfg, err := config.Load()
		require.NoError(t, err)
		assert.Equal(t, "9000", cfg.Port)
		assert.Equal(t, 15, cfg.JWTTTLMinutes)
		assert.Equal(t, "test-issuer", cfg.JWTIssuer)
	})
}
