package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("development falls back to the dev secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "development")
		t.Setenv("ADMIN_JWT_SECRET", "")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, devSecret, cfg.AdminJWTSecret)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("production refuses to start without a secret", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("ADMIN_JWT_SECRET", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("production with a secret loads", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		t.Setenv("ADMIN_JWT_SECRET", "real-secret")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.Equal(t, "real-secret", cfg.AdminJWTSecret)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("SMTP unconfigured is detected", func(t *testing.T) {
		t.Setenv("SMTP_HOST", "")
		t.Setenv("SMTP_USER", "")
		t.Setenv("SMTP_PASS", "")

		cfg, err := Load()

		assert.NoError(t, err)
		assert.False(t, cfg.SMTPConfigured())
	})
}
