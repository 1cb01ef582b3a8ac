package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "collegetours", cfg.DatabaseName)
	assert.Equal(t, 24*time.Hour, cfg.TokenValidity)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.DevAuthBypass)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadRejectsMissingMongoURI(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("MONGODB_URI", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingMongoURI)
}

func TestAdminEmailsParsing(t *testing.T) {
	setRequired(t)
	t.Setenv("ADMIN_EMAILS", "kesav@admin.com, admin@example.com ,college@admin.edu")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kesav@admin.com", "admin@example.com", "college@admin.edu"}, cfg.AdminEmails)
	assert.True(t, cfg.IsAdmin("admin@example.com"))
	assert.False(t, cfg.IsAdmin("visitor@x.com"))
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("PORT", "8090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_VALIDITY", "1h")
	t.Setenv("AUTH_DEV_BYPASS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, time.Hour, cfg.TokenValidity)
	assert.True(t, cfg.DevAuthBypass)
}
