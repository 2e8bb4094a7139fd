package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.ServerPort)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, ":3333", cfg.SecondaryAddr())
	assert.Equal(t, "America/Sao_Paulo", cfg.Timezone)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.AllowedOrigins())
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL())
	assert.False(t, cfg.StrictStatusTransitions)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("SECONDARY_PORT", "")
	t.Setenv("CORS_ORIGINS", " https://barbearia.app ,")
	t.Setenv("LOGIN_LOCK_MINUTES", "2")
	t.Setenv("STRICT_STATUS_TRANSITIONS", "true")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "", cfg.SecondaryAddr())
	assert.Equal(t, []string{"https://barbearia.app"}, cfg.AllowedOrigins())
	assert.Equal(t, 2*time.Minute, cfg.LoginLockWindow())
	assert.True(t, cfg.StrictStatusTransitions)
	assert.True(t, cfg.IsProduction())
}

func TestSecondaryAddr_SameAsPrimary(t *testing.T) {
	cfg := &Config{ServerPort: "3333", SecondaryPort: "3333"}
	assert.Equal(t, "", cfg.SecondaryAddr())
}

func TestValidate(t *testing.T) {
	cfg := &Config{Timezone: "America/Sao_Paulo", Env: "development", JWTSecret: "changeme"}
	assert.NoError(t, cfg.Validate())

	cfg.Timezone = "Brasil/Paraiba"
	assert.ErrorContains(t, cfg.Validate(), "APP_TIMEZONE")

	cfg.Timezone = "America/Fortaleza"
	cfg.Env = "production"
	assert.ErrorContains(t, cfg.Validate(), "JWT_SECRET")

	cfg.JWTSecret = "s3cr3t-de-verdade"
	assert.NoError(t, cfg.Validate())
}
