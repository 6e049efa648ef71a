package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, 30*time.Second, cfg.Redis.ListTTL)
	assert.Equal(t, 587, cfg.SMTP.Port)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("PAPERFLOW_ADDR", ":9999")
	t.Setenv("PAPERFLOW_SMTP_PORT", "2525")
	t.Setenv("PAPERFLOW_CACHE_TTL", "1m")
	t.Setenv("PAPERFLOW_SMTP_USER", "notify@example.org")

	cfg := FromEnv()

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, 2525, cfg.SMTP.Port)
	assert.Equal(t, time.Minute, cfg.Redis.ListTTL)
	// From falls back to the SMTP user when unset.
	assert.Equal(t, "notify@example.org", cfg.SMTP.From)
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("PAPERFLOW_SMTP_PORT", "not-a-port")
	t.Setenv("PAPERFLOW_CACHE_TTL", "soon")

	cfg := FromEnv()

	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.Equal(t, 30*time.Second, cfg.Redis.ListTTL)
}
