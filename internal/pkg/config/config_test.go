package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
	assert.Equal(t, 2*time.Hour, cfg.Auth.AdminTokenTTL)
	assert.Equal(t, 24*time.Hour, cfg.Auth.UserTokenTTL)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "./data", cfg.Storage.DataDir)
	assert.Equal(t, "storefront:", cfg.Storage.Redis.Prefix)
	assert.Equal(t, "./public", cfg.StaticDir)
	assert.Error(t, cfg.ValidateServe(), "serving without a secret must be rejected")
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":            "8080",
		"JWT_SECRET":      "s3cret",
		"ADMIN_TOKEN_TTL": "30m",
		"STORAGE_BACKEND": "redis",
		"REDIS_ADDR":      "cache:6379",
		"REDIS_DB":        "2",
	}))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Addr())
	assert.Equal(t, 30*time.Minute, cfg.Auth.AdminTokenTTL)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "cache:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, 2, cfg.Storage.Redis.DB)
	assert.NoError(t, cfg.ValidateServe())
}

func TestLoadWith_InvalidDuration(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"USER_TOKEN_TTL": "forever",
	}))
	assert.Error(t, err)
}

func TestAuditLocation(t *testing.T) {
	cfg := &Config{AuditTimezone: "Not/AZone"}
	assert.Equal(t, time.Local, cfg.AuditLocation())

	cfg.AuditTimezone = "UTC"
	assert.Equal(t, "UTC", cfg.AuditLocation().String())
}
