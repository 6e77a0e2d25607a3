package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, 24*time.Hour, cfg.CacheTTL)
	assert.Equal(t, 30, cfg.PageSize)
	assert.Equal(t, 30, cfg.WaterBottleDays)
	assert.Equal(t, 90, cfg.AttireDays)
	assert.Equal(t, 90, cfg.UmbrellaDays)
	assert.Equal(t, 180, cfg.InexpensiveDays)
	assert.Equal(t, 365, cfg.ExpensiveDays)
}

func TestNewEnvOverride(t *testing.T) {
	t.Setenv("LAF_HTTP_PORT", "9191")
	t.Setenv("LAF_MONGO_DATABASE", "laf_test")
	t.Setenv("LAF_CACHE_TTL", "15m")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.HTTPPort)
	assert.Equal(t, "laf_test", cfg.MongoDatabase)
	assert.Equal(t, 15*time.Minute, cfg.CacheTTL)
}

func TestValidateRejectsBadWindows(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	cfg.InexpensiveDays = 365
	cfg.ExpensiveDays = 180
	assert.Error(t, cfg.Validate())

	cfg.InexpensiveDays = 180
	cfg.ExpensiveDays = 365
	cfg.PageSize = 0
	assert.Error(t, cfg.Validate())
}
