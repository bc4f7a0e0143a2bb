package config_test

import (
	"testing"
	"time"

	"github.com/aixxiteru/peta-jabatan/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "memory")

		cfg := config.Load()

		assert.Equal(t, "memory", cfg.StoreDriver)
		assert.Equal(t, config.DefaultEmployeeGID, cfg.DefaultEmployeeGID)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "8081")
		t.Setenv("SYNC_INTERVAL", "15m")
		t.Setenv("SYNC_RATE_LIMIT", "2")
		t.Setenv("SHEET_FETCH_TIMEOUT", "0s")

		cfg := config.Load()

		assert.Equal(t, "8081", cfg.Port)
		assert.Equal(t, 15*time.Minute, cfg.SyncInterval)
		assert.Equal(t, 2, cfg.SyncRatePerMinute)
		assert.Equal(t, time.Duration(0), cfg.SheetFetchTimeout)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		t.Setenv("SYNC_RATE_LIMIT", "banyak")
		t.Setenv("PARSE_CACHE_TTL", "sebentar")

		cfg := config.Load()

		assert.Equal(t, 6, cfg.SyncRatePerMinute)
		assert.Equal(t, 30*time.Minute, cfg.ParseCacheTTL)
	})
}
