package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEnvKey = "AQUAPONICS_TEST_VAR"

func TestEnvHelpers(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		tests := []struct {
			raw  string
			want int
		}{
			{"", 42},
			{"100", 100},
			{"-10", -10},
			{"0", 0},
			{"42.5", 42},
			{"not-a-number", 42},
		}
		for _, tt := range tests {
			t.Setenv(testEnvKey, tt.raw)
			assert.Equal(t, tt.want, getEnvAsInt(testEnvKey, 42), "raw %q", tt.raw)
		}
	})

	t.Run("duration", func(t *testing.T) {
		tests := []struct {
			raw  string
			want time.Duration
		}{
			{"", time.Minute},
			{"90s", 90 * time.Second},
			{"1h30m", 90 * time.Minute},
			{"500ms", 500 * time.Millisecond},
			{"10", time.Minute},
			{"soon", time.Minute},
		}
		for _, tt := range tests {
			t.Setenv(testEnvKey, tt.raw)
			assert.Equal(t, tt.want, getEnvAsDuration(testEnvKey, time.Minute), "raw %q", tt.raw)
		}
	})

	t.Run("bool", func(t *testing.T) {
		tests := []struct {
			raw  string
			want bool
		}{
			{"", true},
			{"false", false},
			{"0", false},
			{"TRUE", true},
			{"maybe", true},
		}
		for _, tt := range tests {
			t.Setenv(testEnvKey, tt.raw)
			assert.Equal(t, tt.want, getEnvAsBool(testEnvKey, true), "raw %q", tt.raw)
		}
	})

	t.Run("list", func(t *testing.T) {
		t.Setenv(testEnvKey, " 10.0.0.1, ,10.0.0.2 ")
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList(testEnvKey))

		t.Setenv(testEnvKey, "")
		assert.Empty(t, getEnvAsList(testEnvKey))
	})
}

func TestLoad_TuningDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
	assert.Equal(t, DefaultDBMaxConnIdleTime, cfg.DBMaxConnIdleTime)
	assert.Equal(t, DefaultDBMaxConnLifetime, cfg.DBMaxConnLifetime)
	assert.Equal(t, DefaultCacheSize, cfg.CacheSize)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
	assert.Equal(t, DefaultSimWorkers, cfg.SimulationWorkers)
	assert.Equal(t, DefaultMaxSimGames, cfg.MaxSimulationGames)
	assert.Equal(t, int64(DefaultMaxBodyBytes), cfg.MaxBodyBytes)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.S3Bucket)
}

func TestLoad_TuningOverrides(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_MAX_CONNS", "50")
	t.Setenv("DB_MAX_CONN_IDLE_TIME", "10m")
	t.Setenv("DB_MAX_CONN_LIFETIME", "1h")
	t.Setenv("MATCH_CACHE_SIZE", "16")
	t.Setenv("MATCH_CACHE_TTL", "30s")
	t.Setenv("SIMULATION_WORKERS", "8")
	t.Setenv("MAX_SIMULATION_GAMES", "50")
	t.Setenv("S3_BUCKET", "farm-reports")
	t.Setenv("S3_PATH_STYLE", "true")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1,10.0.0.2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.DBMaxConns)
	assert.Equal(t, 10*time.Minute, cfg.DBMaxConnIdleTime)
	assert.Equal(t, time.Hour, cfg.DBMaxConnLifetime)
	assert.Equal(t, 16, cfg.CacheSize)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.Equal(t, 8, cfg.SimulationWorkers)
	assert.Equal(t, 50, cfg.MaxSimulationGames)
	assert.Equal(t, "farm-reports", cfg.S3Bucket)
	assert.True(t, cfg.S3PathStyle)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
}

func TestLoad_InvalidTuningFallsBack(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")
	t.Setenv("DB_MAX_CONNS", "not-a-number")
	t.Setenv("MATCH_CACHE_TTL", "bad-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultDBMaxConns, cfg.DBMaxConns)
	assert.Equal(t, DefaultCacheTTL, cfg.CacheTTL)
}

func TestLoad_RejectsOutOfRangeTuning(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("API_KEY", "test-key")
	t.Setenv("SIMULATION_WORKERS", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "SimulationWorkers")
}
