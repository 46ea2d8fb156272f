package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Should apply defaults when only required values are set", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{
			"DATABASE_URL": "postgres://localhost/tasks",
			"JWT_KEY":      "secret",
		}))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.Equal(t, "info", cfg.LogLevel)
		assert.True(t, cfg.IsDevelopment())
		assert.True(t, cfg.AutoMigrate)
		assert.Equal(t, int32(10), cfg.DBMaxConns)
		assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
		assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("Should read overrides", func(t *testing.T) {
		cfg, err := FromEnv(envOf(map[string]string{
			"DATABASE_URL":     "postgres://localhost/tasks",
			"JWT_KEY":          "secret",
			"PORT":             "3000",
			"ENV":              "production",
			"AUTO_MIGRATE":     "false",
			"DB_MAX_CONNS":     "4",
			"TOKEN_TTL":        "1h",
			"SHUTDOWN_TIMEOUT": "2s",
		}))
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Port)
		assert.False(t, cfg.IsDevelopment())
		assert.False(t, cfg.AutoMigrate)
		assert.Equal(t, int32(4), cfg.DBMaxConns)
		assert.Equal(t, time.Hour, cfg.TokenTTL)
		assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
	})

	t.Run("Should require DATABASE_URL", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{"JWT_KEY": "secret"}))
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("Should require JWT_KEY", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{"DATABASE_URL": "postgres://localhost/tasks"}))
		assert.ErrorContains(t, err, "JWT_KEY")
	})

	t.Run("Should reject a non-positive pool size", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{
			"DATABASE_URL": "postgres://localhost/tasks",
			"JWT_KEY":      "secret",
			"DB_MAX_CONNS": "0",
		}))
		assert.ErrorContains(t, err, "DB_MAX_CONNS")
	})

	t.Run("Should reject a bad duration", func(t *testing.T) {
		_, err := FromEnv(envOf(map[string]string{
			"DATABASE_URL": "postgres://localhost/tasks",
			"JWT_KEY":      "secret",
			"TOKEN_TTL":    "tomorrow",
		}))
		assert.ErrorContains(t, err, "TOKEN_TTL")
	})
}
