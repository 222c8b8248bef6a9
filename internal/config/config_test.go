package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/greeting-service/internal/model"
)

func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t, "APP_ENV", "APP_HOST", "APP_PORT", "GREETING_MESSAGE", "SHUTDOWN_TIMEOUT", "LOG_LEVEL")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, model.DefaultMessage, cfg.Greeting)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8080")
	t.Setenv("GREETING_MESSAGE", "  Hello from CI/CD! Version 2.0  ")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.Equal(t, "Hello from CI/CD! Version 2.0", cfg.Greeting)
	assert.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnvBlankGreeting(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("GREETING_MESSAGE", "   ")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultMessage, cfg.Greeting)
}

func TestFromEnvInvalidPort(t *testing.T) {
	for _, port := range []string{"http", "0", "70000", "-1"} {
		t.Run(port, func(t *testing.T) {
			t.Setenv("APP_PORT", port)
			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "APP_PORT")
		})
	}
}

var rateLimitKeys = []string{
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_CAPACITY", "RATE_LIMIT_REFILL_TOKENS",
	"RATE_LIMIT_REFILL_INTERVAL", "RATE_LIMIT_TTL", "RATE_LIMIT_KEY_STRATEGY",
	"RATE_LIMIT_PREFIX", "RATE_LIMIT_DEBUG",
}

func TestFromEnvInvalidValues(t *testing.T) {
	cases := map[string]string{
		"SHUTDOWN_TIMEOUT":           "-3s",
		"RATE_LIMIT_ENABLED":         "maybe",
		"RATE_LIMIT_CAPACITY":        "0",
		"RATE_LIMIT_REFILL_TOKENS":   "lots",
		"RATE_LIMIT_REFILL_INTERVAL": "0s",
		"RATE_LIMIT_TTL":             "soon",
		"RATE_LIMIT_KEY_STRATEGY":    "user",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t, append([]string{"APP_PORT", "SHUTDOWN_TIMEOUT"}, rateLimitKeys...)...)
			t.Setenv(key, val)

			_, err := FromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestFromEnvRateLimitDefaults(t *testing.T) {
	clearEnv(t, append([]string{"APP_PORT"}, rateLimitKeys...)...)

	cfg, err := FromEnv()
	require.NoError(t, err)
	rl := cfg.RateLimit
	assert.False(t, rl.Enabled)
	assert.Equal(t, 60, rl.Capacity)
	assert.Equal(t, 1, rl.RefillTokens)
	assert.Equal(t, time.Second, rl.RefillInterval)
	assert.Equal(t, 10*time.Minute, rl.TTL)
	assert.Equal(t, "ip_route", rl.KeyStrategy)
	assert.Equal(t, "rl", rl.Prefix)
}

func TestFromEnvRateLimitOverrides(t *testing.T) {
	clearEnv(t, append([]string{"APP_PORT"}, rateLimitKeys...)...)
	t.Setenv("RATE_LIMIT_ENABLED", "YES")
	t.Setenv("RATE_LIMIT_CAPACITY", "5")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "1m")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "IP")

	cfg, err := FromEnv()
	require.NoError(t, err)
	rl := cfg.RateLimit
	assert.True(t, rl.Enabled)
	assert.Equal(t, 5, rl.Capacity)
	assert.Equal(t, "ip", rl.KeyStrategy)
	assert.Equal(t, 5*time.Minute, rl.TTL, "ttl is raised to five refill intervals")
}

func TestFromEnvRateLimitTTLFloor(t *testing.T) {
	clearEnv(t, append([]string{"APP_PORT"}, rateLimitKeys...)...)
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "100ms")
	t.Setenv("RATE_LIMIT_TTL", "200ms")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.RateLimit.TTL)
}

func TestRedisOptions(t *testing.T) {
	clearEnv(t, "REDIS_ADDR", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB", "REDIS_TLS")

	opts := RedisOptions()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 0, opts.DB)
	assert.Nil(t, opts.TLSConfig)

	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_HOST", "redis")
	t.Setenv("REDIS_PORT", "6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_TLS", "1")

	opts = RedisOptions()
	assert.Equal(t, "redis:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.NotNil(t, opts.TLSConfig)
}
