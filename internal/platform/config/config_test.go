package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8171", cfg.Addr)
	assert.Equal(t, 5, cfg.Redis.RetryMaxAttempts)
	assert.Equal(t, 100*time.Millisecond, cfg.Redis.RetryInitialDelay)
	assert.False(t, cfg.Outbox.Enabled)
	assert.Contains(t, cfg.Events.Whitelist, "CASE_CREATED")
	assert.Empty(t, cfg.Kafka.Brokers)
	require.NoError(t, cfg.Validate())
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("CC_ADDR", ":9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("CASE_CACHE_RETRY_ATTEMPTS", "8")
	t.Setenv("CASE_CACHE_RETRY_MULTIPLIER", "1.5")
	t.Setenv("OUTBOX_ENABLED", "true")
	t.Setenv("DATABASE_URL", "postgres://cc@db/cc")
	t.Setenv("CASE_EVENT_WHITELIST", "CASE_CREATED")
	t.Setenv("CASE_SERVICE_TIMEOUT", "not-a-duration")

	cfg := FromEnv()

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 8, cfg.Redis.RetryMaxAttempts)
	assert.InDelta(t, 1.5, cfg.Redis.RetryMultiplier, 0.0001)
	assert.True(t, cfg.Outbox.Enabled)
	assert.Equal(t, []string{"CASE_CREATED"}, cfg.Events.Whitelist)
	assert.Equal(t, 5*time.Second, cfg.CaseService.Timeout, "unparseable values fall back")
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Run("production requires a real signing key", func(t *testing.T) {
		t.Setenv("APP_ENV", "production")
		err := FromEnv().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LAUNCH_SIGNING_KEY")
	})

	t.Run("outbox requires a database", func(t *testing.T) {
		t.Setenv("OUTBOX_ENABLED", "true")
		err := FromEnv().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DATABASE_URL")
	})
}
