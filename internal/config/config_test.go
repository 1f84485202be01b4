package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DOCSTORE_BACKEND", "")
	t.Setenv("DOCSTORE_ID_STRATEGY", "")
	t.Setenv("REDIS_HOST", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendMemory, cfg.Store.Backend)
	require.Equal(t, IDStrategyCounter, cfg.Store.IDStrategy)
	require.Equal(t, "docstore:", cfg.Redis.KeyPrefix)
	require.Equal(t, 5*time.Second, cfg.Redis.Timeout)
}

func TestLoadConfigRedis(t *testing.T) {
	t.Setenv("DOCSTORE_BACKEND", "Redis")
	t.Setenv("DOCSTORE_ID_STRATEGY", "uuid")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendRedis, cfg.Store.Backend)
	require.Equal(t, IDStrategyUUID, cfg.Store.IDStrategy)
	require.Equal(t, "localhost:6380", cfg.Redis.Addr())
	require.Equal(t, 2, cfg.Redis.DB)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("DOCSTORE_ID_STRATEGY", "")

	t.Setenv("DOCSTORE_BACKEND", "mongo")
	_, err := LoadConfig()
	require.Error(t, err)

	t.Setenv("DOCSTORE_BACKEND", "redis")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "REDIS_HOST")

	t.Setenv("DOCSTORE_BACKEND", "memory")
	t.Setenv("DOCSTORE_ID_STRATEGY", "snowflake")
	_, err = LoadConfig()
	require.ErrorContains(t, err, "DOCSTORE_ID_STRATEGY")
}
