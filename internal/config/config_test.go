package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsascontentcorner/discordstate/pkg/entities"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, entities.CachePolicyAggressive, cfg.Cache.Policy)
	assert.Equal(t, "events.jsonl", cfg.Replay.File)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CACHE_POLICY", "lazy")
	t.Setenv("REPLAY_FILE", "/tmp/session.jsonl")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, entities.CachePolicyLazy, cfg.Cache.Policy)
	assert.Equal(t, "/tmp/session.jsonl", cfg.Replay.File)
}

func TestLoad_InvalidCachePolicy(t *testing.T) {
	t.Setenv("CACHE_POLICY", "sometimes")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_POLICY")
}
