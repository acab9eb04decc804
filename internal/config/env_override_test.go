package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOverrides(t *testing.T) {
	t.Run("CASHSITE_CONTENT sets content path", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHSITE_CONTENT", "/data/works.json")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "/data/works.json", cfg.Showcase.ContentPath)
	})

	t.Run("CASHSITE_TICK_MS sets interval", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHSITE_TICK_MS", "75")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 75*time.Millisecond, cfg.GetTickInterval())
	})

	t.Run("invalid CASHSITE_TICK_MS is ignored", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHSITE_TICK_MS", "-3")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "50ms", cfg.Effect.TickInterval)
	})

	t.Run("CASHSITE_CHARSET clears literal alphabet", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHSITE_CHARSET", "blocks")

		cfg := DefaultConfig()
		cfg.Effect.Alphabet = "xyz"
		cfg.applyEnvOverrides()

		assert.Equal(t, "blocks", cfg.Effect.Charset)
		assert.Empty(t, cfg.Effect.Alphabet)
	})

	t.Run("CASHSITE_DEBUG enables debug logging", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHSITE_DEBUG", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.True(t, cfg.Logging.DebugMode)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("CASHSITE_DARK_MODE forces dark theme", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("CASHSITE_DARK_MODE", "1")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "dark", cfg.Showcase.Theme)
	})
}

func TestEnvOverrides_ApplyWithoutConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("CASHSITE_CHARSET", "binary")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "binary", cfg.Effect.Charset)
}
