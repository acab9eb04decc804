package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"CASHSITE_CONTENT", "CASHSITE_TICK_MS", "CASHSITE_CHARSET", "CASHSITE_DEBUG", "CASHSITE_DARK_MODE"} {
		t.Setenv(key, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 50*time.Millisecond, cfg.GetTickInterval())
	assert.Equal(t, 2.0, cfg.GetCyclesPerLetter())
	assert.Equal(t, "symbols", cfg.Effect.Charset)
	assert.True(t, cfg.Showcase.EnableOnHover)
	assert.False(t, cfg.Showcase.AutoStartTitles)
	assert.False(t, cfg.Logging.DebugMode)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Effect.TickInterval = "20ms"
	cfg.Effect.Alphabet = "01"
	cfg.Showcase.ContentPath = "/srv/portfolio.json"
	cfg.Showcase.PerformancePath = "/srv/performance.json"
	cfg.Showcase.StorePath = "/srv/store.json"
	cfg.Showcase.ServicesPath = "/srv/services.json"
	cfg.Logging.Categories = map[string]bool{"effect": false}

	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 20*time.Millisecond, loaded.GetTickInterval())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effect:\n  charset: braille\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "braille", cfg.Effect.Charset)
	assert.Equal(t, "50ms", cfg.Effect.TickInterval)
	assert.True(t, cfg.Showcase.EnableOnHover)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("effect: [unterminated"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_Getters_Fallbacks(t *testing.T) {
	cfg := &Config{Effect: EffectConfig{TickInterval: "soon", CyclesPerLetter: 0.2}}
	assert.Equal(t, 50*time.Millisecond, cfg.GetTickInterval())
	assert.Equal(t, 2.0, cfg.GetCyclesPerLetter())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad duration", func(c *Config) { c.Effect.TickInterval = "fast" }, "effect.tick_interval"},
		{"negative duration", func(c *Config) { c.Effect.TickInterval = "-5ms" }, "must be positive"},
		{"cycles below one", func(c *Config) { c.Effect.CyclesPerLetter = 0.5 }, "cycles_per_letter"},
		{"unknown theme", func(c *Config) { c.Showcase.Theme = "neon" }, "showcase.theme"},
		{"unknown log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoggingConfig_IsCategoryEnabled(t *testing.T) {
	cfg := LoggingConfig{}
	assert.False(t, cfg.IsCategoryEnabled("effect"), "debug mode off disables everything")

	cfg.DebugMode = true
	assert.True(t, cfg.IsCategoryEnabled("effect"))

	cfg.Categories = map[string]bool{"effect": false}
	assert.False(t, cfg.IsCategoryEnabled("effect"))
	assert.True(t, cfg.IsCategoryEnabled("ui"))
}
