package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all cashsite configuration.
type Config struct {
	// Scramble effect timing and alphabet
	Effect EffectConfig `yaml:"effect"`

	// Interactive showcase
	Showcase ShowcaseConfig `yaml:"showcase"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// EffectConfig configures the scramble effect.
type EffectConfig struct {
	TickInterval    string  `yaml:"tick_interval"`     // Go duration, default 50ms
	CyclesPerLetter float64 `yaml:"cycles_per_letter"` // Ticks per resolved position, >= 1
	Charset         string  `yaml:"charset"`           // Registered charset name
	Alphabet        string  `yaml:"alphabet"`          // Literal alphabet, overrides Charset
}

// ShowcaseConfig configures the interactive works gallery.
type ShowcaseConfig struct {
	ContentPath     string `yaml:"content_path"`      // Portfolio JSON; empty = built-in sample
	PerformancePath string `yaml:"performance_path"`  // Live and multimedia projects JSON
	StorePath       string `yaml:"store_path"`        // Releases and support link JSON
	ServicesPath    string `yaml:"services_path"`     // Services accordion JSON
	EnableOnHover   bool   `yaml:"enable_on_hover"`   // Scramble titles on hover/focus
	AutoStartTitles bool   `yaml:"auto_start_titles"` // Scramble every title once on load
	WatchContent    bool   `yaml:"watch_content"`     // Reload content on file change
	Theme           string `yaml:"theme"`             // auto, dark, light
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Effect: EffectConfig{
			TickInterval:    "50ms",
			CyclesPerLetter: 2,
			Charset:         "symbols",
		},
		Showcase: ShowcaseConfig{
			EnableOnHover: true,
			WatchContent:  true,
			Theme:         "auto",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// DefaultPath returns ~/.config/cashsite/config.yaml.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "cashsite", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("CASHSITE_CONTENT"); path != "" {
		c.Showcase.ContentPath = path
	}
	if ms := os.Getenv("CASHSITE_TICK_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			c.Effect.TickInterval = (time.Duration(n) * time.Millisecond).String()
		}
	}
	if charset := os.Getenv("CASHSITE_CHARSET"); charset != "" {
		c.Effect.Charset = charset
		c.Effect.Alphabet = ""
	}
	if os.Getenv("CASHSITE_DEBUG") == "1" {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}
	if os.Getenv("CASHSITE_DARK_MODE") == "1" {
		c.Showcase.Theme = "dark"
	}
}

// GetTickInterval returns the parsed tick interval, falling back to 50ms.
func (c *Config) GetTickInterval() time.Duration {
	d, err := time.ParseDuration(c.Effect.TickInterval)
	if err != nil || d <= 0 {
		return 50 * time.Millisecond
	}
	return d
}

// GetCyclesPerLetter returns the configured cycles, falling back to 2.
func (c *Config) GetCyclesPerLetter() float64 {
	if c.Effect.CyclesPerLetter < 1 {
		return 2
	}
	return c.Effect.CyclesPerLetter
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Effect.TickInterval != "" {
		d, err := time.ParseDuration(c.Effect.TickInterval)
		if err != nil {
			return fmt.Errorf("effect.tick_interval: %w", err)
		}
		if d <= 0 {
			return fmt.Errorf("effect.tick_interval must be positive, got %s", d)
		}
	}
	if c.Effect.CyclesPerLetter != 0 && c.Effect.CyclesPerLetter < 1 {
		return fmt.Errorf("effect.cycles_per_letter must be >= 1, got %v", c.Effect.CyclesPerLetter)
	}
	switch c.Showcase.Theme {
	case "", "auto", "dark", "light":
	default:
		return fmt.Errorf("showcase.theme must be auto, dark or light, got %q", c.Showcase.Theme)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
