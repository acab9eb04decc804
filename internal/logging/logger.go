// Package logging provides config-driven categorized logging for cashsite.
// Loggers are zap SugaredLoggers that write to a single file under the
// configured log directory. With debug mode off every category is a no-op,
// so the interactive showcase never has its screen corrupted by log output.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot    Category = "boot"    // Startup, flag and config resolution
	CategoryConfig  Category = "config"  // Config load/save
	CategoryEffect  Category = "effect"  // Scramble effect lifecycle
	CategoryContent Category = "content" // Portfolio loading and file watching
	CategoryUI      Category = "ui"      // Bubble Tea models
)

// Options mirrors the relevant parts of config.LoggingConfig
// to avoid an import cycle.
type Options struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Format     string // json, console
	Dir        string
	Categories map[string]bool
}

var (
	mu      sync.RWMutex
	opts    Options
	base    *zap.Logger
	loggers = make(map[Category]*zap.SugaredLogger)
	nop     = zap.NewNop().Sugar()
)

// Initialize builds the shared zap logger. Safe to call again; the
// previous logger is synced and replaced.
func Initialize(o Options) error {
	mu.Lock()
	defer mu.Unlock()

	if base != nil {
		_ = base.Sync()
	}
	opts = o
	base = nil
	loggers = make(map[Category]*zap.SugaredLogger)

	if !o.DebugMode {
		return nil
	}

	dir := o.Dir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "cashsite")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	level, err := zapcore.ParseLevel(o.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	if o.Format == "console" {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{filepath.Join(dir, time.Now().Format("2006-01-02")+"_cashsite.log")}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	base = logger

	logger.Sugar().Named(string(CategoryBoot)).Infow("logging initialized",
		"dir", dir,
		"level", level.String(),
		"format", o.Format,
	)
	return nil
}

// IsDebugMode returns whether logging is enabled at all.
func IsDebugMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return opts.DebugMode
}

// IsCategoryEnabled returns whether a specific category is enabled.
// Categories missing from the filter are enabled.
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return categoryEnabledLocked(category)
}

func categoryEnabledLocked(category Category) bool {
	if !opts.DebugMode || base == nil {
		return false
	}
	if opts.Categories == nil {
		return true
	}
	enabled, exists := opts.Categories[string(category)]
	if !exists {
		return true
	}
	return enabled
}

// Get returns (or creates) the logger for a category.
// Returns a no-op logger if debug mode or the category is disabled.
func Get(category Category) *zap.SugaredLogger {
	mu.RLock()
	if !categoryEnabledLocked(category) {
		mu.RUnlock()
		return nop
	}
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if base == nil {
		return nop
	}
	if l, ok := loggers[category]; ok {
		return l
	}
	l := base.Sugar().Named(string(category))
	loggers[category] = l
	return l
}

// Sync flushes buffered entries. Call at shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if base != nil {
		_ = base.Sync()
	}
}

// Boot logs to the boot category
func Boot(msg string, keysAndValues ...interface{}) {
	Get(CategoryBoot).Infow(msg, keysAndValues...)
}

// Effect logs to the effect category at debug level; effects tick often.
func Effect(msg string, keysAndValues ...interface{}) {
	Get(CategoryEffect).Debugw(msg, keysAndValues...)
}

// Content logs to the content category
func Content(msg string, keysAndValues ...interface{}) {
	Get(CategoryContent).Infow(msg, keysAndValues...)
}

// ContentError logs an error to the content category
func ContentError(msg string, keysAndValues ...interface{}) {
	Get(CategoryContent).Errorw(msg, keysAndValues...)
}

// UI logs to the ui category at debug level
func UI(msg string, keysAndValues ...interface{}) {
	Get(CategoryUI).Debugw(msg, keysAndValues...)
}

// Timer helps measure operation duration
type Timer struct {
	category Category
	op       string
	start    time.Time
}

// StartTimer begins timing an operation
func StartTimer(category Category, operation string) *Timer {
	return &Timer{
		category: category,
		op:       operation,
		start:    time.Now(),
	}
}

// Stop ends the timer and logs the duration
func (t *Timer) Stop() time.Duration {
	elapsed := time.Since(t.start)
	Get(t.category).Debugw(t.op+" completed", "elapsed", elapsed)
	return elapsed
}

// StopWithThreshold logs a warning if duration exceeds threshold
func (t *Timer) StopWithThreshold(threshold time.Duration) time.Duration {
	elapsed := time.Since(t.start)
	if elapsed > threshold {
		Get(t.category).Warnw(t.op+" slow", "elapsed", elapsed, "threshold", threshold)
	} else {
		Get(t.category).Debugw(t.op+" completed", "elapsed", elapsed)
	}
	return elapsed
}
