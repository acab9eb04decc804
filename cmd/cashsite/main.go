package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"cashsite/internal/config"
	"cashsite/internal/logging"
	"cashsite/internal/scramble"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	configPath  string
	verbose     bool
	tickFlag    time.Duration
	cyclesFlag  float64
	charsetFlag string

	// Effective configuration, resolved before every command
	cfg *config.Config

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cashsite",
	Short: "cashsite - portfolio showcase with decoding text",
	Long: `cashsite is a terminal rendition of a music portfolio. Headings and
work titles decode from random symbols into their real text when they
start, are hovered or get focus.

Run without arguments to browse the works gallery.`,
	SilenceUsage: true,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.Sync()
	},
	RunE: runShowcase,
}

func init() {
	// Assigned here rather than in the literal: the hook compares against
	// rootCmd, which would otherwise be an initialization cycle.
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded

		if err := logging.Initialize(loggingOptions(cfg)); err != nil {
			return fmt.Errorf("failed to initialize file logging: %w", err)
		}
		logging.Boot("cashsite starting", "command", cmd.Name(), "config", resolvedConfigPath())

		// The showcase owns the terminal; stderr logging would tear it.
		if cmd == rootCmd {
			logger = zap.NewNop()
			return nil
		}

		zc := zap.NewProductionConfig()
		if verbose {
			zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if logging.IsDebugMode() {
			logger.Debug("file logging enabled",
				zap.String("dir", cfg.Logging.Dir),
				zap.Bool("effect_frames", cfg.Logging.IsCategoryEnabled(string(logging.CategoryEffect))))
		}
		return nil
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().DurationVar(&tickFlag, "tick", scramble.DefaultTickInterval, "Time between scramble frames")
	rootCmd.PersistentFlags().Float64Var(&cyclesFlag, "cycles", scramble.DefaultCyclesPerLetter, "Frames spent on each letter (>= 1)")
	rootCmd.PersistentFlags().StringVar(&charsetFlag, "charset", scramble.DefaultCharset, "Scramble alphabet name (see 'cashsite charsets')")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(framesCmd)
	rootCmd.AddCommand(charsetsCmd)
	rootCmd.AddCommand(pageCmd)
	rootCmd.AddCommand(configCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultPath()
}

// loadConfig reads the config file and applies flags the user set
// explicitly; flag defaults never override the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c, err := config.Load(resolvedConfigPath())
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("tick") {
		c.Effect.TickInterval = tickFlag.String()
	}
	if flags.Changed("cycles") {
		c.Effect.CyclesPerLetter = cyclesFlag
	}
	if flags.Changed("charset") {
		c.Effect.Charset = charsetFlag
		c.Effect.Alphabet = ""
	}
	if verbose {
		c.Logging.DebugMode = true
		c.Logging.Level = "debug"
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}

func loggingOptions(c *config.Config) logging.Options {
	return logging.Options{
		DebugMode:  c.Logging.DebugMode,
		Level:      c.Logging.Level,
		Format:     c.Logging.Format,
		Dir:        c.Logging.Dir,
		Categories: c.Logging.Categories,
	}
}

// effectOptions maps the effect section of c onto scramble options.
func effectOptions(c *config.Config) ([]scramble.Option, error) {
	alphabet := c.Effect.Alphabet
	if alphabet == "" {
		name := c.Effect.Charset
		if name == "" {
			name = scramble.DefaultCharset
		}
		var ok bool
		alphabet, ok = scramble.LookupCharset(name)
		if !ok {
			return nil, fmt.Errorf("unknown charset %q (have %v)", name, scramble.CharsetNames())
		}
	}
	return []scramble.Option{
		scramble.WithInterval(c.GetTickInterval()),
		scramble.WithCyclesPerLetter(c.GetCyclesPerLetter()),
		scramble.WithAlphabet(alphabet),
	}, nil
}

// commandContext returns the command's context, or Background when the
// command was not started through Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
