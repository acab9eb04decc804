package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cashsite/internal/config"
	"cashsite/internal/scramble"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// resetFlags puts every flag of cmd and its children back to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"CASHSITE_CONTENT", "CASHSITE_TICK_MS", "CASHSITE_CHARSET", "CASHSITE_DEBUG", "CASHSITE_DARK_MODE"} {
		t.Setenv(name, "")
	}
}

// execute runs the CLI with args against a config file in a temp dir.
func execute(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	clearEnv(t)
	resetFlags(rootCmd)
	t.Cleanup(func() {
		resetFlags(rootCmd)
		cfg = nil
		logger = nil
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--config", cfgPath))
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func tempConfig(t *testing.T) string {
	return filepath.Join(t.TempDir(), "config.yaml")
}

func TestEffectOptions(t *testing.T) {
	c := config.DefaultConfig()
	opts, err := effectOptions(c)
	require.NoError(t, err)
	e := scramble.New("x", opts...)
	defer e.Close()
	assert.Equal(t, scramble.DefaultTickInterval, e.Interval())

	c.Effect.TickInterval = "20ms"
	opts, err = effectOptions(c)
	require.NoError(t, err)
	e2 := scramble.New("x", opts...)
	defer e2.Close()
	assert.Equal(t, 20*time.Millisecond, e2.Interval())

	c.Effect.Charset = "nope"
	_, err = effectOptions(c)
	assert.ErrorContains(t, err, "unknown charset")

	c.Effect.Alphabet = "01"
	_, err = effectOptions(c)
	assert.NoError(t, err, "a literal alphabet wins over the charset name")
}

func TestFrames_Deterministic(t *testing.T) {
	path := tempConfig(t)
	first, err := execute(t, path, "frames", "AB", "--seed", "7")
	require.NoError(t, err)
	second, err := execute(t, path, "frames", "AB", "--seed", "7")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	lines := strings.Split(strings.TrimSpace(first), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "5\t2\tAB", lines[4])
	assert.True(t, strings.HasPrefix(lines[0], "1\t0\t"))
}

func TestFrames_SeedsDiffer(t *testing.T) {
	path := tempConfig(t)
	a, err := execute(t, path, "frames", "Selected Works", "--seed", "1")
	require.NoError(t, err)
	b, err := execute(t, path, "frames", "Selected Works", "--seed", "2")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestFrames_JSON(t *testing.T) {
	out, err := execute(t, tempConfig(t), "frames", "héllo", "--format", "json", "--charset", "binary")
	require.NoError(t, err)

	var frames []scramble.Frame
	dec := json.NewDecoder(strings.NewReader(out))
	for dec.More() {
		var f scramble.Frame
		require.NoError(t, dec.Decode(&f))
		frames = append(frames, f)
	}
	require.Len(t, frames, scramble.TicksFor(5, scramble.DefaultCyclesPerLetter))
	last := frames[len(frames)-1]
	assert.True(t, last.Done)
	assert.Equal(t, "héllo", last.Text)
	for _, r := range frames[0].Text {
		assert.Contains(t, "01", string(r))
	}
}

func TestFrames_BadFormat(t *testing.T) {
	_, err := execute(t, tempConfig(t), "frames", "AB", "--format", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestFrames_Cycles(t *testing.T) {
	out, err := execute(t, tempConfig(t), "frames", "AB", "--cycles", "1")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), scramble.TicksFor(2, 1))
}

func TestPlay_PrintsFinalLines(t *testing.T) {
	out, err := execute(t, tempConfig(t), "play", "AB", "Hello", "--tick", "1ms")
	require.NoError(t, err)
	assert.Equal(t, "AB\nHello\n", out)
}

func TestPlay_DefaultText(t *testing.T) {
	out, err := execute(t, tempConfig(t), "play", "--tick", "1ms")
	require.NoError(t, err)
	assert.Equal(t, "Selected Works\n", out)
}

func TestPlay_Trace(t *testing.T) {
	out, err := execute(t, tempConfig(t), "play", "AB", "Hello", "--tick", "1ms", "--trace")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, scramble.TicksFor(2, 2)+scramble.TicksFor(5, 2))
	assert.Contains(t, lines, "0\t5\tAB")
	assert.Contains(t, lines, "1\t11\tHello")
}

func TestPlay_EmptyLine(t *testing.T) {
	out, err := execute(t, tempConfig(t), "play", "", "x", "--tick", "1ms")
	require.NoError(t, err)
	assert.Equal(t, "\nx\n", out)
}

func TestPlayer_CancelRevertsLine(t *testing.T) {
	var buf bytes.Buffer
	p := &player{out: &buf, lines: []string{"waiting"}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.play(ctx, 0, "waiting", []scramble.Option{scramble.WithInterval(time.Hour)})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "waiting", p.lines[0])
}

func TestPlayer_RedrawsInPlace(t *testing.T) {
	var buf bytes.Buffer
	p := &player{out: &buf, lines: []string{"a", "b"}, tty: true}

	p.onFrame(0, scramble.Frame{Text: "x"})
	assert.NotContains(t, buf.String(), ansi.CursorUp(2))
	p.onFrame(1, scramble.Frame{Text: "y"})

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, ansi.CursorUp(2)))
	assert.True(t, strings.HasSuffix(out, "\r"+ansi.EraseEntireLine+"x\n\r"+ansi.EraseEntireLine+"y\n"))
}

func TestCharsets(t *testing.T) {
	out, err := execute(t, tempConfig(t), "charsets", "--charset", "blocks")
	require.NoError(t, err)
	for _, name := range scramble.CharsetNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "…", "long alphabets are truncated")

	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "blocks") {
			assert.Contains(t, line, "●")
		}
		if strings.Contains(line, "symbols") {
			assert.NotContains(t, line, "●")
		}
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := tempConfig(t)

	out, err := execute(t, path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, path)
	_, err = os.Stat(path)
	require.NoError(t, err)

	_, err = execute(t, path, "config", "init")
	assert.ErrorContains(t, err, "already exists")

	_, err = execute(t, path, "config", "init", "--force")
	assert.NoError(t, err)

	out, err = execute(t, path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "tick_interval: 50ms")
	assert.Contains(t, out, "charset: symbols")

	out, err = execute(t, path, "config", "show", "--tick", "20ms", "--charset", "braille")
	require.NoError(t, err)
	assert.Contains(t, out, "tick_interval: 20ms")
	assert.Contains(t, out, "charset: braille")
}

func TestConfig_EnvOverride(t *testing.T) {
	path := tempConfig(t)
	clearEnv(t)
	t.Setenv("CASHSITE_TICK_MS", "30")

	resetFlags(rootCmd)
	defer resetFlags(rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "show", "--config", path})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))
	assert.Contains(t, out.String(), "tick_interval: 30ms")
}

func TestInvalidConfigFile(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("effect:\n  cycles_per_letter: 0.5\n"), 0644))

	_, err := execute(t, path, "charsets")
	assert.ErrorContains(t, err, "invalid config")
}

func TestUnknownCharsetFlag(t *testing.T) {
	logger = zap.NewNop()
	_, err := execute(t, tempConfig(t), "frames", "AB", "--charset", "klingon")
	assert.ErrorContains(t, err, "unknown charset")
}

func TestPage_Samples(t *testing.T) {
	out, err := execute(t, tempConfig(t), "page", "store")
	require.NoError(t, err)
	assert.Contains(t, out, "Tape Weather Vol. 1")
	assert.Contains(t, out, "youtube-nocookie.com/embed/dQw4w9WgXcQ")
	assert.Contains(t, out, "Support the work")

	out, err = execute(t, tempConfig(t), "page", "services", "--open", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Production")
	assert.Contains(t, out, "Stereo mixes")
	assert.NotContains(t, out, "Arrangement, sound selection")

	_, err = execute(t, tempConfig(t), "page", "services", "--open", "9")
	assert.ErrorContains(t, err, "--open must be between 0 and 6")

	_, err = execute(t, tempConfig(t), "page", "blog")
	assert.ErrorContains(t, err, "unknown page")
}

func TestPage_FromConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	perf := filepath.Join(dir, "performance.json")
	require.NoError(t, os.WriteFile(perf, []byte(`{
		"live": [{"title": "Rooftop Set", "link": "https://youtu.be/dQw4w9WgXcQ", "credits": {"sound_engineer": "Ada"}}],
		"multimedia": []
	}`), 0644))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("showcase:\n  performance_path: "+perf+"\n"), 0644))

	out, err := execute(t, path, "page", "performance")
	require.NoError(t, err)
	assert.Contains(t, out, "Rooftop Set")
	assert.Contains(t, out, "Sound Engineer: Ada")
	assert.Contains(t, out, "youtube-nocookie.com/embed/dQw4w9WgXcQ")
	assert.NotContains(t, out, "Signal Bloom", "configured file replaces the sample")

	require.NoError(t, os.WriteFile(perf, []byte(`{"live": "nope"}`), 0644))
	_, err = execute(t, path, "page", "performance")
	assert.ErrorContains(t, err, "failed to parse performance")
}
