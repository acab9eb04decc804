package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"

	"cashsite/cmd/cashsite/ui"
	"cashsite/internal/scramble"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var playTrace bool

// playCmd animates text in the terminal
var playCmd = &cobra.Command{
	Use:   "play [text...]",
	Short: "Decode one or more lines of text in the terminal",
	Long: `Runs the scramble effect once for every argument, each on its own line,
all at the same time. On a terminal the lines are redrawn in place; when
output is redirected only the final lines are printed, or every frame
with --trace.

Example:
  cashsite play "Selected Works" "Mixing & Mastering" --charset braille`,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&playTrace, "trace", false, "Print every frame instead of redrawing")
}

func runPlay(cmd *cobra.Command, args []string) error {
	lines := args
	if len(lines) == 0 {
		lines = []string{ui.HeaderText}
	}
	opts, err := effectOptions(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	p := &player{
		out:   out,
		lines: append([]string(nil), lines...),
		tty:   isTerminal(out),
		trace: playTrace,
	}
	logger.Debug("Playing", zap.Int("lines", len(lines)), zap.Bool("tty", p.tty))

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		g.Go(func() error {
			return p.play(ctx, i, line, opts)
		})
	}
	err = g.Wait()

	if !p.tty && !p.trace {
		for _, line := range p.lines {
			fmt.Fprintln(out, line)
		}
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// player writes the frames of several concurrent effects to one writer.
type player struct {
	mu    sync.Mutex
	out   io.Writer
	lines []string
	tty   bool
	trace bool
	drawn bool
}

// play runs one effect to completion or until ctx is done.
func (p *player) play(ctx context.Context, i int, line string, opts []scramble.Option) error {
	e := scramble.New(line, opts...)
	defer e.Close()

	done := make(chan struct{})
	var once sync.Once
	unsubscribe := e.Subscribe(func(f scramble.Frame) {
		p.onFrame(i, f)
		if f.Done {
			once.Do(func() { close(done) })
		}
	})
	defer unsubscribe()

	e.Start(line)
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		e.Stop()
		return ctx.Err()
	}
}

func (p *player) onFrame(i int, f scramble.Frame) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.lines[i] = f.Text
	switch {
	case p.tty:
		p.redrawLocked()
	case p.trace:
		fmt.Fprintf(p.out, "%d\t%d\t%s\n", i, f.Tick, f.Text)
	}
}

func (p *player) redrawLocked() {
	if p.drawn {
		io.WriteString(p.out, ansi.CursorUp(len(p.lines)))
	}
	for _, line := range p.lines {
		io.WriteString(p.out, "\r"+ansi.EraseEntireLine+line+"\n")
	}
	p.drawn = true
}
