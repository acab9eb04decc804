// Package ui is the terminal showcase: scrambling text components, the
// works gallery and their styling.
package ui

import (
	"sync"
	"time"

	"cashsite/internal/clock"
)

// DefaultReloadDuration is how long content writes must settle before the
// gallery reloads.
const DefaultReloadDuration = 250 * time.Millisecond

// Debouncer runs a function once a burst of calls has gone quiet.
type Debouncer struct {
	mu       sync.Mutex
	clock    clock.Clock
	timer    *clock.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer. A nil clock uses real time.
func NewDebouncer(duration time.Duration, clk clock.Clock) *Debouncer {
	if clk == nil {
		clk = clock.Real()
	}
	return &Debouncer{
		clock:    clk,
		duration: duration,
	}
}

// Debounce executes fn after the debounce duration has elapsed without any
// new calls. Rapid successive calls reset the timer.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.timer.Stop()
	d.timer = d.clock.AfterFunc(d.duration, fn)
}

// Cancel cancels any pending call.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.timer.Stop()
	d.timer = nil
}

// Immediate executes fn now and cancels any pending call.
func (d *Debouncer) Immediate(fn func()) {
	d.Cancel()
	fn()
}
