package scramble

import (
	"math/rand/v2"
	"sync"
	"time"

	"cashsite/internal/clock"
	"cashsite/internal/logging"

	"github.com/google/uuid"
)

const (
	// DefaultTickInterval is the time between frames.
	DefaultTickInterval = 50 * time.Millisecond

	// DefaultCyclesPerLetter is how many ticks each position takes to
	// become resolved.
	DefaultCyclesPerLetter = 2.0
)

// Frame is one published state of an effect.
type Frame struct {
	Text     string  `json:"text"`
	Resolved float64 `json:"resolved"` // resolved length the frame was rendered with
	Tick     int     `json:"tick"`     // tick number within the run; unchanged by Stop
	Done     bool    `json:"done"`     // no further ticks will follow
}

// Option configures an Effect.
type Option func(*Effect)

// WithClock schedules ticks on c instead of the real clock.
func WithClock(c clock.Clock) Option {
	return func(e *Effect) {
		if c != nil {
			e.clock = c
		}
	}
}

// WithInterval sets the tick interval. Non-positive values are ignored.
func WithInterval(d time.Duration) Option {
	return func(e *Effect) {
		if d > 0 {
			e.interval = d
		}
	}
}

// WithCyclesPerLetter sets ticks per resolved position. Values below 1
// are ignored so the final frame always shows the whole target.
func WithCyclesPerLetter(n float64) Option {
	return func(e *Effect) {
		if n >= 1 {
			e.step = 1 / n
		}
	}
}

// WithAlphabet sets the scramble alphabet. Empty values are ignored.
func WithAlphabet(alphabet string) Option {
	return func(e *Effect) {
		if runes := []rune(alphabet); len(runes) > 0 {
			e.alphabet = runes
		}
	}
}

// WithRand draws scramble runes from r, for reproducible frames.
func WithRand(r *rand.Rand) Option {
	return func(e *Effect) {
		if r != nil {
			e.pick = r.IntN
		}
	}
}

// WithID overrides the generated instance id.
func WithID(id string) Option {
	return func(e *Effect) {
		if id != "" {
			e.id = id
		}
	}
}

// Effect is one scramble-text instance.
type Effect struct {
	id       string
	clock    clock.Clock
	interval time.Duration
	step     float64
	alphabet []rune
	pick     func(n int) int

	mu       sync.Mutex
	source   string // latest target set by the host
	target   []rune // target of the current or last run
	text     string
	resolved float64
	tick     int
	timer    *clock.Timer
	gen      uint64
	closed   bool
	subs     map[int]func(Frame)
	nextSub  int

	// pubMu keeps frames in the order they were produced. It is taken
	// before mu is released, so observers must not call Start or Stop
	// synchronously.
	pubMu sync.Mutex
}

// New creates an idle effect displaying target.
func New(target string, opts ...Option) *Effect {
	e := &Effect{
		id:       uuid.NewString(),
		clock:    clock.Real(),
		interval: DefaultTickInterval,
		step:     1 / DefaultCyclesPerLetter,
		alphabet: []rune(DefaultAlphabet),
		pick:     rand.IntN,
		source:   target,
		target:   []rune(target),
		text:     target,
		subs:     make(map[int]func(Frame)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ID returns the instance id.
func (e *Effect) ID() string { return e.id }

// Interval returns the tick interval.
func (e *Effect) Interval() time.Duration { return e.interval }

// Text returns the currently displayed string.
func (e *Effect) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// Target returns the string the next Activate will resolve to.
func (e *Effect) Target() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.source
}

// Running reports whether a run is in progress.
func (e *Effect) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.timer != nil
}

// Resolved returns the current resolved-prefix length.
func (e *Effect) Resolved() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resolved
}

// Ticks returns the number of ticks in the current or last run.
func (e *Effect) Ticks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick
}

// Subscribe registers fn to receive every published frame. The returned
// func removes it.
func (e *Effect) Subscribe(fn func(Frame)) (unsubscribe func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return func() {}
	}
	id := e.nextSub
	e.nextSub++
	e.subs[id] = fn
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.subs, id)
	}
}

// Start cancels any run in progress and begins resolving target. An empty
// target displays "" and schedules nothing.
func (e *Effect) Start(target string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.cancelLocked()
	e.source = target
	e.target = []rune(target)
	e.resolved = 0
	e.tick = 0

	if len(e.target) == 0 {
		e.text = ""
		e.publishAndUnlock(Frame{Done: true})
		return
	}

	e.scheduleLocked(e.gen)
	runes := len(e.target)
	e.mu.Unlock()
	logging.Effect("scramble started", "id", e.id, "runes", runes)
}

// Stop cancels the active run, if any, and shows the target at once.
func (e *Effect) Stop() {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	wasRunning := e.timer != nil
	e.cancelLocked()
	e.text = string(e.target)
	frame := Frame{Text: e.text, Resolved: float64(len(e.target)), Tick: e.tick, Done: true}
	e.publishAndUnlock(frame)
	if wasRunning {
		logging.Effect("scramble stopped", "id", e.id, "tick", frame.Tick)
	}
}

// Activate starts a run over the current target.
func (e *Effect) Activate() {
	e.Start(e.Target())
}

// Deactivate stops the effect.
func (e *Effect) Deactivate() {
	e.Stop()
}

// SetTarget replaces the target used by the next run. While idle the
// displayed text follows immediately; a run in progress is not touched.
func (e *Effect) SetTarget(target string) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	e.source = target
	if e.timer != nil {
		e.mu.Unlock()
		return
	}
	e.target = []rune(target)
	e.text = target
	e.publishAndUnlock(Frame{Text: target, Resolved: float64(len(e.target)), Tick: e.tick, Done: true})
}

// Close releases the timer and all subscribers. Later calls are no-ops.
func (e *Effect) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.cancelLocked()
	e.closed = true
	e.subs = nil
	logging.Effect("scramble closed", "id", e.id)
}

// cancelLocked stops the pending timer and invalidates any callback
// already in flight.
func (e *Effect) cancelLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

func (e *Effect) scheduleLocked(gen uint64) {
	e.timer = e.clock.AfterFunc(e.interval, func() { e.onTick(gen) })
}

func (e *Effect) onTick(gen uint64) {
	e.mu.Lock()
	if e.closed || gen != e.gen || e.timer == nil {
		e.mu.Unlock()
		return
	}

	e.tick++
	e.text = Render(e.target, e.resolved, e.alphabet, e.pick)
	frame := Frame{Text: e.text, Resolved: e.resolved, Tick: e.tick}
	if logging.IsCategoryEnabled(logging.CategoryEffect) {
		logging.Get(logging.CategoryEffect).Debugw("frame", "id", e.id, "tick", e.tick, "resolved", e.resolved)
	}

	e.resolved += e.step
	if e.resolved > float64(len(e.target)) {
		e.timer = nil
		frame.Done = true
		logging.Effect("scramble resolved", "id", e.id, "ticks", e.tick)
	} else {
		e.scheduleLocked(gen)
	}
	e.publishAndUnlock(frame)
}

// publishAndUnlock hands frame to the subscribers in production order and
// releases mu before calling them.
func (e *Effect) publishAndUnlock(frame Frame) {
	subs := make([]func(Frame), 0, len(e.subs))
	for _, fn := range e.subs {
		subs = append(subs, fn)
	}
	e.pubMu.Lock()
	e.mu.Unlock()
	defer e.pubMu.Unlock()
	for _, fn := range subs {
		fn(frame)
	}
}
