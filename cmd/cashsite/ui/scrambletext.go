package ui

import (
	"sync"

	"cashsite/internal/logging"
	"cashsite/internal/scramble"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// FrameMsg carries a new frame of the ScrambleText with the given ID.
type FrameMsg struct {
	ID    string
	Frame scramble.Frame
}

// ScrambleText is a piece of text that decodes itself on hover or focus.
// Frames are produced on the effect's timer goroutine and handed to the
// bubbletea loop through a one-slot channel that always holds the newest
// frame.
type ScrambleText struct {
	id     string
	host   *scramble.Host
	style  lipgloss.Style
	frames chan scramble.Frame
	done   chan struct{}

	unsubscribe func()
	closeOnce   sync.Once
	last        scramble.Frame
}

// NewScrambleText attaches an effect to text. The binding's Class is
// resolved against styles.
func NewScrambleText(text string, binding scramble.Binding, styles Styles, opts ...scramble.Option) *ScrambleText {
	id := uuid.NewString()
	s := &ScrambleText{
		id:     id,
		style:  styles.Tag(binding.Class),
		frames: make(chan scramble.Frame, 1),
		done:   make(chan struct{}),
	}
	opts = append([]scramble.Option{scramble.WithID(id)}, opts...)
	s.host = scramble.Attach(text, binding, opts...)
	s.unsubscribe = s.host.Effect().Subscribe(s.deliver)
	logging.UI("scramble text attached", "id", id, "text", text, "auto_start", binding.AutoStart)
	return s
}

// deliver replaces any unread frame with f.
func (s *ScrambleText) deliver(f scramble.Frame) {
	for {
		select {
		case <-s.done:
			return
		case s.frames <- f:
			return
		default:
		}
		select {
		case <-s.frames:
		default:
		}
	}
}

// ID routes FrameMsg values to this component.
func (s *ScrambleText) ID() string { return s.id }

// Effect exposes the underlying effect.
func (s *ScrambleText) Effect() *scramble.Effect { return s.host.Effect() }

// Text is what is currently displayed.
func (s *ScrambleText) Text() string { return s.host.Effect().Text() }

// Target is the text being decoded into.
func (s *ScrambleText) Target() string { return s.host.Effect().Target() }

// Running reports whether a decode is in progress.
func (s *ScrambleText) Running() bool { return s.host.Effect().Running() }

// LastFrame is the most recent frame handled by Update.
func (s *ScrambleText) LastFrame() scramble.Frame { return s.last }

// Hover is the pointer trigger: inside starts a decode, leaving reverts.
func (s *ScrambleText) Hover(inside bool) {
	if inside {
		s.host.Enter()
	} else {
		s.host.Leave()
	}
}

// Focus starts a decode when the binding is hover-enabled.
func (s *ScrambleText) Focus() { s.host.Enter() }

// Blur reverts to the target.
func (s *ScrambleText) Blur() { s.host.Leave() }

// Hovered reports whether the pointer or focus is on the text.
func (s *ScrambleText) Hovered() bool { return s.host.Hovered() }

// Replay decodes again regardless of hover state.
func (s *ScrambleText) Replay() { s.host.Effect().Activate() }

// SetText changes the target for the next decode.
func (s *ScrambleText) SetText(text string) { s.host.Effect().SetTarget(text) }

// Close releases the effect and unblocks any pending frame listener.
func (s *ScrambleText) Close() {
	s.closeOnce.Do(func() {
		s.unsubscribe()
		s.host.Close()
		close(s.done)
	})
}

// Init starts listening for frames.
func (s *ScrambleText) Init() tea.Cmd {
	return s.waitForFrame()
}

// Update consumes this component's FrameMsg and re-arms the listener.
// Messages for other components are ignored.
func (s *ScrambleText) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != s.id {
		return nil
	}
	s.last = frame.Frame
	return s.waitForFrame()
}

// View renders the displayed text with the component's style.
func (s *ScrambleText) View() string {
	return s.style.Render(s.Text())
}

// waitForFrame blocks until a frame arrives or the component is closed.
// A closed component yields a nil message, which bubbletea drops.
func (s *ScrambleText) waitForFrame() tea.Cmd {
	frames, done, id := s.frames, s.done, s.id
	return func() tea.Msg {
		select {
		case f := <-frames:
			return FrameMsg{ID: id, Frame: f}
		case <-done:
			return nil
		}
	}
}
