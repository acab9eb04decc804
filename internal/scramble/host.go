package scramble

import "sync"

// Binding is how a hosting surface wires an effect to its input events.
type Binding struct {
	// EnableOnHover maps pointer enter/leave and focus/blur to
	// Activate/Deactivate.
	EnableOnHover bool
	// AutoStart runs the effect once when it is attached.
	AutoStart bool
	// Class is an opaque styling tag for the renderer.
	Class string
}

// DefaultBinding hovers but does not auto-start.
func DefaultBinding() Binding {
	return Binding{EnableOnHover: true}
}

// Host attaches an Effect to a piece of displayed text and applies the
// triggering policy of its Binding.
type Host struct {
	effect  *Effect
	binding Binding

	mu      sync.Mutex
	hovered bool
}

// Attach creates the effect for text and auto-starts it when the binding
// asks for it.
func Attach(text string, binding Binding, opts ...Option) *Host {
	h := &Host{
		effect:  New(text, opts...),
		binding: binding,
	}
	if binding.AutoStart {
		h.effect.Activate()
	}
	return h
}

// Effect returns the underlying effect.
func (h *Host) Effect() *Effect { return h.effect }

// Binding returns the wiring configuration.
func (h *Host) Binding() Binding { return h.binding }

// Hovered reports whether the pointer (or focus) is on the text.
func (h *Host) Hovered() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hovered
}

// Enter is the pointer-enter / focus trigger.
func (h *Host) Enter() {
	if !h.binding.EnableOnHover || !h.setHovered(true) {
		return
	}
	h.effect.Activate()
}

// Leave is the pointer-leave / blur trigger.
func (h *Host) Leave() {
	if !h.binding.EnableOnHover || !h.setHovered(false) {
		return
	}
	h.effect.Deactivate()
}

// Close disposes of the effect.
func (h *Host) Close() {
	h.effect.Close()
}

// setHovered records the state and reports whether it changed.
func (h *Host) setHovered(v bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.hovered == v {
		return false
	}
	h.hovered = v
	return true
}
