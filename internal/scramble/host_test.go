package scramble

import (
	"testing"

	"cashsite/internal/clock"

	"github.com/stretchr/testify/assert"
)

func TestAttach_AutoStart(t *testing.T) {
	fake := clock.Fake(epoch)
	h := Attach("auto", Binding{AutoStart: true}, WithClock(fake))
	defer h.Close()

	assert.True(t, h.Effect().Running())
	assert.Equal(t, 1, fake.PendingCount())
}

func TestAttach_NoAutoStart(t *testing.T) {
	fake := clock.Fake(epoch)
	h := Attach("still", DefaultBinding(), WithClock(fake))
	defer h.Close()

	assert.False(t, h.Effect().Running())
	assert.Equal(t, "still", h.Effect().Text())
}

func TestHost_EnterLeave(t *testing.T) {
	fake := clock.Fake(epoch)
	h := Attach("hover me", DefaultBinding(), WithClock(fake))
	defer h.Close()

	h.Enter()
	assert.True(t, h.Hovered())
	assert.True(t, h.Effect().Running())

	fake.Advance(h.Effect().Interval())
	fake.Advance(h.Effect().Interval())
	ticks := h.Effect().Ticks()

	// Motion inside the text does not restart the run.
	h.Enter()
	assert.Equal(t, ticks, h.Effect().Ticks())

	h.Leave()
	assert.False(t, h.Hovered())
	assert.False(t, h.Effect().Running())
	assert.Equal(t, "hover me", h.Effect().Text())
	assert.Equal(t, 0, fake.PendingCount())
}

func TestHost_HoverDisabled(t *testing.T) {
	fake := clock.Fake(epoch)
	h := Attach("static", Binding{EnableOnHover: false}, WithClock(fake))
	defer h.Close()

	h.Enter()
	assert.False(t, h.Effect().Running())
	assert.False(t, h.Hovered())
	h.Leave()
	assert.Equal(t, 0, fake.PendingCount())
}

func TestHost_CloseReleasesAutoStartedRun(t *testing.T) {
	fake := clock.Fake(epoch)
	h := Attach("teardown", Binding{AutoStart: true, EnableOnHover: true, Class: "title"}, WithClock(fake))
	assert.Equal(t, "title", h.Binding().Class)

	h.Close()
	assert.Equal(t, 0, fake.PendingCount())
	h.Enter()
	assert.Equal(t, 0, fake.PendingCount())
}
