package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	target := []rune("héllo")
	alphabet := []rune("#")
	first := func(int) int { return 0 }

	tests := []struct {
		name     string
		resolved float64
		want     string
	}{
		{"nothing resolved", 0, "#####"},
		{"fraction resolves the covered position", 0.5, "h####"},
		{"integer boundary", 2, "hé###"},
		{"multibyte position", 1.5, "hé###"},
		{"all resolved", 5, "héllo"},
		{"past the end", 9, "héllo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(target, tt.resolved, alphabet, first))
		})
	}
}

func TestRender_EmptyAlphabetShowsTarget(t *testing.T) {
	assert.Equal(t, "abc", Render([]rune("abc"), 0, nil, func(int) int { return 0 }))
}

func TestRender_DrawsFromAlphabet(t *testing.T) {
	alphabet := []rune(DefaultAlphabet)
	i := 0
	cycle := func(n int) int {
		i = (i + 1) % n
		return i
	}
	out := Render([]rune("zzzzzzzz"), 0, alphabet, cycle)
	for _, r := range out {
		assert.Contains(t, DefaultAlphabet, string(r))
	}
}

func TestTicksFor(t *testing.T) {
	assert.Equal(t, 0, TicksFor(0, 2))
	assert.Equal(t, 3, TicksFor(1, 2))
	assert.Equal(t, 5, TicksFor(2, 2))
	assert.Equal(t, 3, TicksFor(2, 1))
}
