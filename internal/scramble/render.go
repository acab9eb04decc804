package scramble

import "strings"

// Render builds one frame of the effect. Position i shows target[i] when
// i < resolved and otherwise alphabet[pick(len(alphabet))]. A scrambled
// position may show its true rune by chance; only positions below
// resolved are guaranteed.
func Render(target []rune, resolved float64, alphabet []rune, pick func(n int) int) string {
	var sb strings.Builder
	sb.Grow(len(target))
	for i, r := range target {
		if float64(i) < resolved || len(alphabet) == 0 {
			sb.WriteRune(r)
			continue
		}
		sb.WriteRune(alphabet[pick(len(alphabet))])
	}
	return sb.String()
}

// TicksFor returns how many ticks a full run over n runes takes at the
// given cycles per letter: the run ends on the first tick after which
// the resolved length exceeds n.
func TicksFor(n int, cyclesPerLetter float64) int {
	if n == 0 {
		return 0
	}
	step := 1 / cyclesPerLetter
	ticks := 0
	for resolved := 0.0; resolved <= float64(n); resolved += step {
		ticks++
	}
	return ticks
}
