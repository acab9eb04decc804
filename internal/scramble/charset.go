package scramble

import (
	"sort"
	"sync"
)

// DefaultAlphabet is the symbol set drawn for unresolved positions.
const DefaultAlphabet = "!@#$%^&*():{};|,.<>/?"

// DefaultCharset names DefaultAlphabet in the charset registry.
const DefaultCharset = "symbols"

// Braille patterns U+2801..U+28FF (skip U+2800 blank).
const (
	brailleBase  = 0x2801
	brailleCount = 0x28FF - brailleBase + 1
)

var (
	charsetMu sync.RWMutex
	charsets  = make(map[string][]rune)
)

func init() {
	RegisterCharset(DefaultCharset, DefaultAlphabet)
	RegisterCharset("blocks", "░▒▓█▌▐▀▄")
	RegisterCharset("binary", "01")

	braille := make([]rune, brailleCount)
	for i := range braille {
		braille[i] = rune(brailleBase + i)
	}
	RegisterCharset("braille", string(braille))
}

// RegisterCharset associates a name with an alphabet. It panics on
// duplicate names or an empty alphabet.
func RegisterCharset(name, alphabet string) {
	runes := []rune(alphabet)
	if len(runes) == 0 {
		panic("scramble: empty alphabet for charset " + name)
	}
	charsetMu.Lock()
	defer charsetMu.Unlock()
	if _, exists := charsets[name]; exists {
		panic("scramble: duplicate charset " + name)
	}
	charsets[name] = runes
}

// LookupCharset returns the alphabet registered under name.
func LookupCharset(name string) (string, bool) {
	charsetMu.RLock()
	defer charsetMu.RUnlock()
	runes, ok := charsets[name]
	if !ok {
		return "", false
	}
	return string(runes), true
}

// CharsetNames returns the registered charset names, sorted.
func CharsetNames() []string {
	charsetMu.RLock()
	defer charsetMu.RUnlock()
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
