package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Neutral palette with a single warm accent.
var (
	// Dark mode (default)
	DarkBackground = lipgloss.Color("#171717") // neutral-900
	DarkForeground = lipgloss.Color("#f5f5f5") // neutral-100
	DarkMuted      = lipgloss.Color("#a3a3a3") // neutral-400
	DarkSubtle     = lipgloss.Color("#525252") // neutral-600
	DarkBorder     = lipgloss.Color("#404040") // neutral-700
	DarkCard       = lipgloss.Color("#262626") // neutral-800

	// Light mode
	LightBackground = lipgloss.Color("#f5f5f5")
	LightForeground = lipgloss.Color("#171717")
	LightMuted      = lipgloss.Color("#525252")
	LightSubtle     = lipgloss.Color("#a3a3a3")
	LightBorder     = lipgloss.Color("#d4d4d4")
	LightCard       = lipgloss.Color("#e5e5e5")

	Accent      = lipgloss.Color("#ca8a04") // yellow-600
	Destructive = lipgloss.Color("#dc2626")
)

// Theme holds the current color scheme.
type Theme struct {
	Name       string
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	Accent     lipgloss.Color
	IsDark     bool
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Name:       "dark",
		Background: DarkBackground,
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Subtle:     DarkSubtle,
		Border:     DarkBorder,
		Card:       DarkCard,
		Accent:     Accent,
		IsDark:     true,
	}
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Name:       "light",
		Background: LightBackground,
		Foreground: LightForeground,
		Muted:      LightMuted,
		Subtle:     LightSubtle,
		Border:     LightBorder,
		Card:       LightCard,
		Accent:     Accent,
		IsDark:     false,
	}
}

// DetectTheme guesses from COLORFGBG and falls back to dark.
func DetectTheme() Theme {
	// Format is usually "foreground;background" (sometimes with a middle
	// field). Background 7 and 9-15 are the light ANSI colors.
	if colorTerm := os.Getenv("COLORFGBG"); colorTerm != "" {
		parts := strings.Split(colorTerm, ";")
		if bgIdx, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
			if bgIdx == 7 || (bgIdx >= 9 && bgIdx <= 15) {
				return LightTheme()
			}
		}
	}
	return DarkTheme()
}

// ThemeByName maps the configured theme name; "auto" and unknown names
// detect from the terminal.
func ThemeByName(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	}
	return DetectTheme()
}

// Style tags a ScrambleText can ask for.
const (
	TagTitle   = "title"
	TagHeading = "heading"
	TagBody    = "body"
	TagMuted   = "muted"
	TagAccent  = "accent"
)

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Text
	Title   lipgloss.Style
	Heading lipgloss.Style
	Body    lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	Error   lipgloss.Style

	// Gallery
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Item      lipgloss.Style
	Selected  lipgloss.Style
	Badge     lipgloss.Style
	Divider   lipgloss.Style
	Modal     lipgloss.Style
}

// NewStyles creates a Styles instance for theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Heading: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Underline(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Accent: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Padding(0, 2),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Subtle).
			Padding(0, 2),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Foreground).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			PaddingLeft(2),

		Selected: lipgloss.NewStyle().
			Foreground(theme.Accent).
			PaddingLeft(1).
			BorderLeft(true).
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(theme.Accent),

		Badge: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(theme.Card).
			Padding(0, 1),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),

		Modal: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Tag resolves a display-styling tag. Unknown tags render as body text.
func (s Styles) Tag(name string) lipgloss.Style {
	switch name {
	case TagTitle:
		return s.Title
	case TagHeading:
		return s.Heading
	case TagMuted:
		return s.Muted
	case TagAccent:
		return s.Accent
	}
	return s.Body
}

// MarkdownStyle is the glamour standard style matching the theme.
func (s Styles) MarkdownStyle() string {
	if s.Theme.IsDark {
		return "dark"
	}
	return "light"
}

// RenderDivider returns a horizontal divider.
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
