package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the showcase.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding // Previous category.
	Right    key.Binding // Next category.
	NextTab  key.Binding
	Open     key.Binding
	Replay   key.Binding
	Back     key.Binding
	Quit     key.Binding
	Sections key.Binding // Digits jump to the numbered section.
	Reload   key.Binding // Reread the content file.
	PageUp   key.Binding // Full-page scrolling, installed into each viewport.
	PageDown key.Binding
}

// DefaultKeyMap uses arrow keys with vim-style alternatives.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left", "shift+tab"),
		key.WithHelp("←/h", "prev category"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("→/l", "next category"),
	),
	NextTab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "cycle category"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "open"),
	),
	Replay: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "replay"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Sections: key.NewBinding(
		key.WithKeys("1", "2", "3", "4"),
		key.WithHelp("1-4", "section"),
	),
	Reload: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "reload"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "scroll up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "scroll down"),
	),
}

// galleryHelp is the footer help while browsing.
func (k KeyMap) galleryHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Open, k.Sections, k.Replay, k.Reload, k.Quit}
}

// pageHelp is the footer help on the performance, store and services
// pages.
func (k KeyMap) pageHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.PageUp, k.PageDown, k.Sections, k.Back, k.Quit}
}

// modalHelp is the footer help while a work is open.
func (k KeyMap) modalHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.PageUp, k.PageDown, k.Replay, k.Back}
}
