package ui

import (
	"fmt"
	"strings"

	"cashsite/internal/content"

	"github.com/charmbracelet/glamour"
)

// WorkMarkdown is the modal body for a work. Tags are drawn as badges
// above it.
func WorkMarkdown(w content.Work) string {
	var b strings.Builder

	if w.Description != "" {
		b.WriteString(w.Description)
		b.WriteString("\n\n")
	}

	if len(w.Awards) > 0 {
		b.WriteString("### Awards\n\n")
		for _, a := range w.Awards {
			fmt.Fprintf(&b, "- %s\n", a)
		}
		b.WriteString("\n")
	}

	u, ok := content.EmbedURL(w)
	switch {
	case !ok:
		b.WriteString("_No player available._\n")
	case u == w.Link:
		fmt.Fprintf(&b, "Listen on %s: %s\n", content.PlatformLabel(w), u)
	default:
		fmt.Fprintf(&b, "%s player: %s\n", content.PlatformLabel(w), u)
	}
	return b.String()
}

// RenderMarkdown renders md with a glamour standard style ("dark",
// "light", "notty", ...) wrapped at width.
func RenderMarkdown(md, style string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}
