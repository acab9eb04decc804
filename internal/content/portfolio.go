// Package content loads the portfolio shown by the showcase: works with
// their tags, category filters and embeddable player links.
package content

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"unicode"
)

// Work is one portfolio entry.
type Work struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Artist      string   `json:"artist,omitempty"`
	Year        int      `json:"year,omitempty"`
	Role        string   `json:"role,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Awards      []string `json:"awards,omitempty"`
	Description string   `json:"description,omitempty"`
	Img         string   `json:"img,omitempty"`
	Type        string   `json:"type,omitempty"` // spotify, youtube, bandcamp, soundcloud
	EmbedID     string   `json:"embedId,omitempty"`
	Link        string   `json:"link,omitempty"`
	IsTrack     bool     `json:"isTrack,omitempty"`
}

// Portfolio is the loaded content plus where it came from.
type Portfolio struct {
	Source string
	Works  []Work
}

// LoadPortfolio reads a JSON array of works from path.
func LoadPortfolio(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio: %w", err)
	}
	works, err := ParseWorks(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse portfolio %s: %w", path, err)
	}
	return &Portfolio{Source: path, Works: works}, nil
}

// ParseWorks decodes a JSON array of works. Entries without a title are
// dropped and missing IDs are derived from the title; nothing else is
// validated.
func ParseWorks(data []byte) ([]Work, error) {
	var raw []Work
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	works := raw[:0]
	for _, w := range raw {
		if strings.TrimSpace(w.Title) == "" {
			continue
		}
		if w.ID == "" {
			w.ID = slug(w.Title)
		}
		works = append(works, w)
	}
	return works, nil
}

func slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// SamplePortfolio is shown when no content file is configured.
func SamplePortfolio() *Portfolio {
	return &Portfolio{
		Source: "built-in",
		Works: []Work{
			{
				ID:          "night-signals",
				Title:       "Night Signals",
				Year:        2023,
				Role:        "Producer",
				Artist:      "Lumen Drift",
				Tags:        []string{"Production", "Mixing"},
				Description: "Full production and mix for a late-night **synth** record.",
				Type:        "spotify",
				EmbedID:     "4uLU6hMCjMI75M1A2tKUQC",
			},
			{
				ID:     "glass-harbor",
				Title:  "Glass Harbor",
				Year:   2022,
				Role:   "Engineer",
				Artist: "The Tidewater Set",
				Tags:   []string{"Recording", "Engineering", "Mastering"},
				Awards: []string{"Best Engineered Album, regional nominee"},
				Type:   "bandcamp",
				Link:   "https://tidewater.example/glass-harbor",
			},
			{
				ID:          "low-orbit-live",
				Title:       "Low Orbit Live",
				Year:        2024,
				Role:        "Immersive mix",
				Artist:      "Kepler Choir",
				Tags:        []string{"Immersive", "Dolby Atmos"},
				Description: "Spatial mix of a live choir session.",
				Type:        "youtube",
				EmbedID:     "dQw4w9WgXcQ",
			},
			{
				ID:      "paper-cities",
				Title:   "Paper Cities",
				Year:    2021,
				Role:    "Composer",
				Artist:  "Short film, dir. A. Moreau",
				Tags:    []string{"Film Scoring", "Sound Design"},
				Type:    "soundcloud",
				Link:    "https://soundcloud.com/example/paper-cities-suite",
				IsTrack: true,
			},
		},
	}
}
