package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Release is a product in the store feed.
type Release struct {
	Title         string          `json:"title"`
	Type          string          `json:"type,omitempty"`
	Artist        string          `json:"artist,omitempty"`
	Description   string          `json:"description,omitempty"`
	VideoLink     string          `json:"video_link,omitempty"`
	StoreLink     string          `json:"store_link,omitempty"`
	Content       *ReleaseContent `json:"content,omitempty"`
	Artwork       []Credit        `json:"artwork,omitempty"`
	Collaboration *Collaboration  `json:"collaboration,omitempty"`
	DemoArtists   []Credit        `json:"demo_artists,omitempty"`
}

// ReleaseContent is what a sample pack includes.
type ReleaseContent struct {
	SamplesCount        int `json:"samples_count,omitempty"`
	SoundDesignSessions int `json:"sound_design_sessions,omitempty"`
}

// Credit names a person with an optional link. Artwork entries use
// "artist", demo entries use "name".
type Credit struct {
	Artist string `json:"artist,omitempty"`
	Name   string `json:"name,omitempty"`
	Link   string `json:"link,omitempty"`
}

// Who is the credited name.
func (c Credit) Who() string {
	if c.Artist != "" {
		return c.Artist
	}
	return c.Name
}

// Collaboration is a label partnership.
type Collaboration struct {
	Label     string `json:"label"`
	LabelLink string `json:"label_link,omitempty"`
}

// Support points at the community membership platform.
type Support struct {
	Platform string `json:"platform"`
	Link     string `json:"link"`
}

// VideoURL is the embeddable demo video.
func (r Release) VideoURL() (string, bool) {
	return YouTubeNoCookieURL(r.VideoLink)
}

// Store holds the store page content.
type Store struct {
	Source   string    `json:"-"`
	Releases []Release `json:"releases"`
	Support  *Support  `json:"support,omitempty"`
}

// LoadStore reads a {"releases": [...], "support": {...}} document.
func LoadStore(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read store: %w", err)
	}
	var s Store
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %w", path, err)
	}
	s.Source = path
	releases := s.Releases[:0]
	for _, r := range s.Releases {
		if strings.TrimSpace(r.Title) != "" {
			releases = append(releases, r)
		}
	}
	s.Releases = releases
	return &s, nil
}

// SampleStore is shown when no store file is configured.
func SampleStore() *Store {
	return &Store{
		Source: "built-in",
		Releases: []Release{
			{
				Title:       "Tape Weather Vol. 1",
				Type:        "Sample pack",
				Artist:      "cashsite",
				Description: "Saturated loops and one-shots recorded through worn cassette decks.",
				VideoLink:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				StoreLink:   "https://gumroad.example/tape-weather",
				Content:     &ReleaseContent{SamplesCount: 120, SoundDesignSessions: 4},
				Artwork:     []Credit{{Artist: "Mara Quell", Link: "https://mara.example"}},
				DemoArtists: []Credit{
					{Name: "Lumen Drift", Link: "https://lumendrift.example"},
					{Name: "Kepler Choir"},
				},
			},
			{
				Title:         "Room Tones",
				Type:          "Impulse responses",
				Artist:        "cashsite",
				Description:   "Convolution responses from churches, stairwells and a water tower.",
				StoreLink:     "https://gumroad.example/room-tones",
				Collaboration: &Collaboration{Label: "Northfield Audio", LabelLink: "https://northfield.example"},
			},
		},
		Support: &Support{Platform: "Patreon", Link: "https://patreon.example/cashsite"},
	}
}
