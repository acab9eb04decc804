package content

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Service is one entry of the services accordion.
type Service struct {
	Name        string         `json:"name"`
	Artwork     string         `json:"artwork,omitempty"`
	Description string         `json:"description,omitempty"`
	Embeds      []ServiceEmbed `json:"embeds,omitempty"`
	Links       []string       `json:"links,omitempty"`
}

// ServiceEmbed is an example player attached to a service. YouTube embeds
// carry an id, SoundCloud embeds a track URL.
type ServiceEmbed struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
	URL  string `json:"url,omitempty"`
}

// PlayerURL returns the player for e. Unknown types have none.
func (e ServiceEmbed) PlayerURL() (string, bool) {
	switch e.Type {
	case "youtube":
		if id, ok := youTubeVideo(e.ID, e.URL); ok {
			return "https://www.youtube.com/embed/" + id, true
		}
	case "soundcloud":
		if e.URL != "" {
			return "https://w.soundcloud.com/player/?url=" + url.QueryEscape(e.URL), true
		}
	}
	return "", false
}

// Services is the services page content.
type Services struct {
	Source string
	Items  []Service
}

// LoadServices reads a JSON array of services.
func LoadServices(path string) (*Services, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read services: %w", err)
	}
	var raw []Service
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse services %s: %w", path, err)
	}
	items := raw[:0]
	for _, s := range raw {
		if strings.TrimSpace(s.Name) != "" {
			items = append(items, s)
		}
	}
	return &Services{Source: path, Items: items}, nil
}

// SampleServices lists the six services offered by the studio.
func SampleServices() *Services {
	return &Services{
		Source: "built-in",
		Items: []Service{
			{
				Name:        "Production",
				Description: "Arrangement, sound selection and programming from demo to finished record.",
				Embeds:      []ServiceEmbed{{Type: "youtube", ID: "dQw4w9WgXcQ"}},
			},
			{
				Name:        "Mixing",
				Description: "Stereo mixes built for translation across speakers, earbuds and club systems.",
				Embeds:      []ServiceEmbed{{Type: "soundcloud", URL: "https://soundcloud.com/example/mix-reel"}},
			},
			{
				Name:        "Recording",
				Description: "Tracking sessions for bands, voice and acoustic ensembles.",
			},
			{
				Name:        "Mastering",
				Description: "Final loudness, tone and sequencing for streaming, vinyl and broadcast.",
				Links:       []string{"https://mastering.example/rates"},
			},
			{
				Name:        "Immersive Mixing",
				Description: "Dolby Atmos and binaural deliverables for music and live recordings.",
			},
			{
				Name:        "Sound for Picture",
				Description: "Scoring, sound design and re-recording mixes for film and games.",
			},
		},
	}
}
