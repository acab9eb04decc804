package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Project is a live or multimedia performance.
type Project struct {
	Title       string   `json:"title"`
	Type        string   `json:"type,omitempty"`
	Date        string   `json:"date,omitempty"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	Link        string   `json:"link,omitempty"` // usually a YouTube video
	Credits     Fields   `json:"credits,omitempty"`
	Tools       Fields   `json:"tools,omitempty"`
	Roles       []string `json:"roles,omitempty"`
}

// VideoURL is the embeddable player for the project's link.
func (p Project) VideoURL() (string, bool) {
	return YouTubeNoCookieURL(p.Link)
}

// ProjectGroup is a labelled list of projects.
type ProjectGroup struct {
	Label    string
	Projects []Project
}

// Performance holds the performance page content.
type Performance struct {
	Source     string    `json:"-"`
	Live       []Project `json:"live"`
	Multimedia []Project `json:"multimedia"`
}

// Groups lists the live projects before the multimedia ones.
func (p *Performance) Groups() []ProjectGroup {
	return []ProjectGroup{
		{Label: "Live", Projects: p.Live},
		{Label: "Multimedia", Projects: p.Multimedia},
	}
}

// Projects flattens Groups.
func (p *Performance) Projects() []Project {
	all := make([]Project, 0, len(p.Live)+len(p.Multimedia))
	all = append(all, p.Live...)
	return append(all, p.Multimedia...)
}

// LoadPerformance reads a {"live": [...], "multimedia": [...]} document.
func LoadPerformance(path string) (*Performance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read performance: %w", err)
	}
	var p Performance
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse performance %s: %w", path, err)
	}
	p.Source = path
	p.Live = titledProjects(p.Live)
	p.Multimedia = titledProjects(p.Multimedia)
	return &p, nil
}

func titledProjects(in []Project) []Project {
	out := in[:0]
	for _, p := range in {
		if strings.TrimSpace(p.Title) != "" {
			out = append(out, p)
		}
	}
	return out
}

// SamplePerformance is shown when no performance file is configured.
func SamplePerformance() *Performance {
	return &Performance{
		Source: "built-in",
		Live: []Project{
			{
				Title:       "Signal Bloom",
				Type:        "Live electronics",
				Date:        "2024",
				Location:    "Lisbon",
				Description: "Modular set with live-processed voice and tape loops.",
				Link:        "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				Credits: Fields{
					{Key: "vocals", Values: []string{"Ines Prado"}},
					{Key: "lighting_design", Values: []string{"Studio Halo"}},
				},
				Tools: Fields{
					{Key: "hardware", Values: []string{"Eurorack", "Tape loops"}},
					{Key: "software", Values: []string{"Ableton Live"}},
				},
				Roles: []string{"Performer", "Sound design"},
			},
			{
				Title:    "Harbor Sessions",
				Type:     "Concert",
				Date:     "2023",
				Location: "Porto",
				Roles:    []string{"FOH engineer"},
			},
		},
		Multimedia: []Project{
			{
				Title:       "Afterimage",
				Type:        "Installation",
				Date:        "2022",
				Description: "Eight-channel sound installation for a projection piece.",
				Link:        "https://youtu.be/dQw4w9WgXcQ",
				Tools: Fields{
					{Key: "spatial", Values: []string{"Dolby Atmos Renderer"}},
				},
				Roles: []string{"Composer", "Immersive mix"},
			},
		},
	}
}
