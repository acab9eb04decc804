package ui

import (
	"fmt"
	"strings"

	"cashsite/internal/content"
)

// Section is a page of the showcase.
type Section int

const (
	SectionWorks Section = iota
	SectionPerformance
	SectionStore
	SectionServices
)

// Sections lists the pages in navigation order.
var Sections = []Section{SectionWorks, SectionPerformance, SectionStore, SectionServices}

// Title is the page heading.
func (s Section) Title() string {
	switch s {
	case SectionPerformance:
		return "performance"
	case SectionStore:
		return "store"
	case SectionServices:
		return "services"
	}
	return HeaderText
}

// Label is the short name shown in the section bar.
func (s Section) Label() string {
	switch s {
	case SectionPerformance:
		return "Performance"
	case SectionStore:
		return "Store"
	case SectionServices:
		return "Services"
	}
	return "Works"
}

const selectedMarker = "▸ "

// PerformanceMarkdown lists every project grouped as Live and Multimedia
// and details the selected one.
func PerformanceMarkdown(p *content.Performance, selected int) string {
	var b strings.Builder
	projects := p.Projects()
	if len(projects) == 0 {
		return "_No performances yet._\n"
	}

	idx := 0
	for _, g := range p.Groups() {
		if len(g.Projects) == 0 {
			continue
		}
		fmt.Fprintf(&b, "## %s\n\n", g.Label)
		for _, proj := range g.Projects {
			if idx == selected {
				fmt.Fprintf(&b, "- **%s%s**\n", selectedMarker, proj.Title)
			} else {
				fmt.Fprintf(&b, "- %s\n", proj.Title)
			}
			idx++
		}
		b.WriteString("\n")
	}

	if selected < 0 || selected >= len(projects) {
		return b.String()
	}
	b.WriteString("---\n\n")
	writeProject(&b, projects[selected])
	return b.String()
}

func writeProject(b *strings.Builder, p content.Project) {
	fmt.Fprintf(b, "# %s\n\n", p.Title)

	if meta := joinNonEmpty(" // ", p.Type, p.Date, p.Location); meta != "" {
		fmt.Fprintf(b, "_%s_\n\n", meta)
	}

	if u, ok := p.VideoURL(); ok {
		fmt.Fprintf(b, "Video: %s\n\n", u)
	}
	if p.Description != "" {
		b.WriteString(p.Description)
		b.WriteString("\n\n")
	}
	writeFields(b, "Credits", p.Credits)
	writeFields(b, "Tools", p.Tools)
	if len(p.Roles) > 0 {
		b.WriteString("### My Roles\n\n")
		for _, r := range p.Roles {
			fmt.Fprintf(b, "- %s\n", r)
		}
		b.WriteString("\n")
	}
}

func writeFields(b *strings.Builder, heading string, fs content.Fields) {
	if len(fs) == 0 {
		return
	}
	fmt.Fprintf(b, "### %s\n\n", heading)
	for _, f := range fs {
		fmt.Fprintf(b, "- %s: %s\n", f.Label(), f.Value())
	}
	b.WriteString("\n")
}

// StoreMarkdown is the release feed followed by the support call-out.
func StoreMarkdown(s *content.Store) string {
	var b strings.Builder
	if len(s.Releases) == 0 {
		b.WriteString("_Nothing for sale yet._\n\n")
	}

	for i, r := range s.Releases {
		if i > 0 {
			b.WriteString("---\n\n")
		}
		fmt.Fprintf(&b, "## %s\n\n", r.Title)
		if byline := joinNonEmpty(" // ", r.Type, r.Artist); byline != "" {
			fmt.Fprintf(&b, "_%s_\n\n", byline)
		}
		if u, ok := r.VideoURL(); ok {
			fmt.Fprintf(&b, "Demo video: %s\n\n", u)
		} else if r.VideoLink != "" {
			fmt.Fprintf(&b, "Demo video: %s\n\n", r.VideoLink)
		}
		if r.Description != "" {
			b.WriteString(r.Description)
			b.WriteString("\n\n")
		}
		if r.StoreLink != "" {
			fmt.Fprintf(&b, "**Get on Gumroad:** %s\n\n", r.StoreLink)
		}

		if c := r.Content; c != nil && (c.SamplesCount > 0 || c.SoundDesignSessions > 0) {
			b.WriteString("### Includes\n\n")
			if c.SamplesCount > 0 {
				fmt.Fprintf(&b, "- %d Samples\n", c.SamplesCount)
			}
			if c.SoundDesignSessions > 0 {
				fmt.Fprintf(&b, "- %d Design Sessions\n", c.SoundDesignSessions)
			}
			b.WriteString("\n")
		}

		if len(r.Artwork) > 0 || r.Collaboration != nil {
			b.WriteString("### Credits\n\n")
			for _, a := range r.Artwork {
				fmt.Fprintf(&b, "- Art: %s\n", linked(a.Who(), a.Link))
			}
			if c := r.Collaboration; c != nil {
				fmt.Fprintf(&b, "- Label: %s\n", linked(c.Label, c.LabelLink))
			}
			b.WriteString("\n")
		}

		if len(r.DemoArtists) > 0 {
			names := make([]string, len(r.DemoArtists))
			for i, d := range r.DemoArtists {
				names[i] = linked(d.Who(), d.Link)
			}
			fmt.Fprintf(&b, "### Demos By\n\n%s\n\n", strings.Join(names, " · "))
		}
	}

	if sup := s.Support; sup != nil && sup.Link != "" {
		b.WriteString("---\n\n## Support the work\n\n")
		fmt.Fprintf(&b, "If you enjoy these tools and sounds, consider joining the %s community.\n\n", sup.Platform)
		fmt.Fprintf(&b, "**Join on %s:** %s\n", sup.Platform, sup.Link)
	}
	return b.String()
}

// ServicesMarkdown renders the accordion: every service name, with the
// open one expanded. open is -1 when everything is collapsed.
func ServicesMarkdown(s *content.Services, selected, open int) string {
	var b strings.Builder
	if len(s.Items) == 0 {
		return "_No services listed._\n"
	}
	for i, svc := range s.Items {
		marker := ">"
		if i == open {
			marker = "×"
		}
		name := svc.Name
		if i == selected {
			name = selectedMarker + name
		}
		fmt.Fprintf(&b, "## %s  %s\n\n", name, marker)
		if i != open {
			continue
		}

		if svc.Description != "" {
			b.WriteString(svc.Description)
			b.WriteString("\n\n")
		}
		for _, e := range svc.Embeds {
			if u, ok := e.PlayerURL(); ok {
				fmt.Fprintf(&b, "- %s player: %s\n", embedLabel(e.Type), u)
			}
		}
		for _, l := range svc.Links {
			fmt.Fprintf(&b, "- %s\n", l)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func embedLabel(kind string) string {
	return content.PlatformLabel(content.Work{Type: kind})
}

func linked(text, link string) string {
	if link == "" {
		return text
	}
	return fmt.Sprintf("[%s](%s)", text, link)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
