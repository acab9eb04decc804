package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestLoadPerformance(t *testing.T) {
	path := writeFile(t, "performance.json", `{
		"live": [
			{
				"title": "Signal Bloom",
				"date": "2024",
				"link": "https://youtu.be/dQw4w9WgXcQ",
				"credits": {"lighting_design": "Halo", "vocals": "Ines"},
				"tools": {"hardware": ["Eurorack", "Tape"], "daw": "Live"},
				"roles": ["Performer"]
			},
			{"type": "untitled"}
		],
		"multimedia": [{"title": "Afterimage"}]
	}`)

	p, err := LoadPerformance(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Source)
	require.Len(t, p.Live, 1, "untitled projects are dropped")
	require.Len(t, p.Multimedia, 1)

	live := p.Live[0]
	require.Len(t, live.Credits, 2)
	assert.Equal(t, "lighting_design", live.Credits[0].Key)
	assert.Equal(t, "Eurorack, Tape", live.Tools[0].Value())
	assert.Equal(t, []string{"Live"}, live.Tools[1].Values)

	u, ok := live.VideoURL()
	assert.True(t, ok)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", u)
	_, ok = p.Multimedia[0].VideoURL()
	assert.False(t, ok)

	groups := p.Groups()
	require.Len(t, groups, 2)
	assert.Equal(t, "Live", groups[0].Label)
	assert.Equal(t, "Multimedia", groups[1].Label)
	assert.Equal(t, []string{"Signal Bloom", "Afterimage"}, projectTitles(p.Projects()))
}

func projectTitles(ps []Project) []string {
	titles := make([]string, len(ps))
	for i, p := range ps {
		titles[i] = p.Title
	}
	return titles
}

func TestLoadPerformance_Errors(t *testing.T) {
	_, err := LoadPerformance(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to read performance")

	_, err = LoadPerformance(writeFile(t, "bad.json", `{"live": [{"title": "x", "credits": {"n": 1}}]}`))
	assert.ErrorContains(t, err, "failed to parse performance")
}

func TestLoadStore(t *testing.T) {
	path := writeFile(t, "store.json", `{
		"releases": [
			{
				"title": "Tape Weather",
				"type": "Sample pack",
				"artist": "cashsite",
				"video_link": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
				"store_link": "https://shop.example/tape",
				"content": {"samples_count": 120, "sound_design_sessions": 3},
				"artwork": [{"artist": "Mara", "link": "https://mara.example"}],
				"collaboration": {"label": "Northfield", "label_link": "https://nf.example"},
				"demo_artists": [{"name": "Lumen", "link": "https://lumen.example"}]
			},
			{"description": "no title"}
		],
		"support": {"platform": "Patreon", "link": "https://patreon.example"}
	}`)

	s, err := LoadStore(path)
	require.NoError(t, err)
	require.Len(t, s.Releases, 1)

	r := s.Releases[0]
	assert.Equal(t, 120, r.Content.SamplesCount)
	assert.Equal(t, "Mara", r.Artwork[0].Who())
	assert.Equal(t, "Lumen", r.DemoArtists[0].Who())
	assert.Equal(t, "Northfield", r.Collaboration.Label)
	require.NotNil(t, s.Support)
	assert.Equal(t, "Patreon", s.Support.Platform)

	u, ok := r.VideoURL()
	assert.True(t, ok)
	assert.Equal(t, "https://www.youtube-nocookie.com/embed/dQw4w9WgXcQ", u)
}

func TestLoadServices(t *testing.T) {
	path := writeFile(t, "services.json", `[
		{"name": "Mixing", "embeds": [{"type": "soundcloud", "url": "https://soundcloud.com/a/b"}]},
		{"name": "", "description": "dropped"},
		{"name": "Production", "links": ["https://x.example"]}
	]`)

	s, err := LoadServices(path)
	require.NoError(t, err)
	require.Len(t, s.Items, 2)
	assert.Equal(t, "Mixing", s.Items[0].Name)
	assert.Equal(t, []string{"https://x.example"}, s.Items[1].Links)

	_, err = LoadServices(writeFile(t, "bad.json", `{"name": "not a list"}`))
	assert.Error(t, err)
}

func TestServiceEmbed_PlayerURL(t *testing.T) {
	tests := []struct {
		name   string
		embed  ServiceEmbed
		want   string
		wantOK bool
	}{
		{"youtube id", ServiceEmbed{Type: "youtube", ID: "dQw4w9WgXcQ"}, "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"youtube url", ServiceEmbed{Type: "youtube", URL: "https://youtu.be/dQw4w9WgXcQ"}, "https://www.youtube.com/embed/dQw4w9WgXcQ", true},
		{"soundcloud", ServiceEmbed{Type: "soundcloud", URL: "https://soundcloud.com/a/b"}, "https://w.soundcloud.com/player/?url=https%3A%2F%2Fsoundcloud.com%2Fa%2Fb", true},
		{"soundcloud without url", ServiceEmbed{Type: "soundcloud"}, "", false},
		{"unknown", ServiceEmbed{Type: "vimeo", ID: "1"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.embed.PlayerURL()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSamplePages(t *testing.T) {
	assert.NotEmpty(t, SamplePerformance().Live)
	assert.NotEmpty(t, SampleStore().Releases)

	names := make([]string, 0, 6)
	for _, s := range SampleServices().Items {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Production", "Mixing", "Recording", "Mastering", "Immersive Mixing", "Sound for Picture"}, names)
}
