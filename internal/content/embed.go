package content

import (
	"fmt"
	"net/url"
)

// EmbedURL returns the player URL for w, falling back to its plain link
// when there is nothing to embed. ok is false when neither exists.
func EmbedURL(w Work) (u string, ok bool) {
	switch {
	case w.Type == "spotify" && w.EmbedID != "":
		kind := "album"
		if w.IsTrack {
			kind = "track"
		}
		return fmt.Sprintf("https://open.spotify.com/embed/%s/%s?utm_source=generator&theme=0", kind, w.EmbedID), true
	case w.Type == "youtube":
		if id, ok := youTubeVideo(w.EmbedID, w.Link); ok {
			return "https://www.youtube.com/embed/" + id, true
		}
	case w.Type == "bandcamp" && w.EmbedID != "":
		return fmt.Sprintf("https://bandcamp.com/EmbeddedPlayer/album=%s/size=large/bgcol=333333/linkcol=ffffff/tracklist=false/artwork=small/transparent=true/", w.EmbedID), true
	case w.Type == "soundcloud" && (w.EmbedID != "" || w.Link != ""):
		source := w.Link
		if w.EmbedID != "" {
			source = "https://api.soundcloud.com/tracks/" + w.EmbedID
		}
		return "https://w.soundcloud.com/player/?url=" + url.QueryEscape(source), true
	}
	return w.Link, w.Link != ""
}

// PlatformLabel names where a work can be heard.
func PlatformLabel(w Work) string {
	switch w.Type {
	case "spotify":
		return "Spotify"
	case "youtube":
		return "YouTube"
	case "bandcamp":
		return "Bandcamp"
	case "soundcloud":
		return "SoundCloud"
	}
	return "Web"
}
