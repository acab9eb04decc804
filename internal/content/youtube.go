package content

import (
	"regexp"
	"strings"
)

// youTubeIDPattern accepts watch, short, embed and legacy /v/ and /u/
// links. The second group is the candidate video id.
var youTubeIDPattern = regexp.MustCompile(`^.*(youtu.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

const youTubeIDLen = 11

// YouTubeID extracts the video id from a YouTube URL. Ids that are not
// eleven characters long are rejected.
func YouTubeID(link string) (string, bool) {
	m := youTubeIDPattern.FindStringSubmatch(link)
	if m == nil || len(m[2]) != youTubeIDLen {
		return "", false
	}
	return m[2], true
}

// YouTubeNoCookieURL is the privacy-enhanced player for a video link.
func YouTubeNoCookieURL(link string) (string, bool) {
	id, ok := YouTubeID(link)
	if !ok {
		return "", false
	}
	return "https://www.youtube-nocookie.com/embed/" + id, true
}

// youTubeVideo resolves the video id of a work. A bare embed id is used
// as is; anything that looks like a URL goes through YouTubeID, and the
// plain link is tried last.
func youTubeVideo(embedID, link string) (string, bool) {
	if embedID != "" {
		if !looksLikeURL(embedID) {
			return embedID, true
		}
		if id, ok := YouTubeID(embedID); ok {
			return id, true
		}
	}
	if link != "" {
		return YouTubeID(link)
	}
	return "", false
}

func looksLikeURL(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, "youtu")
}
