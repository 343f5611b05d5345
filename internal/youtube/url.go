// Package youtube normalizes YouTube references and resolves missing video ids.
package youtube

import "strings"

const shortURL = "https://youtu.be/"

// videoPrefixes are stripped from a host-less reference to get the video id.
var videoPrefixes = []string{
	"youtu.be/",
	"youtube.com/watch?v=",
	"youtube.com/embed/",
	"youtube.com/shorts/",
	"youtube-nocookie.com/embed/",
}

// PlaybackURL returns the URL a player should open for ref.
// Absolute URLs pass through; bare ids become short links.
func PlaybackURL(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return shortURL + ref
}

// VideoID extracts the bare video id from a bare id or a YouTube URL.
func VideoID(ref string) string {
	ref = strings.TrimSpace(ref)

	rest := strings.TrimPrefix(strings.TrimPrefix(ref, "https://"), "http://")
	for _, sub := range []string{"www.", "m.", "music."} {
		rest = strings.TrimPrefix(rest, sub)
	}
	for _, prefix := range videoPrefixes {
		if strings.HasPrefix(rest, prefix) {
			ref = rest[len(prefix):]
			break
		}
	}

	if i := strings.IndexAny(ref, "?&#"); i >= 0 {
		ref = ref[:i]
	}
	return ref
}
