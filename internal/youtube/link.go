package youtube

import (
	"regexp"
	"strings"
)

// LinkKind tells what a pasted input refers to.
type LinkKind string

const (
	KindVideo    LinkKind = "video"
	KindPlaylist LinkKind = "playlist"
	KindNone     LinkKind = "none"
)

// LinkRef is the result of recognizing a pasted input.
type LinkRef struct {
	Kind LinkKind `json:"kind"`
	ID   string   `json:"id,omitempty"`
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`[?&]v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`^([A-Za-z0-9_-]{11})$`),
}

var playlistIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`[?&]list=([^&?/]+)`),
	regexp.MustCompile(`youtube\.com/playlist\?list=([^&?/]+)`),
}

// ExtractVideoID pulls a video identifier out of free text. Accepted
// forms: youtu.be short links, watch URLs with a v= parameter, and a
// bare 11-character identifier. Returns "" when nothing matches.
func ExtractVideoID(text string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// ExtractPlaylistID pulls a playlist identifier from any URL shape
// carrying a list= query parameter. Returns "" when nothing matches.
func ExtractPlaylistID(text string) string {
	for _, p := range playlistIDPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// Recognize decides what a free-text input refers to. Playlist detection
// wins when a watch URL carries both a video id and a list= parameter,
// matching how the search bar dispatches. Pure and total: malformed or
// empty input yields KindNone.
func Recognize(text string) LinkRef {
	text = strings.TrimSpace(text)
	if text == "" {
		return LinkRef{Kind: KindNone}
	}

	if id := ExtractPlaylistID(text); id != "" {
		return LinkRef{Kind: KindPlaylist, ID: id}
	}
	if id := ExtractVideoID(text); id != "" {
		return LinkRef{Kind: KindVideo, ID: id}
	}

	return LinkRef{Kind: KindNone}
}
