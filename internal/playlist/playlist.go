package playlist

import "github.com/samber/lo"

// Track is an immutable reference to a playable catalog item.
type Track struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	Album     string `json:"album,omitempty"`
	CoverArt  string `json:"coverArt,omitempty"`
	YouTubeID string `json:"youtube_id,omitempty"` // bare id or full URL
	Duration  int    `json:"duration"`             // whole seconds
}

// HasVideo reports whether the track can be bound to a video widget.
func (t Track) HasVideo() bool {
	return t.YouTubeID != ""
}

// Clone returns a copy of t, or nil.
func Clone(t *Track) *Track {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// Playlist holds an ordered collection of tracks.
type Playlist struct {
	tracks []Track
}

// NewPlaylist creates a playlist holding a copy of tracks.
func NewPlaylist(tracks ...Track) *Playlist {
	p := &Playlist{
		tracks: make([]Track, 0, len(tracks)),
	}
	p.Add(tracks...)
	return p
}

// Add appends tracks to the playlist.
func (p *Playlist) Add(tracks ...Track) {
	p.tracks = append(p.tracks, tracks...)
}

// Replace drops every track and stores a copy of tracks.
func (p *Playlist) Replace(tracks []Track) {
	p.tracks = append(make([]Track, 0, len(tracks)), tracks...)
}

// Clear removes all tracks from the playlist.
func (p *Playlist) Clear() {
	p.tracks = p.tracks[:0]
}

// Tracks returns a copy of all tracks.
func (p *Playlist) Tracks() []Track {
	result := make([]Track, len(p.tracks))
	copy(result, p.tracks)
	return result
}

// Track returns the track at the given index, or nil if out of bounds.
func (p *Playlist) Track(index int) *Track {
	if index < 0 || index >= len(p.tracks) {
		return nil
	}
	t := p.tracks[index]
	return &t
}

// Len returns the number of tracks.
func (p *Playlist) Len() int {
	return len(p.tracks)
}

// IndexOf returns the position of the first track with the given id, or -1.
func (p *Playlist) IndexOf(id string) int {
	_, index, ok := lo.FindIndexOf(p.tracks, func(t Track) bool {
		return t.ID == id
	})
	if !ok {
		return -1
	}
	return index
}

// Contains reports whether a track with the given id is present.
func (p *Playlist) Contains(id string) bool {
	return p.IndexOf(id) >= 0
}
