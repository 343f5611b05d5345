package search

import (
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/icons"
	"github.com/llehouerou/lyrifi/internal/playlist"
)

// Kind is the catalog entity a result row points to.
type Kind int

const (
	KindTrack Kind = iota
	KindArtist
	KindAlbum
	KindPlaylist
)

func (k Kind) String() string {
	switch k {
	case KindTrack:
		return "Track"
	case KindArtist:
		return "Artist"
	case KindAlbum:
		return "Album"
	case KindPlaylist:
		return "Playlist"
	}
	return "Unknown"
}

// Item is one row of the results list.
type Item struct {
	Kind     Kind
	ID       string
	Title    string
	Subtitle string
	Track    *catalog.Track // set for KindTrack
}

// LeftColumn returns the title with the entity icon.
func (i Item) LeftColumn() string {
	switch i.Kind {
	case KindTrack:
		return icons.FormatTrack(i.Title)
	case KindArtist:
		return icons.FormatArtist(i.Title)
	case KindAlbum:
		return icons.FormatAlbum(i.Title)
	case KindPlaylist:
		return icons.FormatPlaylist(i.Title)
	}
	return i.Title
}

// RightColumn returns the secondary text.
func (i Item) RightColumn() string {
	return i.Subtitle
}

// PlayableTrack returns the queue entry for a track row.
func (i Item) PlayableTrack() (playlist.Track, bool) {
	if i.Kind != KindTrack || i.Track == nil {
		return playlist.Track{}, false
	}
	return playlist.FromCatalogTrack(*i.Track), true
}

// Flatten turns results into rows: tracks, then artists, albums and playlists,
// each in the order the catalog returned them.
func Flatten(r *catalog.Results) []Item {
	if r == nil {
		return nil
	}
	items := make([]Item, 0, len(r.Tracks)+len(r.Artists)+len(r.Albums)+len(r.Playlists))

	for i := range r.Tracks {
		t := &r.Tracks[i]
		items = append(items, Item{
			Kind:     KindTrack,
			ID:       t.ID,
			Title:    t.Title,
			Subtitle: joinNonEmpty(" · ", t.ArtistName, playlist.FormatDuration(t.Duration)),
			Track:    t,
		})
	}
	for _, a := range r.Artists {
		items = append(items, Item{
			Kind:     KindArtist,
			ID:       a.ID,
			Title:    a.Name,
			Subtitle: strings.Join(a.Genres, ", "),
		})
	}
	for _, a := range r.Albums {
		items = append(items, Item{
			Kind:     KindAlbum,
			ID:       a.ID,
			Title:    a.Title,
			Subtitle: a.ArtistName,
		})
	}
	for _, p := range r.Playlists {
		items = append(items, Item{
			Kind:     KindPlaylist,
			ID:       p.ID,
			Title:    p.Name,
			Subtitle: pluralTracks(len(p.TrackIDs)),
		})
	}
	return items
}

func pluralTracks(n int) string {
	if n == 1 {
		return "1 track"
	}
	return strconv.Itoa(n) + " tracks"
}

func joinNonEmpty(sep string, parts ...string) string {
	return strings.Join(lo.Compact(parts), sep)
}
