package playlist

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/llehouerou/lyrifi/internal/catalog"
)

// FromCatalogTrack converts a populated catalog track to a playlist track.
func FromCatalogTrack(t catalog.Track) Track {
	return Track{
		ID:        t.ID,
		Title:     t.Title,
		Artist:    t.ArtistName,
		Album:     t.AlbumTitle,
		CoverArt:  t.CoverURL,
		YouTubeID: t.YouTubeID,
		Duration:  max(t.Duration, 0),
	}
}

// FromCatalogTracks converts a slice of catalog tracks to playlist tracks.
func FromCatalogTracks(tracks []catalog.Track) []Track {
	return lo.Map(tracks, func(t catalog.Track, _ int) Track {
		return FromCatalogTrack(t)
	})
}

// FormatDuration formats whole seconds as MM:SS.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
