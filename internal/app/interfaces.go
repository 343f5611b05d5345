package app

import (
	"context"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/playerview"
	"github.com/llehouerou/lyrifi/internal/searchclient"
	"github.com/llehouerou/lyrifi/internal/ui/playerbar"
)

// Catalog is the part of the catalog service client the UI uses.
// Every method degrades to an empty answer instead of failing.
type Catalog interface {
	Search(ctx context.Context, query string) *catalog.Results
	Resolve(ctx context.Context, trackID string) string
	AlbumTracks(ctx context.Context, albumID string) []catalog.Track
	PlaylistTracks(ctx context.Context, playlistID string) []catalog.Track
}

var _ Catalog = (*searchclient.Client)(nil)

// PlayerView is the part of the player view controller the UI uses.
type PlayerView interface {
	playerbar.View
	Seek(seconds float64)
}

var _ PlayerView = (*playerview.Controller)(nil)
