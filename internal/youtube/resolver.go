package youtube

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/catalog"
)

// TrackStore is the part of the catalog the resolver needs.
type TrackStore interface {
	Track(ctx context.Context, id string) (*catalog.Track, error)
	SetTrackYouTubeID(ctx context.Context, id, youtubeID string) error
}

// Finder looks up a video id for a free-text query.
// An empty id with a nil error means nothing was found.
type Finder interface {
	Find(ctx context.Context, query string) (string, error)
}

// FinderFunc adapts a function to Finder.
type FinderFunc func(ctx context.Context, query string) (string, error)

func (f FinderFunc) Find(ctx context.Context, query string) (string, error) { return f(ctx, query) }

// Resolver returns the YouTube id of a catalog track, searching for one and
// saving it on the track when the catalog has none.
type Resolver struct {
	store  TrackStore
	finder Finder
}

// NewResolver creates a resolver. A nil finder disables the lookup.
func NewResolver(store TrackStore, finder Finder) *Resolver {
	return &Resolver{store: store, finder: finder}
}

// Resolve returns the YouTube id for trackID, or "" when the track does not
// exist or no video could be found.
func (r *Resolver) Resolve(ctx context.Context, trackID string) (string, error) {
	track, err := r.store.Track(ctx, trackID)
	if errors.Is(err, catalog.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if track.YouTubeID != "" {
		return track.YouTubeID, nil
	}
	if r.finder == nil {
		return "", nil
	}

	query := strings.TrimSpace(track.Title + " " + track.ArtistName)
	logger := logrus.WithFields(logrus.Fields{"op": "youtube-resolve", "track": trackID, "query": query})

	id, err := r.finder.Find(ctx, query)
	if err != nil {
		return "", err
	}
	if id == "" {
		logger.Info("no video found")
		return "", nil
	}

	if err := r.store.SetTrackYouTubeID(ctx, trackID, id); err != nil {
		logger.WithError(err).Warn("could not save video id")
	}
	return id, nil
}
