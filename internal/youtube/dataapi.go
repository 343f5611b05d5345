package youtube

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	ytapi "google.golang.org/api/youtube/v3"
)

// musicCategory is the YouTube video category id for music.
const musicCategory = "10"

// DataAPIFinder searches videos with the YouTube Data API v3.
type DataAPIFinder struct {
	svc *ytapi.Service
}

var _ Finder = (*DataAPIFinder)(nil)

// NewDataAPIFinder creates a finder authenticated with apiKey.
// Extra options are appended (endpoint overrides in tests).
func NewDataAPIFinder(ctx context.Context, apiKey string, opts ...option.ClientOption) (*DataAPIFinder, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := ytapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("youtube service: %w", err)
	}
	return &DataAPIFinder{svc: svc}, nil
}

// Find returns the id of the best matching music video.
func (f *DataAPIFinder) Find(ctx context.Context, query string) (string, error) {
	resp, err := f.svc.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		VideoCategoryId(musicCategory).
		MaxResults(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("youtube search %q: %w", query, err)
	}
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			return item.Id.VideoId, nil
		}
	}
	return "", nil
}
