// Package searchclient talks to the catalog service over HTTP.
// Failures are logged and turned into empty results.
package searchclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/catalog"
)

const (
	defaultTimeout = 10 * time.Second
	userAgent      = "lyrifi/1.0 (https://github.com/llehouerou/lyrifi)"
)

// Client is a catalog service client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// New creates a client for the catalog service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns the catalog matches for query. A blank query returns empty
// results without a request.
func (c *Client) Search(ctx context.Context, query string) *catalog.Results {
	if strings.TrimSpace(query) == "" {
		return catalog.EmptyResults()
	}

	results := catalog.EmptyResults()
	params := url.Values{}
	params.Set("q", query)
	if err := c.get(ctx, "/search?"+params.Encode(), results); err != nil {
		logrus.WithFields(logrus.Fields{"op": "search", "query": query}).WithError(err).Warn("catalog search failed")
		return catalog.EmptyResults()
	}
	normalize(results)
	return results
}

// Resolve returns the YouTube id of a track, or "" when it has none or the
// lookup failed.
func (c *Client) Resolve(ctx context.Context, trackID string) string {
	var body struct {
		YouTubeID string `json:"youtube_id"`
	}
	if err := c.get(ctx, "/tracks/"+url.PathEscape(trackID)+"/youtube", &body); err != nil {
		logrus.WithFields(logrus.Fields{"op": "resolve", "track": trackID}).WithError(err).Warn("video lookup failed")
		return ""
	}
	return body.YouTubeID
}

// AlbumTracks returns the tracks of an album in disc order.
func (c *Client) AlbumTracks(ctx context.Context, albumID string) []catalog.Track {
	var body struct {
		Tracks []catalog.Track `json:"tracks"`
	}
	if err := c.get(ctx, "/albums/"+url.PathEscape(albumID), &body); err != nil {
		logrus.WithFields(logrus.Fields{"op": "album-tracks", "album": albumID}).WithError(err).Warn("album lookup failed")
		return nil
	}
	return body.Tracks
}

// PlaylistTracks returns the tracks of a public playlist in playlist order.
func (c *Client) PlaylistTracks(ctx context.Context, playlistID string) []catalog.Track {
	var body struct {
		Tracks []catalog.Track `json:"tracks"`
	}
	if err := c.get(ctx, "/playlists/"+url.PathEscape(playlistID), &body); err != nil {
		logrus.WithFields(logrus.Fields{"op": "playlist-tracks", "playlist": playlistID}).WithError(err).Warn("playlist lookup failed")
		return nil
	}
	return body.Tracks
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// normalize replaces lists the server sent as null with empty ones.
func normalize(r *catalog.Results) {
	if r.Tracks == nil {
		r.Tracks = []catalog.Track{}
	}
	if r.Artists == nil {
		r.Artists = []catalog.Artist{}
	}
	if r.Albums == nil {
		r.Albums = []catalog.Album{}
	}
	if r.Playlists == nil {
		r.Playlists = []catalog.Playlist{}
	}
}
