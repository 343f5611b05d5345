package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/search"
)

const (
	requestTimeout = 15 * time.Second
	tickInterval   = time.Second
)

// TickCmd returns a command that fires TickMsg after one second.
func TickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForChange blocks until the store publishes any event.
// It returns nil once the subscription is closed.
func waitForChange(sub *playback.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-sub.TrackChanged:
		case <-sub.PlayingChanged:
		case <-sub.QueueChanged:
		case <-sub.ModeChanged:
		case <-sub.VolumeChanged:
		case <-sub.VideoChanged:
		case <-sub.Done:
			return nil
		}
		return StoreChangedMsg{}
	}
}

func (m Model) searchCmd(query string) tea.Cmd {
	cat := m.catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return ResultsMsg{Query: query, Results: cat.Search(ctx, query)}
	}
}

// resolveCmd looks up the video id of a track that has none.
func (m Model) resolveCmd(track playlist.Track, mode EnqueueMode) tea.Cmd {
	cat := m.catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		track.YouTubeID = cat.Resolve(ctx, track.ID)
		return ResolvedMsg{Track: track, Mode: mode}
	}
}

// collectionCmd fetches the tracks of an album or playlist result.
func (m Model) collectionCmd(item search.Item, mode EnqueueMode) tea.Cmd {
	cat := m.catalog
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var tracks []catalog.Track
		if item.Kind == search.KindAlbum {
			tracks = cat.AlbumTracks(ctx, item.ID)
		} else {
			tracks = cat.PlaylistTracks(ctx, item.ID)
		}
		return TracksMsg{
			Source: item.Title,
			Tracks: playlist.FromCatalogTracks(tracks),
			Mode:   mode,
		}
	}
}
