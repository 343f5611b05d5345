//go:build linux

package mpris

import (
	"fmt"
	"hash/fnv"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/types"

	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playlist"
)

func metadataFor(track *playlist.Track) types.Metadata {
	if track == nil {
		return types.Metadata{}
	}

	meta := types.Metadata{
		TrackId: dbus.ObjectPath(formatTrackID(track.ID)),
		Length:  types.Microseconds(int64(track.Duration) * 1_000_000),
		Title:   track.Title,
		Album:   track.Album,
		ArtUrl:  track.CoverArt,
	}
	if track.Artist != "" {
		meta.Artist = []string{track.Artist}
	}
	return meta
}

func playbackStatus(s playback.State) types.PlaybackStatus {
	switch {
	case s.CurrentTrack == nil:
		return types.PlaybackStatusStopped
	case s.IsPlaying:
		return types.PlaybackStatusPlaying
	default:
		return types.PlaybackStatusPaused
	}
}

func loopStatus(mode playback.RepeatMode) types.LoopStatus {
	switch mode {
	case playback.RepeatOne:
		return types.LoopStatusTrack
	case playback.RepeatAll:
		return types.LoopStatusPlaylist
	case playback.RepeatNone:
		return types.LoopStatusNone
	}
	return types.LoopStatusNone
}

func repeatMode(status types.LoopStatus) playback.RepeatMode {
	switch status {
	case types.LoopStatusTrack:
		return playback.RepeatOne
	case types.LoopStatusPlaylist:
		return playback.RepeatAll
	case types.LoopStatusNone:
		return playback.RepeatNone
	}
	return playback.RepeatNone
}

func microsecondsToSeconds(us types.Microseconds) float64 {
	return float64(us) / 1e6
}

func secondsToMicroseconds(s float64) types.Microseconds {
	return types.Microseconds(s * 1e6)
}

// formatTrackID hashes a catalog id into a valid D-Bus object path.
func formatTrackID(id string) string {
	h := fnv.New64a()
	h.Write([]byte(id))
	return fmt.Sprintf("/org/mpris/MediaPlayer2/Track/%x", h.Sum64())
}
