package playback

import "github.com/llehouerou/lyrifi/internal/playlist"

// TrackChange is emitted when the current track changes.
//
// Replayed is set when Next lands on the track that was already current;
// consumers should restart the media from the beginning.
type TrackChange struct {
	Previous *playlist.Track
	Current  *playlist.Track
	Replayed bool
}

// PlayingChange is emitted when the play/pause flag flips.
type PlayingChange struct {
	Playing bool
}

// QueueChange is emitted when the queue contents change.
type QueueChange struct {
	Tracks []playlist.Track
}

// ModeChange is emitted when repeat or shuffle mode changes.
type ModeChange struct {
	RepeatMode RepeatMode
	Shuffle    bool
}

// VolumeChange is emitted when the volume changes.
type VolumeChange struct {
	Volume float64
}

// VideoChange is emitted when the video visibility flag flips.
type VideoChange struct {
	Visible bool
}
