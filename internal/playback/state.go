package playback

import "github.com/llehouerou/lyrifi/internal/playlist"

// RepeatMode defines what navigation does when it runs off the end of the queue.
type RepeatMode string

const (
	RepeatNone RepeatMode = "none"
	RepeatOne  RepeatMode = "one"
	RepeatAll  RepeatMode = "all"
)

// ParseRepeatMode returns the mode for s; unknown values map to RepeatNone.
func ParseRepeatMode(s string) RepeatMode {
	switch RepeatMode(s) {
	case RepeatOne:
		return RepeatOne
	case RepeatAll:
		return RepeatAll
	default:
		return RepeatNone
	}
}

// String returns the repeat mode name.
func (m RepeatMode) String() string {
	switch m {
	case RepeatOne:
		return "One"
	case RepeatAll:
		return "All"
	default:
		return "Off"
	}
}

// DefaultVolume is the volume of a fresh store.
const DefaultVolume = 1.0

// State is a point-in-time copy of the store.
type State struct {
	CurrentTrack   *playlist.Track
	Queue          []playlist.Track
	IsPlaying      bool
	Volume         float64 // [0,1], normalized by callers
	IsShuffle      bool
	RepeatMode     RepeatMode
	IsVideoVisible bool
}

// VolumePercent returns the volume as a widget percentage.
func (s State) VolumePercent() int {
	return VolumePercent(s.Volume)
}

// VolumePercent converts a [0,1] volume to a rounded 0-100 percentage.
func VolumePercent(v float64) int {
	p := int(v*100 + 0.5)
	return min(max(p, 0), 100)
}

// Persisted is the subset of State that survives a restart.
// IsPlaying and IsVideoVisible are never part of it.
type Persisted struct {
	Volume       float64          `json:"volume"`
	IsShuffle    bool             `json:"isShuffle"`
	RepeatMode   RepeatMode       `json:"repeatMode"`
	Queue        []playlist.Track `json:"queue"`
	CurrentTrack *playlist.Track  `json:"currentTrack"`
}
