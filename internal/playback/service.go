package playback

import (
	"context"

	"github.com/llehouerou/lyrifi/internal/playlist"
)

// Service defines the player store contract shared by every shell.
type Service interface {
	// Playback flags
	SetIsPlaying(playing bool)
	TogglePlaying()
	SetIsVideoVisible(visible bool)
	ToggleVideoVisible()

	// Track selection
	SetCurrentTrack(track *playlist.Track)
	PlayTrack(track playlist.Track)
	Next()
	Previous()

	// Queue manipulation
	AddToQueue(track playlist.Track)
	SetQueue(tracks []playlist.Track)

	// Settings
	SetVolume(v float64)
	SetRepeatMode(mode RepeatMode)
	CycleRepeatMode() RepeatMode
	ToggleShuffle()

	// State queries
	State() State
	CurrentTrack() *playlist.Track
	IsPlaying() bool

	// Persistence
	Persisted() Persisted
	Restore(p Persisted)
	ResetTransient()
	Rehydrate(loader Loader) error
	Autosave(ctx context.Context, saver Saver)

	// Event subscription
	Subscribe() *Subscription
	Unsubscribe(sub *Subscription)

	// Lifecycle
	Close() error
}
