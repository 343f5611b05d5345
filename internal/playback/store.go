package playback

import (
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/llehouerou/lyrifi/internal/playlist"
)

// Verify Store implements Service at compile time.
var _ Service = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithRandom replaces the shuffle draw. fn must return a value in [0,1).
func WithRandom(fn func() float64) Option {
	return func(s *Store) {
		s.random = fn
	}
}

// WithRepeatOneReplay makes Next replay the current track when the
// repeat mode is RepeatOne. Without it, RepeatOne navigates like RepeatNone.
func WithRepeatOneReplay(enabled bool) Option {
	return func(s *Store) {
		s.repeatOneReplay = enabled
	}
}

// Store is the single source of truth for playback state.
// Every command is applied atomically; events are published after the
// lock is released.
type Store struct {
	mu sync.RWMutex

	current        *playlist.Track
	queue          *playlist.Playlist
	isPlaying      bool
	volume         float64
	isShuffle      bool
	repeatMode     RepeatMode
	isVideoVisible bool

	random          func() float64
	repeatOneReplay bool

	subs   []*Subscription
	subsMu sync.RWMutex

	closed bool
}

// New creates a store holding the default state.
func New(opts ...Option) *Store {
	s := &Store{
		queue:      playlist.NewPlaylist(),
		volume:     DefaultVolume,
		repeatMode: RepeatNone,
		random:     rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *Store) stateLocked() State {
	return State{
		CurrentTrack:   playlist.Clone(s.current),
		Queue:          s.queue.Tracks(),
		IsPlaying:      s.isPlaying,
		Volume:         s.volume,
		IsShuffle:      s.isShuffle,
		RepeatMode:     s.repeatMode,
		IsVideoVisible: s.isVideoVisible,
	}
}

// CurrentTrack returns a copy of the current track, or nil.
func (s *Store) CurrentTrack() *playlist.Track {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return playlist.Clone(s.current)
}

// IsPlaying returns the play/pause flag.
func (s *Store) IsPlaying() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isPlaying
}

// update runs fn under the write lock and publishes the resulting changes.
func (s *Store) update(fn func() bool) {
	s.mu.Lock()
	before := s.stateLocked()
	replayed := fn()
	after := s.stateLocked()
	s.mu.Unlock()

	s.publish(before, after, replayed)
}

// SetIsPlaying sets the play/pause flag.
func (s *Store) SetIsPlaying(playing bool) {
	s.update(func() bool {
		s.isPlaying = playing
		return false
	})
}

// TogglePlaying flips the play/pause flag.
func (s *Store) TogglePlaying() {
	s.update(func() bool {
		s.isPlaying = !s.isPlaying
		return false
	})
}

// SetIsVideoVisible sets the video visibility flag.
func (s *Store) SetIsVideoVisible(visible bool) {
	s.update(func() bool {
		s.isVideoVisible = visible
		return false
	})
}

// ToggleVideoVisible flips the video visibility flag.
func (s *Store) ToggleVideoVisible() {
	s.update(func() bool {
		s.isVideoVisible = !s.isVideoVisible
		return false
	})
}

// SetCurrentTrack sets the current track without touching the queue.
// Playback starts for a track and stops for nil.
func (s *Store) SetCurrentTrack(track *playlist.Track) {
	s.update(func() bool {
		s.current = playlist.Clone(track)
		s.isPlaying = track != nil
		return false
	})
}

// PlayTrack makes track current and starts playback, appending it to the
// queue when no queued track shares its id.
func (s *Store) PlayTrack(track playlist.Track) {
	s.update(func() bool {
		if !s.queue.Contains(track.ID) {
			s.queue.Add(track)
		}
		s.current = &track
		s.isPlaying = true
		return false
	})
}

// AddToQueue appends track to the end of the queue.
func (s *Store) AddToQueue(track playlist.Track) {
	s.update(func() bool {
		s.queue.Add(track)
		return false
	})
}

// SetQueue replaces the queue; the current track is kept.
func (s *Store) SetQueue(tracks []playlist.Track) {
	s.update(func() bool {
		s.queue.Replace(tracks)
		return false
	})
}

// SetVolume stores v as is; callers normalize to [0,1].
func (s *Store) SetVolume(v float64) {
	s.update(func() bool {
		s.volume = v
		return false
	})
}

// SetRepeatMode sets the repeat mode.
func (s *Store) SetRepeatMode(mode RepeatMode) {
	s.update(func() bool {
		s.repeatMode = mode
		return false
	})
}

// CycleRepeatMode advances none -> all -> none, passing through one when
// repeat-one replay is enabled. Returns the new mode.
func (s *Store) CycleRepeatMode() RepeatMode {
	var mode RepeatMode
	s.update(func() bool {
		switch s.repeatMode {
		case RepeatNone:
			s.repeatMode = RepeatAll
		case RepeatAll:
			if s.repeatOneReplay {
				s.repeatMode = RepeatOne
			} else {
				s.repeatMode = RepeatNone
			}
		default:
			s.repeatMode = RepeatNone
		}
		mode = s.repeatMode
		return false
	})
	return mode
}

// ToggleShuffle flips shuffle mode.
func (s *Store) ToggleShuffle() {
	s.update(func() bool {
		s.isShuffle = !s.isShuffle
		return false
	})
}

// Next advances to the following track according to shuffle and repeat.
func (s *Store) Next() {
	s.update(s.nextLocked)
}

func (s *Store) nextLocked() bool {
	n := s.queue.Len()
	if n == 0 {
		return false
	}

	if s.current != nil && s.repeatOneReplay && s.repeatMode == RepeatOne {
		s.isPlaying = true
		return true
	}

	var index int
	switch {
	case s.current == nil:
		index = 0
	case s.isShuffle:
		index = min(int(s.random()*float64(n)), n-1)
	default:
		// Not found yields -1, so navigation restarts at 0.
		index = s.queue.IndexOf(s.current.ID) + 1
	}

	var next *playlist.Track
	switch {
	case index >= 0 && index < n:
		next = s.queue.Track(index)
	case s.repeatMode == RepeatAll:
		next = s.queue.Track(0)
	default:
		s.isPlaying = false
		return false
	}

	// Landing on the current track again restarts it.
	replayed := s.current != nil && next.ID == s.current.ID
	s.current = next
	s.isPlaying = true
	return replayed
}

// Previous steps back one track, wrapping from the first to the last.
func (s *Store) Previous() {
	s.update(func() bool {
		n := s.queue.Len()
		if n == 0 || s.current == nil {
			return false
		}

		index := s.queue.IndexOf(s.current.ID) - 1
		if index < 0 {
			index = n - 1
		}
		s.current = s.queue.Track(index)
		s.isPlaying = true
		return false
	})
}

// Subscribe creates a new event subscription.
func (s *Store) Subscribe() *Subscription {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	sub := newSubscription()
	if s.closed {
		sub.close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// Unsubscribe removes sub and closes its Done channel.
func (s *Store) Unsubscribe(sub *Subscription) {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	for i, existing := range s.subs {
		if existing == sub {
			s.subs = slices.Delete(s.subs, i, i+1)
			sub.close()
			return
		}
	}
}

// Close closes every subscription. Commands keep working afterwards.
func (s *Store) Close() error {
	s.subsMu.Lock()
	defer s.subsMu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	for _, sub := range s.subs {
		sub.close()
	}
	s.subs = nil
	return nil
}

func (s *Store) publish(before, after State, replayed bool) {
	s.subsMu.RLock()
	defer s.subsMu.RUnlock()
	if len(s.subs) == 0 {
		return
	}

	trackChanged := replayed || !sameTrack(before.CurrentTrack, after.CurrentTrack)
	queueChanged := !slices.Equal(before.Queue, after.Queue)
	modeChanged := before.RepeatMode != after.RepeatMode || before.IsShuffle != after.IsShuffle

	for _, sub := range s.subs {
		if queueChanged {
			sub.sendQueue(QueueChange{Tracks: slices.Clone(after.Queue)})
		}
		if trackChanged {
			sub.sendTrack(TrackChange{
				Previous: playlist.Clone(before.CurrentTrack),
				Current:  playlist.Clone(after.CurrentTrack),
				Replayed: replayed,
			})
		}
		if before.IsPlaying != after.IsPlaying {
			sub.sendPlaying(PlayingChange{Playing: after.IsPlaying})
		}
		if modeChanged {
			sub.sendMode(ModeChange{RepeatMode: after.RepeatMode, Shuffle: after.IsShuffle})
		}
		if before.Volume != after.Volume {
			sub.sendVolume(VolumeChange{Volume: after.Volume})
		}
		if before.IsVideoVisible != after.IsVideoVisible {
			sub.sendVideo(VideoChange{Visible: after.IsVideoVisible})
		}
	}
}

func sameTrack(a, b *playlist.Track) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
