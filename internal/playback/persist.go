package playback

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/playlist"
)

// Loader reads the persisted player fields. A nil result means nothing was stored.
type Loader interface {
	LoadPlayer() (*Persisted, error)
}

// Saver stores the persisted player fields.
type Saver interface {
	SavePlayer(p Persisted) error
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func() (*Persisted, error)

// LoadPlayer calls f.
func (f LoaderFunc) LoadPlayer() (*Persisted, error) { return f() }

// SaverFunc adapts a function to Saver.
type SaverFunc func(p Persisted) error

// SavePlayer calls f.
func (f SaverFunc) SavePlayer(p Persisted) error { return f(p) }

// Persisted returns the allow-listed fields of the current state.
func (s *Store) Persisted() Persisted {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Persisted{
		Volume:       s.volume,
		IsShuffle:    s.isShuffle,
		RepeatMode:   s.repeatMode,
		Queue:        s.queue.Tracks(),
		CurrentTrack: playlist.Clone(s.current),
	}
}

// Restore applies previously persisted fields. Transient fields are untouched.
func (s *Store) Restore(p Persisted) {
	s.update(func() bool {
		s.volume = p.Volume
		s.isShuffle = p.IsShuffle
		s.repeatMode = ParseRepeatMode(string(p.RepeatMode))
		s.queue.Replace(p.Queue)
		s.current = playlist.Clone(p.CurrentTrack)
		return false
	})
}

// ResetTransient forces the fields that must never survive a reload to false.
func (s *Store) ResetTransient() {
	s.update(func() bool {
		s.isPlaying = false
		s.isVideoVisible = false
		return false
	})
}

// Rehydrate restores the state returned by loader. Nothing stored leaves
// the current state as is.
func (s *Store) Rehydrate(loader Loader) error {
	p, err := loader.LoadPlayer()
	if err != nil {
		return err
	}
	if p == nil {
		return nil
	}
	s.Restore(*p)
	return nil
}

// Autosave writes Persisted() through saver every time a persisted field
// changes, until ctx is done or the store is closed.
func (s *Store) Autosave(ctx context.Context, saver Saver) {
	sub := s.Subscribe()
	defer s.Unsubscribe(sub)

	last := s.Persisted()
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case <-sub.TrackChanged:
		case <-sub.QueueChanged:
		case <-sub.ModeChanged:
		case <-sub.VolumeChanged:
		case <-sub.PlayingChanged:
			continue
		case <-sub.VideoChanged:
			continue
		}

		p := s.Persisted()
		if persistedEqual(last, p) {
			continue
		}
		if err := saver.SavePlayer(p); err != nil {
			logrus.WithError(err).Warn("playback: save player state")
			continue
		}
		last = p
	}
}

func persistedEqual(a, b Persisted) bool {
	return a.Volume == b.Volume &&
		a.IsShuffle == b.IsShuffle &&
		a.RepeatMode == b.RepeatMode &&
		sameTrack(a.CurrentTrack, b.CurrentTrack) &&
		slices.Equal(a.Queue, b.Queue)
}
