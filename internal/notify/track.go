package notify

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playlist"
)

const trackTimeout = 5000 // ms

// ForTrack builds the "now playing" notification for t.
func ForTrack(t playlist.Track, replaces uint32) Notification {
	body := t.Artist
	if t.Album != "" {
		if body != "" {
			body += " - "
		}
		body += t.Album
	}
	return Notification{
		Title:      t.Title,
		Body:       body,
		Icon:       t.CoverArt,
		Timeout:    trackTimeout,
		ReplacesID: replaces,
		Urgency:    UrgencyLow,
	}
}

// FollowTracks notifies on every track change of store until ctx is done.
// Each notification replaces the previous one. Replays are not announced.
func FollowTracks(ctx context.Context, store playback.Service, n Notifier) {
	log := logrus.WithField("op", "notify")
	sub := store.Subscribe()
	defer store.Unsubscribe(sub)

	var last uint32
	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case e := <-sub.TrackChanged:
			if e.Current == nil || e.Replayed {
				continue
			}
			id, err := n.Notify(ForTrack(*e.Current, last))
			if err != nil {
				log.WithError(err).Debug("notification failed")
				continue
			}
			last = id
		}
	}
}
