// Package playerview keeps a video widget in sync with the playback store.
package playerview

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/widget"
	"github.com/llehouerou/lyrifi/internal/youtube"
)

const (
	defaultContainer    = "lyrifi-player"
	defaultPollInterval = time.Second
)

// Store is the part of the playback store the controller uses.
type Store interface {
	State() playback.State
	Next()
	Rehydrate(loader playback.Loader) error
	ResetTransient()
	Subscribe() *playback.Subscription
	Unsubscribe(sub *playback.Subscription)
}

var _ Store = (*playback.Store)(nil)

// Option configures a Controller.
type Option func(*Controller)

// WithContainer sets the container name passed to Runtime.Construct.
func WithContainer(name string) Option {
	return func(c *Controller) {
		c.container = name
	}
}

// WithPollInterval sets the progress poll period.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		c.pollInterval = d
	}
}

// Controller owns the widget handle. Store changes are applied to the
// widget; widget events reach the store only through Next.
type Controller struct {
	store        Store
	runtime      widget.Runtime
	container    string
	pollInterval time.Duration
	log          *logrus.Entry

	mu          sync.Mutex
	binding     Binding
	failed      bool
	mounted     bool
	ctx         context.Context
	cancel      context.CancelFunc
	loopDone    chan struct{}
	handle      widget.Handle
	handleReady bool
	generation  int
	trackID     string
	videoID     string
	progress    float64
	duration    float64
	pollCancel  context.CancelFunc
}

// New creates a controller for store driving widgets built by runtime.
func New(store Store, runtime widget.Runtime, opts ...Option) *Controller {
	c := &Controller{
		store:        store,
		runtime:      runtime,
		container:    defaultContainer,
		pollInterval: defaultPollInterval,
		log:          logrus.WithField("op", "playerview"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mount starts loading the widget runtime, rehydrates the store from loader
// (nil skips it), resets the transient fields and starts following the
// store. Mounting twice is a no-op.
func (c *Controller) Mount(ctx context.Context, loader playback.Loader) {
	c.mu.Lock()
	if c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = true
	c.ctx, c.cancel = context.WithCancel(ctx)
	c.loopDone = make(chan struct{})
	ctx, done := c.ctx, c.loopDone

	sub := c.store.Subscribe()
	if c.binding == Unloaded {
		c.binding = Loading
		go c.load(ctx)
	}
	c.mu.Unlock()

	if loader != nil {
		if err := c.store.Rehydrate(loader); err != nil {
			c.log.WithError(err).Warn("rehydrate player state")
		}
	}
	c.store.ResetTransient()

	// A runtime loaded by an earlier mount is bound right away.
	c.withLock(func() { c.syncTrackLocked(false) })

	go c.loop(ctx, sub, done)
}

// Unmount stops following the store, cancels the poll and destroys the
// widget. The runtime stays loaded.
func (c *Controller) Unmount() {
	c.mu.Lock()
	if !c.mounted {
		c.mu.Unlock()
		return
	}
	c.mounted = false
	c.cancel()
	done := c.loopDone
	c.unbindLocked()
	c.mu.Unlock()

	<-done
}

func (c *Controller) load(ctx context.Context) {
	err := c.runtime.Load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err == nil:
		c.binding = Ready
		c.log.Debug("widget runtime loaded")
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		// Unmounted while loading; the next Mount retries.
		c.binding = Unloaded
		return
	default:
		c.failed = true
		c.log.WithError(err).Error("widget runtime failed to load")
		return
	}
	if c.mounted {
		c.syncTrackLocked(false)
	}
}

func (c *Controller) loop(ctx context.Context, sub *playback.Subscription, done chan struct{}) {
	defer close(done)
	defer c.store.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return
		case <-sub.Done:
			return
		case e := <-sub.TrackChanged:
			c.withLock(func() { c.syncTrackLocked(e.Replayed) })
		case <-sub.PlayingChanged:
			c.withLock(c.syncPlayingLocked)
		case <-sub.VolumeChanged:
			c.withLock(c.syncVolumeLocked)
		case <-sub.VideoChanged:
			c.withLock(c.syncVisibleLocked)
		case <-sub.QueueChanged:
		case <-sub.ModeChanged:
		}
	}
}

func (c *Controller) withLock(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mounted {
		fn()
	}
}

// syncTrackLocked binds the widget to the current track's video.
// State is read under c.mu so concurrent syncs never apply a stale track.
func (c *Controller) syncTrackLocked(replayed bool) {
	if c.binding != Ready && c.binding != Bound {
		return
	}

	st := c.store.State()
	track := st.CurrentTrack
	videoID := ""
	if track != nil {
		videoID = youtube.VideoID(track.YouTubeID)
	}

	if videoID == "" {
		if c.binding == Bound {
			c.log.Debug("current track has no video, unbinding")
		}
		c.unbindLocked()
		return
	}

	if c.binding == Bound && c.handle != nil {
		switch {
		case videoID == c.videoID && replayed:
			c.trackID = track.ID
			c.progress = 0
			if c.handleReady {
				c.handle.SeekTo(0, true)
			}
			c.applyPlayingLocked(st.IsPlaying)
			return
		case videoID == c.videoID:
			c.trackID = track.ID
			return
		}

		if loader, ok := c.handle.(widget.VideoLoader); ok && c.handleReady {
			loader.LoadVideoByID(videoID)
			c.trackID = track.ID
			c.videoID = videoID
			c.progress = 0
			c.duration = 0
			c.applyPlayingLocked(st.IsPlaying)
			return
		}
		c.unbindLocked()
	}

	c.constructLocked(track.ID, videoID)
}

func (c *Controller) constructLocked(trackID, videoID string) {
	c.generation++
	gen := c.generation
	h, err := c.runtime.Construct(c.container, videoID, widget.Options{
		OnReady:       func() { c.onReady(gen) },
		OnStateChange: func(s widget.State) { c.onStateChange(gen, s) },
	})
	if err != nil {
		c.log.WithError(err).WithField("video", videoID).Warn("construct widget")
		return
	}

	c.handle = h
	c.handleReady = false
	c.binding = Bound
	c.trackID = trackID
	c.videoID = videoID
	c.progress = 0
	c.duration = 0
}

// unbindLocked destroys the handle and falls back to Ready.
func (c *Controller) unbindLocked() {
	c.stopPollLocked()
	if c.handle != nil {
		c.handle.Destroy()
		c.handle = nil
	}
	c.generation++
	c.handleReady = false
	c.trackID = ""
	c.videoID = ""
	c.progress = 0
	c.duration = 0
	if c.binding == Bound {
		c.binding = Ready
	}
}

func (c *Controller) onReady(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.handle == nil {
		return
	}
	c.handleReady = true

	st := c.store.State()
	c.handle.SetVolume(st.VolumePercent())
	c.duration = c.handle.Duration()
	c.syncVisibleLocked()
	c.applyPlayingLocked(st.IsPlaying)
}

func (c *Controller) onStateChange(gen int, s widget.State) {
	switch s {
	case widget.StateCued:
		// In-place loads report their new duration here, even while paused.
		c.mu.Lock()
		defer c.mu.Unlock()
		if gen == c.generation && c.handle != nil && c.handleReady {
			c.duration = c.handle.Duration()
		}
	case widget.StateEnded:
		c.mu.Lock()
		current := gen == c.generation && c.handle != nil
		c.mu.Unlock()

		if current {
			c.store.Next()
		}
	}
}

func (c *Controller) syncPlayingLocked() {
	c.applyPlayingLocked(c.store.State().IsPlaying)
}

func (c *Controller) applyPlayingLocked(playing bool) {
	if !playing {
		c.stopPollLocked()
	}
	if c.handle == nil || !c.handleReady {
		return
	}
	if playing {
		c.handle.PlayVideo()
		c.startPollLocked()
	} else {
		c.handle.PauseVideo()
	}
}

func (c *Controller) syncVolumeLocked() {
	if c.handle == nil || !c.handleReady {
		return
	}
	c.handle.SetVolume(c.store.State().VolumePercent())
}

func (c *Controller) syncVisibleLocked() {
	v, ok := c.handle.(widget.Visibility)
	if !ok || !c.handleReady {
		return
	}
	v.SetVisible(c.store.State().IsVideoVisible)
}

func (c *Controller) startPollLocked() {
	if c.pollCancel != nil || c.ctx == nil {
		return
	}
	ctx, cancel := context.WithCancel(c.ctx)
	c.pollCancel = cancel
	go c.poll(ctx, c.handle)
}

func (c *Controller) stopPollLocked() {
	if c.pollCancel != nil {
		c.pollCancel()
		c.pollCancel = nil
	}
}

// poll copies the widget position into the view-local progress.
func (c *Controller) poll(ctx context.Context, h widget.Handle) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			if c.handle == h {
				c.progress = h.CurrentTime()
				if c.duration <= 0 {
					c.duration = h.Duration()
				}
			}
			c.mu.Unlock()
		}
	}
}

// Seek moves to seconds. Progress is updated before the widget confirms.
func (c *Controller) Seek(seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.progress = seconds
	if c.handle != nil && c.handleReady {
		c.handle.SeekTo(seconds, true)
	}
}

// Progress returns the last polled (or sought) position in seconds.
func (c *Controller) Progress() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.progress
}

// Duration returns the duration reported by the widget, 0 until known.
func (c *Controller) Duration() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.duration
}

// Binding returns the current widget binding state.
func (c *Controller) Binding() Binding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.binding
}

// Failed reports whether the runtime failed to load. It is never retried.
func (c *Controller) Failed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.failed
}

// BoundTrackID returns the id of the track the widget is bound to.
func (c *Controller) BoundTrackID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.trackID
}
