package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
// Sends never block: a full channel drops the event, so consumers
// should re-read Store.State() rather than rely on every event.
type Subscription struct {
	TrackChanged   <-chan TrackChange
	PlayingChanged <-chan PlayingChange
	QueueChanged   <-chan QueueChange
	ModeChanged    <-chan ModeChange
	VolumeChanged  <-chan VolumeChange
	VideoChanged   <-chan VideoChange
	Done           <-chan struct{}

	// Internal write channels
	trackCh   chan TrackChange
	playingCh chan PlayingChange
	queueCh   chan QueueChange
	modeCh    chan ModeChange
	volumeCh  chan VolumeChange
	videoCh   chan VideoChange
	doneCh    chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		trackCh:   make(chan TrackChange, eventBufferSize),
		playingCh: make(chan PlayingChange, eventBufferSize),
		queueCh:   make(chan QueueChange, eventBufferSize),
		modeCh:    make(chan ModeChange, eventBufferSize),
		volumeCh:  make(chan VolumeChange, eventBufferSize),
		videoCh:   make(chan VideoChange, eventBufferSize),
		doneCh:    make(chan struct{}),
	}
	s.TrackChanged = s.trackCh
	s.PlayingChanged = s.playingCh
	s.QueueChanged = s.queueCh
	s.ModeChanged = s.modeCh
	s.VolumeChanged = s.volumeCh
	s.VideoChanged = s.videoCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// sendTrack sends a track change event (non-blocking).
func (s *Subscription) sendTrack(e TrackChange) {
	select {
	case s.trackCh <- e:
	default:
		// Drop if buffer full
	}
}

func (s *Subscription) sendPlaying(e PlayingChange) {
	select {
	case s.playingCh <- e:
	default:
	}
}

func (s *Subscription) sendQueue(e QueueChange) {
	select {
	case s.queueCh <- e:
	default:
	}
}

func (s *Subscription) sendMode(e ModeChange) {
	select {
	case s.modeCh <- e:
	default:
	}
}

func (s *Subscription) sendVolume(e VolumeChange) {
	select {
	case s.volumeCh <- e:
	default:
	}
}

func (s *Subscription) sendVideo(e VideoChange) {
	select {
	case s.videoCh <- e:
	default:
	}
}
