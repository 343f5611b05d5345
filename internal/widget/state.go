package widget

// State is a widget playback state. Values match the YouTube iframe API.
//
//	Unstarted ──load──▶ Cued ──play──▶ Buffering ◀──▶ Playing ◀──▶ Paused
//	                                                     │
//	                                                     ▼
//	                                                   Ended
type State int

const (
	StateUnstarted State = -1
	StateEnded     State = 0
	StatePlaying   State = 1
	StatePaused    State = 2
	StateBuffering State = 3
	StateCued      State = 5
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "Unstarted"
	case StateEnded:
		return "Ended"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateBuffering:
		return "Buffering"
	case StateCued:
		return "Cued"
	default:
		return "Unknown"
	}
}
