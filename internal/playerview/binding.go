package playerview

// Binding is the lifecycle of the widget binding.
//
//	Unloaded ──Mount──▶ Loading ──Load ok──▶ Ready ──track with video──▶ Bound
//	                       │                   ▲                           │
//	                  Load failed              └──track without video──────┘
//	                 (stays, failed)
type Binding int

const (
	Unloaded Binding = iota
	Loading
	Ready
	Bound
)

func (b Binding) String() string {
	switch b {
	case Unloaded:
		return "Unloaded"
	case Loading:
		return "Loading"
	case Ready:
		return "Ready"
	case Bound:
		return "Bound"
	default:
		return "Unknown"
	}
}
