// Package widget defines the contract of the external video player the
// player view drives.
package widget

import "context"

// Options carries the callbacks a widget fires from its own goroutine.
type Options struct {
	OnReady       func()
	OnStateChange func(State)
}

// Runtime loads the widget implementation and constructs bound instances.
type Runtime interface {
	// Load prepares the runtime (script load, binary lookup). It is called once.
	Load(ctx context.Context) error
	// Construct binds a new widget to videoID inside container.
	Construct(container, videoID string, opts Options) (Handle, error)
}

// Handle is a constructed widget. Every method is fire-and-forget.
type Handle interface {
	PlayVideo()
	PauseVideo()
	SeekTo(seconds float64, allowSeekAhead bool)
	SetVolume(percent int)
	CurrentTime() float64
	Duration() float64
	Destroy()
}

// VideoLoader is implemented by handles that can switch video in place.
type VideoLoader interface {
	LoadVideoByID(videoID string)
}

// Visibility is implemented by handles that can hide their video output.
type Visibility interface {
	SetVisible(visible bool)
}
