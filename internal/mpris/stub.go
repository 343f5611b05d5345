//go:build !linux

package mpris

import "github.com/llehouerou/lyrifi/internal/playback"

// Position is the part of the player view that knows where the video is.
type Position interface {
	Progress() float64 // seconds
	Seek(seconds float64)
}

// Adapter is a no-op on non-Linux platforms.
type Adapter struct{}

// New returns a no-op adapter on non-Linux platforms.
func New(_ playback.Service, _ Position) (*Adapter, error) {
	return &Adapter{}, nil
}

// Close is a no-op on non-Linux platforms.
func (a *Adapter) Close() error {
	return nil
}
