package app

import (
	"time"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/playlist"
)

// EnqueueMode is what a selected result does to the queue.
type EnqueueMode int

const (
	EnqueuePlay    EnqueueMode = iota // play now, keep the queue
	EnqueueAdd                        // append to the queue
	EnqueueReplace                    // replace the queue and play
)

// ResultsMsg carries the answer to a search query.
type ResultsMsg struct {
	Query   string
	Results *catalog.Results
}

// ResolvedMsg carries a track whose video id was looked up.
type ResolvedMsg struct {
	Track playlist.Track
	Mode  EnqueueMode
}

// TracksMsg carries the tracks of a selected album or playlist.
type TracksMsg struct {
	Source string // album or playlist title
	Tracks []playlist.Track
	Mode   EnqueueMode
}

// StoreChangedMsg is sent when the playback store published an event.
type StoreChangedMsg struct{}

// TickMsg redraws the progress once per second.
type TickMsg time.Time
