// Package queuepanel renders the play queue held by the playback store.
package queuepanel

import (
	"github.com/llehouerou/lyrifi/internal/keymap"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/ui"
	"github.com/llehouerou/lyrifi/internal/ui/list"
)

// Model represents the queue panel state.
type Model struct {
	list       list.Model[playlist.Track]
	currentID  string
	shuffle    bool
	repeatMode playback.RepeatMode
}

// New creates an empty queue panel.
func New() Model {
	return Model{list: list.New[playlist.Track](ui.ScrollMargin)}
}

// Sync copies the queue, current track and modes from a store snapshot.
// The cursor stays where it was, clamped to the new length.
func (m *Model) Sync(s playback.State) {
	m.list.SetItems(s.Queue)
	m.currentID = ""
	if s.CurrentTrack != nil {
		m.currentID = s.CurrentTrack.ID
	}
	m.shuffle = s.IsShuffle
	m.repeatMode = s.RepeatMode
}

// SetFocused sets whether the panel is focused.
func (m *Model) SetFocused(focused bool) {
	m.list.SetFocused(focused)
}

// IsFocused returns whether the panel is focused.
func (m Model) IsFocused() bool {
	return m.list.IsFocused()
}

// SetSize sets the panel dimensions.
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Width returns the panel width.
func (m Model) Width() int {
	return m.list.Width()
}

// Height returns the panel height.
func (m Model) Height() int {
	return m.list.Height()
}

// Apply performs a navigation action and reports whether it was one.
func (m *Model) Apply(action keymap.Action) bool {
	return m.list.Apply(action)
}

// Selected returns the track under the cursor.
func (m Model) Selected() (playlist.Track, bool) {
	return m.list.Selected()
}

// SelectID moves the cursor to the first track with id and reports whether it exists.
func (m *Model) SelectID(id string) bool {
	for i, t := range m.list.Items() {
		if t.ID == id {
			m.list.Jump(i)
			return true
		}
	}
	return false
}

// Len returns the number of queued tracks.
func (m Model) Len() int {
	return m.list.Len()
}

// CurrentIndex returns the position of the current track in the queue, or -1.
// With duplicates, the first occurrence wins.
func (m Model) CurrentIndex() int {
	if m.currentID == "" {
		return -1
	}
	for i, t := range m.list.Items() {
		if t.ID == m.currentID {
			return i
		}
	}
	return -1
}
