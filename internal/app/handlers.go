package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lyrifi/internal/keymap"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/search"
)

// handleKeyMsg routes a key to the help panel, the search box or an action.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, m.quit()
	}

	if m.showHelp {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if m.search.InputFocused() {
		return m, m.search.UpdateInput(msg)
	}

	action := m.keys.Resolve(msg.String(),
		keymap.ContextGlobal, keymap.ContextPlayback, keymap.ContextNavigation, m.focusContext())
	switch action { //nolint:exhaustive // remaining actions depend on focus
	case keymap.ActionQuit:
		return m, m.quit()
	case keymap.ActionSwitchFocus:
		m.toggleFocus()
		return m, nil
	case keymap.ActionSearch:
		m.focus = FocusResults
		m.applyFocus()
		return m, m.search.FocusInput()
	case keymap.ActionHelp:
		m.showHelp = true
		return m, nil
	}

	if m.handlePlaybackAction(action) {
		return m, nil
	}

	if m.focus == FocusQueue {
		return m, m.handleQueueAction(action)
	}
	return m, m.handleResultAction(action)
}

func (m Model) focusContext() string {
	if m.focus == FocusQueue {
		return keymap.ContextQueue
	}
	return keymap.ContextResults
}

// handlePlaybackAction applies a playback key and reports whether it was one.
func (m *Model) handlePlaybackAction(action keymap.Action) bool {
	switch action { //nolint:exhaustive // only playback actions
	case keymap.ActionPlayPause:
		if m.store.CurrentTrack() != nil {
			m.store.TogglePlaying()
		}
	case keymap.ActionNextTrack:
		m.store.Next()
	case keymap.ActionPrevTrack:
		m.store.Previous()
	case keymap.ActionSeekForward:
		m.seekBy(seekStep)
	case keymap.ActionSeekBack:
		m.seekBy(-seekStep)
	case keymap.ActionToggleVideo:
		m.store.ToggleVideoVisible()
	case keymap.ActionCycleRepeat:
		m.status = "Repeat: " + m.store.CycleRepeatMode().String()
	case keymap.ActionToggleShuffle:
		m.store.ToggleShuffle()
	case keymap.ActionVolumeUp:
		m.changeVolume(volumeStep)
	case keymap.ActionVolumeDown:
		m.changeVolume(-volumeStep)
	default:
		return false
	}
	return true
}

// seekBy moves the playback position by delta seconds, within the known duration.
func (m *Model) seekBy(delta float64) {
	if m.view == nil || m.store.CurrentTrack() == nil {
		return
	}
	pos := max(m.view.Progress()+delta, 0)
	if d := m.view.Duration(); d > 0 {
		pos = min(pos, d)
	}
	m.view.Seek(pos)
}

func (m *Model) changeVolume(delta float64) {
	v := m.store.State().Volume + delta
	m.store.SetVolume(min(max(v, 0), 1))
}

func (m *Model) handleQueueAction(action keymap.Action) tea.Cmd {
	if m.queue.Apply(action) {
		return nil
	}
	switch action { //nolint:exhaustive // queue panel actions only
	case keymap.ActionSelect:
		if t, ok := m.queue.Selected(); ok {
			m.store.SetCurrentTrack(&t)
		}
	case keymap.ActionClear:
		m.store.SetQueue(nil)
		m.status = "Queue cleared"
	}
	return nil
}

func (m *Model) handleResultAction(action keymap.Action) tea.Cmd {
	if m.search.Apply(action) {
		return nil
	}

	var mode EnqueueMode
	switch action { //nolint:exhaustive // result actions only
	case keymap.ActionSelect:
		mode = EnqueuePlay
	case keymap.ActionAdd:
		mode = EnqueueAdd
	case keymap.ActionReplace:
		mode = EnqueueReplace
	default:
		return nil
	}

	item, ok := m.search.Selected()
	if !ok {
		return nil
	}

	switch item.Kind {
	case search.KindTrack:
		track, ok := item.PlayableTrack()
		if !ok {
			return nil
		}
		if !track.HasVideo() {
			m.status = "Looking up video for '" + track.Title + "'..."
			return m.resolveCmd(track, mode)
		}
		m.enqueueTrack(track, mode)
	case search.KindArtist:
		if mode == EnqueuePlay {
			return m.search.SetQuery(item.Title)
		}
	case search.KindAlbum, search.KindPlaylist:
		m.status = "Loading '" + item.Title + "'..."
		return m.collectionCmd(item, mode)
	}
	return nil
}

func (m *Model) enqueueTrack(track playlist.Track, mode EnqueueMode) {
	switch mode {
	case EnqueuePlay:
		m.store.PlayTrack(track)
	case EnqueueAdd:
		m.store.AddToQueue(track)
		m.status = "Added '" + track.Title + "' to queue"
	case EnqueueReplace:
		m.store.SetQueue([]playlist.Track{track})
		m.store.PlayTrack(track)
	}
}
