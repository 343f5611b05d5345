package app

import (
	"github.com/llehouerou/lyrifi/internal/state"
)

const (
	focusNameSearch  = "search"
	focusNameResults = "results"
	focusNameQueue   = "queue"
)

// NavigationStore persists the UI position across launches.
type NavigationStore interface {
	GetNavigation() (*state.NavigationState, error)
	SaveNavigation(s state.NavigationState)
}

var _ NavigationStore = (*state.Manager)(nil)

// Option configures the application model.
type Option func(*Model)

// WithNavigation restores the last query, focus and selection from s and
// saves them back as they change.
func WithNavigation(s NavigationStore) Option {
	return func(m *Model) {
		m.nav = s
	}
}

// restoreNavigation applies the saved position and reports whether the
// search box should start focused. The saved query is searched again; its
// selection is applied when the results arrive.
func (m *Model) restoreNavigation() (focusInput bool) {
	if m.nav == nil {
		return true
	}
	saved, err := m.nav.GetNavigation()
	if err != nil || saved == nil {
		return true
	}

	if saved.Focus == focusNameQueue {
		m.focus = FocusQueue
		m.queue.SelectID(saved.SelectedID)
	} else if saved.SelectedID != "" {
		m.pendingSelect = saved.SelectedID
	}
	m.applyFocus()

	if saved.Query != "" {
		m.initCmd = m.search.SetQuery(saved.Query)
	}
	return saved.Focus == focusNameSearch
}

// saveNavigation stores the current position when a store is configured.
func (m *Model) saveNavigation() {
	if m.nav == nil {
		return
	}

	s := state.NavigationState{Query: m.search.Query()}
	switch {
	case m.search.InputFocused():
		s.Focus = focusNameSearch
	case m.focus == FocusQueue:
		s.Focus = focusNameQueue
		if t, ok := m.queue.Selected(); ok {
			s.SelectedID = t.ID
		}
	default:
		s.Focus = focusNameResults
		if item, ok := m.search.Selected(); ok {
			s.SelectedID = item.ID
		}
	}
	m.nav.SaveNavigation(s)
}
