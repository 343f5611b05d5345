// Package app is the interactive terminal player: catalog search, queue and
// player bar over the shared playback store.
package app

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lyrifi/internal/keymap"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/search"
	"github.com/llehouerou/lyrifi/internal/ui/helpbindings"
	"github.com/llehouerou/lyrifi/internal/ui/queuepanel"
)

// FocusTarget is the panel receiving navigation keys.
type FocusTarget int

const (
	FocusResults FocusTarget = iota
	FocusQueue
)

const (
	volumeStep = 0.05
	seekStep   = 10.0 // seconds
)

// Model is the root application model.
type Model struct {
	store   playback.Service
	view    PlayerView
	catalog Catalog
	keys    *keymap.Resolver
	sub     *playback.Subscription
	nav     NavigationStore

	search   search.Model
	queue    queuepanel.Model
	help     helpbindings.Model
	showHelp bool
	focus    FocusTarget
	status   string

	initCmd       tea.Cmd
	pendingSelect string // result id to select when results arrive

	width  int
	height int
}

// New creates the application model. It subscribes to store until quit.
func New(store playback.Service, view PlayerView, cat Catalog, opts ...Option) Model {
	m := Model{
		store:   store,
		view:    view,
		catalog: cat,
		keys:    keymap.NewResolver(keymap.Bindings),
		sub:     store.Subscribe(),
		search:  search.New(),
		queue:   queuepanel.New(),
		help:    helpbindings.New(),
		focus:   FocusResults,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.queue.Sync(store.State())
	m.applyFocus()
	if m.restoreNavigation() {
		m.search.FocusInput()
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForChange(m.sub), TickCmd(), textinput.Blink, m.initCmd)
}

// Focus returns the panel receiving navigation keys.
func (m Model) Focus() FocusTarget {
	return m.focus
}

// Status returns the message shown above the player bar.
func (m Model) Status() string {
	return m.status
}

func (m *Model) applyFocus() {
	m.search.SetFocused(m.focus == FocusResults)
	m.queue.SetFocused(m.focus == FocusQueue)
}

func (m *Model) toggleFocus() {
	if m.focus == FocusResults {
		m.focus = FocusQueue
	} else {
		m.focus = FocusResults
	}
	m.applyFocus()
	m.saveNavigation()
}

func (m *Model) quit() tea.Cmd {
	m.saveNavigation()
	m.store.Unsubscribe(m.sub)
	return tea.Quit
}
