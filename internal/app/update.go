package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/lyrifi/internal/catalog"
	"github.com/llehouerou/lyrifi/internal/search"
	"github.com/llehouerou/lyrifi/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case search.QueryMsg:
		return m.handleQuery(msg)

	case ResultsMsg:
		if m.search.SetResults(msg.Query, msg.Results) {
			m.status = ""
			if m.pendingSelect != "" {
				m.search.SelectID(m.pendingSelect)
				m.pendingSelect = ""
			}
			m.saveNavigation()
		}
		return m, nil

	case ResolvedMsg:
		if !msg.Track.HasVideo() {
			m.status = "No video found for '" + msg.Track.Title + "'"
		} else {
			m.status = ""
		}
		m.enqueueTrack(msg.Track, msg.Mode)
		return m, nil

	case TracksMsg:
		m.handleTracks(msg)
		return m, nil

	case StoreChangedMsg:
		m.queue.Sync(m.store.State())
		m.resize()
		return m, waitForChange(m.sub)

	case helpbindings.CloseMsg:
		m.showHelp = false
		return m, nil

	case TickMsg:
		return m, TickCmd()
	}

	return m, nil
}

func (m Model) handleQuery(msg search.QueryMsg) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(msg.Query) == "" {
		m.search.SetResults(msg.Query, catalog.EmptyResults())
		return m, nil
	}
	m.focus = FocusResults
	m.applyFocus()
	return m, m.searchCmd(msg.Query)
}

func (m *Model) handleTracks(msg TracksMsg) {
	if len(msg.Tracks) == 0 {
		m.status = "No tracks in '" + msg.Source + "'"
		return
	}
	m.status = ""

	switch msg.Mode {
	case EnqueueAdd:
		for _, t := range msg.Tracks {
			m.store.AddToQueue(t)
		}
	case EnqueuePlay, EnqueueReplace:
		m.store.SetQueue(msg.Tracks)
		first := msg.Tracks[0]
		m.store.SetCurrentTrack(&first)
	}
}
