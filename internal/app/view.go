package app

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lyrifi/internal/ui/playerbar"
	"github.com/llehouerou/lyrifi/internal/ui/render"
	"github.com/llehouerou/lyrifi/internal/ui/styles"
)

const (
	statusHeight = 1
	narrowWidth  = 80
	helpHint     = "? help · / search · tab switch panel · q quit"
)

// View renders the application UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var main string
	switch {
	case m.showHelp:
		main = m.help.View()
	case m.isNarrow():
		main = lipgloss.JoinVertical(lipgloss.Left, m.search.View(), m.queue.View())
	default:
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.search.View(), m.queue.View())
	}

	view := render.ClipLines(main, m.width) + "\n" + m.renderStatus()
	if bar := m.renderPlayerBar(); bar != "" {
		view += "\n" + bar
	}
	return view
}

func (m Model) renderStatus() string {
	text := m.status
	style := styles.T().S().Warning
	if text == "" {
		text = helpHint
		style = styles.T().S().Subtle
	}
	return style.Render(render.TruncateAndPad(text, m.width))
}

func (m Model) renderPlayerBar() string {
	return playerbar.Render(playerbar.NewState(m.store.State(), m.view), m.width)
}

func (m Model) isNarrow() bool {
	return m.width < narrowWidth
}

// resize lays the panels out over the space left by the status line and
// the player bar.
func (m *Model) resize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	mainHeight := m.height - statusHeight
	if m.store.CurrentTrack() != nil {
		mainHeight -= playerbar.Height
	}
	mainHeight = max(mainHeight, 0)

	m.help.SetSize(m.width, mainHeight)

	if m.isNarrow() {
		searchHeight := mainHeight * 3 / 5
		m.search.SetSize(m.width, searchHeight)
		m.queue.SetSize(m.width, mainHeight-searchHeight)
		return
	}
	queueWidth := m.width * 2 / 5
	m.search.SetSize(m.width-queueWidth, mainHeight)
	m.queue.SetSize(queueWidth, mainHeight)
}
