// Package helpbindings provides a scrollable panel listing the key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lyrifi/internal/keymap"
	"github.com/llehouerou/lyrifi/internal/ui"
	"github.com/llehouerou/lyrifi/internal/ui/styles"
)

// CloseMsg signals the help panel should close.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextPlayback,
	keymap.ContextNavigation,
	keymap.ContextResults,
	keymap.ContextQueue,
}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal:     "Global",
	keymap.ContextPlayback:   "Playback",
	keymap.ContextNavigation: "Navigation",
	keymap.ContextResults:    "Search Results",
	keymap.ContextQueue:      "Queue Panel",
}

// Model holds the state for the help panel.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help panel listing every binding context.
func New() Model {
	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}
	return Model{bindings: bindings}
}

// Update scrolls the panel or closes it.
func (m Model) Update(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "?", "esc", "q":
		m.scrollOffset = 0
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the help panel inside a border.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := strings.Split(m.buildContent(), "\n")
	visibleHeight := m.visibleHeight()
	start := min(m.scrollOffset, len(lines))
	end := min(start+visibleHeight, len(lines))

	titleStyle := styles.T().S().Title
	footerStyle := styles.T().S().Subtle

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Help"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines[start:end], "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(footerStyle.Render(m.buildFooter()))

	return styles.PanelStyle(true).
		Width(m.Width() - ui.BorderHeight).
		Render(sb.String())
}

func (m Model) buildContent() string {
	var sb strings.Builder

	keyStyle := lipgloss.NewStyle().Foreground(styles.T().Primary).Bold(true)
	descStyle := styles.T().S().Base
	headerStyle := lipgloss.NewStyle().Foreground(styles.T().Secondary).Bold(true)
	separatorStyle := styles.T().S().Subtle

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, len(keyLabel(b.Keys)))
	}

	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(headerStyle.Render(label))
			sb.WriteString("\n")
			sb.WriteString(separatorStyle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		keyStr := keyLabel(b.Keys)
		sb.WriteString(keyStyle.Render(keyStr + strings.Repeat(" ", maxKeyWidth-len(keyStr))))
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins keys for display, naming the space bar.
func keyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		labels[i] = k
	}
	return strings.Join(labels, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc close"
	}
	return "j/k scroll · ?/esc close"
}

func (m Model) visibleHeight() int {
	// border, title, footer and their blank lines
	return max(m.Height()-6, 3)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
