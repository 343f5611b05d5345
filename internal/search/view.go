package search

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lyrifi/internal/ui"
	"github.com/llehouerou/lyrifi/internal/ui/render"
	"github.com/llehouerou/lyrifi/internal/ui/styles"
)

func inputBoxStyle(focused bool) lipgloss.Style {
	return styles.PanelStyle(focused)
}

func headerStyle() lipgloss.Style {
	return styles.T().S().Title
}

func selectedStyle() lipgloss.Style {
	return styles.T().S().Cursor
}

func normalStyle() lipgloss.Style {
	return styles.T().S().Base
}

func dimStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func (m Model) emptyMessage() string {
	switch {
	case m.loading:
		return "Searching..."
	case strings.TrimSpace(m.query) != "":
		return "No matches"
	default:
		return "Press / to search the catalog"
	}
}

// View renders the search box above the results panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	innerWidth := m.Width() - ui.BorderHeight

	box := inputBoxStyle(m.input.Focused()).Width(innerWidth).Render(m.input.View())

	header := "Results"
	if m.results.Len() > 0 {
		header = fmt.Sprintf("Results (%d)", m.results.Len())
	}
	lines := []string{
		headerStyle().Render(render.TruncateAndPad(header, innerWidth)),
		render.Separator(innerWidth),
	}
	lines = append(lines, m.renderRows(innerWidth)...)

	panel := styles.PanelStyle(m.IsFocused() && !m.input.Focused()).
		Width(innerWidth).
		Render(strings.Join(lines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, box, panel)
}

func (m Model) renderRows(innerWidth int) []string {
	height := m.results.ListHeight(ui.PanelOverhead)
	if height <= 0 {
		return nil
	}
	rows := make([]string, 0, height)

	if m.results.Len() == 0 {
		rows = append(rows, dimStyle().Render(render.TruncateAndPad(m.emptyMessage(), innerWidth)))
	}

	start, end := m.results.VisibleRange()
	for i := start; i < end; i++ {
		item := m.results.Items()[i]
		rows = append(rows, m.formatResultLine(item, innerWidth, i == m.results.SelectedIndex()))
	}
	for len(rows) < height {
		rows = append(rows, render.EmptyLine(innerWidth))
	}
	return rows
}

func (m Model) formatResultLine(item Item, innerW int, isCursor bool) string {
	left := item.LeftColumn()
	right := item.RightColumn()

	rightW := min(lipgloss.Width(right), innerW/3)
	right = render.Truncate(right, rightW)
	leftCell := render.TruncateAndPad(left, max(innerW-rightW-1, 1))
	rightCell := render.Pad(right, rightW)

	if isCursor && m.IsFocused() {
		return selectedStyle().Render(leftCell + " " + rightCell)
	}
	return normalStyle().Render(leftCell) + " " + dimStyle().Render(rightCell)
}
