package queuepanel

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lyrifi/internal/icons"
	"github.com/llehouerou/lyrifi/internal/playlist"
	"github.com/llehouerou/lyrifi/internal/ui"
	"github.com/llehouerou/lyrifi/internal/ui/render"
	"github.com/llehouerou/lyrifi/internal/ui/styles"
)

// View renders the queue panel.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	innerWidth := m.Width() - ui.BorderHeight
	listHeight := m.list.ListHeight(ui.PanelOverhead)

	header := m.renderHeader(innerWidth)
	separator := render.Separator(innerWidth)
	trackList := m.renderTrackList(innerWidth, listHeight)

	content := header + "\n" + separator + "\n" + trackList

	return styles.PanelStyle(m.IsFocused()).
		Width(innerWidth).
		Render(content)
}

// renderHeader renders the queue header with position and mode icons.
func (m Model) renderHeader(innerWidth int) string {
	headerLeftText := fmt.Sprintf("Queue (%d/%d)", m.CurrentIndex()+1, m.Len())

	modeIcons, modeIconsWidth := m.renderModeIcons()
	headerLeftText = render.TruncateAndPad(headerLeftText, innerWidth-modeIconsWidth)

	return headerStyle().Render(headerLeftText) + modeIcons
}

// renderModeIcons returns the styled mode icons and their display width.
func (m Model) renderModeIcons() (styled string, width int) {
	var parts []string

	if m.shuffle {
		parts = append(parts, icons.Shuffle())
	}

	if r := icons.Repeat(m.repeatMode); r != "" {
		parts = append(parts, r)
	}

	if len(parts) == 0 {
		return "", 0
	}

	raw := strings.Join(parts, "  ")
	width = lipgloss.Width(raw) + 1
	styled = modeIconStyle().Render(raw) + " "
	return styled, width
}

// renderTrackList renders the visible tracks and pads to listHeight.
func (m Model) renderTrackList(innerWidth, listHeight int) string {
	if listHeight <= 0 {
		return ""
	}
	lines := make([]string, 0, listHeight)

	if m.Len() == 0 {
		lines = append(lines, dimmedStyle().Render(render.TruncateAndPad("Queue is empty", innerWidth)))
	}

	playingIdx := m.CurrentIndex()
	tracks := m.list.Items()
	start, end := m.list.VisibleRange()
	for idx := start; idx < end; idx++ {
		lines = append(lines, m.renderTrackLine(tracks[idx], idx, playingIdx, innerWidth))
	}
	for len(lines) < listHeight {
		lines = append(lines, render.EmptyLine(innerWidth))
	}

	return strings.Join(lines, "\n")
}

// renderTrackLine renders a single track line: marker, title, artist, duration.
func (m Model) renderTrackLine(track playlist.Track, idx, playingIdx, width int) string {
	prefix := "  "
	if idx == playingIdx {
		prefix = playingSymbol + " "
	}

	duration := playlist.FormatDuration(track.Duration)
	if !track.HasVideo() {
		// tracks without a video cannot be played by the widget
		duration = "--:--"
	}
	suffix := " " + duration

	contentWidth := max(width-lipgloss.Width(prefix)-lipgloss.Width(suffix), 2)
	titleWidth := contentWidth / 2
	artistWidth := contentWidth - titleWidth

	line := prefix +
		render.TruncateAndPad(track.Title, titleWidth) +
		render.TruncateAndPad(track.Artist, artistWidth) +
		suffix

	return m.trackStyle(idx, playingIdx).Render(line)
}

// trackStyle returns the appropriate style for a track based on its state.
func (m Model) trackStyle(idx, playingIdx int) lipgloss.Style {
	isCursor := idx == m.list.SelectedIndex() && m.IsFocused()
	isPlaying := idx == playingIdx
	isPlayed := playingIdx >= 0 && idx < playingIdx

	switch {
	case isCursor && isPlaying:
		return cursorStyle().Inherit(playingStyle())
	case isCursor && isPlayed:
		return cursorStyle().Inherit(dimmedStyle())
	case isCursor:
		return cursorStyle()
	case isPlaying:
		return playingStyle()
	case isPlayed:
		return dimmedStyle()
	default:
		return trackStyle()
	}
}
