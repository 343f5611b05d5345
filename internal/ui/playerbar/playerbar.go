// Package playerbar renders the one-line player bar at the bottom of the screen.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lyrifi/internal/icons"
	"github.com/llehouerou/lyrifi/internal/playback"
	"github.com/llehouerou/lyrifi/internal/playerview"
	"github.com/llehouerou/lyrifi/internal/ui/render"
	"github.com/llehouerou/lyrifi/internal/ui/styles"
)

// Height is the player bar height: top border + content + bottom border.
const Height = 3

// View is the part of the player view the bar reports on.
type View interface {
	Progress() float64
	Duration() float64
	Binding() playerview.Binding
	Failed() bool
}

// State holds everything needed to render the player bar.
type State struct {
	HasTrack     bool
	Playing      bool
	Title        string
	Artist       string
	Album        string
	Position     time.Duration
	Duration     time.Duration
	Volume       int // percent
	Shuffle      bool
	Repeat       playback.RepeatMode
	VideoVisible bool
	NoVideo      bool // current track has no video
	Loading      bool // widget runtime still loading
	Failed       bool // widget runtime failed to load
}

// NewState builds a State from a store snapshot and the player view.
// The track's catalog duration is used until the widget reports one.
func NewState(s playback.State, v View) State {
	st := State{
		Volume:       s.VolumePercent(),
		Shuffle:      s.IsShuffle,
		Repeat:       s.RepeatMode,
		VideoVisible: s.IsVideoVisible,
	}
	if s.CurrentTrack == nil {
		return st
	}

	track := s.CurrentTrack
	st.HasTrack = true
	st.Playing = s.IsPlaying
	st.Title = track.Title
	st.Artist = track.Artist
	st.Album = track.Album
	st.NoVideo = !track.HasVideo()
	st.Duration = time.Duration(track.Duration) * time.Second

	if v != nil {
		st.Position = seconds(v.Progress())
		if d := v.Duration(); d > 0 {
			st.Duration = seconds(d)
		}
		st.Loading = v.Binding() == playerview.Loading && !v.Failed()
		st.Failed = v.Failed()
	}
	return st
}

func seconds(f float64) time.Duration {
	return time.Duration(f * float64(time.Second))
}

// Render returns the player bar string for the given width.
// Returns empty string when there is no current track.
func Render(s State, width int) string {
	if !s.HasTrack {
		return ""
	}

	innerWidth := max(width-6, 0)

	status := icons.PlayState(s.Playing)
	title := s.Title
	if title == "" {
		title = "Unknown Track"
	}

	var infoParts []string
	if s.Artist != "" {
		infoParts = append(infoParts, s.Artist)
	}
	if s.Album != "" {
		infoParts = append(infoParts, s.Album)
	}
	info := strings.Join(infoParts, " · ")

	timeStr := fmt.Sprintf("%s / %s", formatDuration(s.Position), formatDuration(s.Duration))
	modes := renderModes(s)

	separator := "   "
	sepWidth := lipgloss.Width(separator)
	timeWidth := lipgloss.Width(timeStr)
	statusWidth := lipgloss.Width(status + "  ")
	modesWidth := lipgloss.Width(modes)
	titleWidth := lipgloss.Width(title)
	infoWidth := lipgloss.Width(info)

	minBarWidth := 10
	availableForContent := innerWidth - statusWidth - timeWidth - modesWidth - sepWidth*3 - minBarWidth

	var styledTitle, styledInfo string
	var usedContentWidth int

	switch {
	case titleWidth+sepWidth+infoWidth <= availableForContent:
		styledTitle = titleStyle().Render(title)
		styledInfo = artistStyle().Render(info)
		usedContentWidth = titleWidth + sepWidth + infoWidth
	case titleWidth+sepWidth <= availableForContent && info != "":
		maxInfo := availableForContent - titleWidth - sepWidth
		styledTitle = titleStyle().Render(title)
		styledInfo = artistStyle().Render(render.TruncateEllipsis(info, maxInfo))
		usedContentWidth = titleWidth + sepWidth + maxInfo
	default:
		maxTitle := max(availableForContent, 10)
		styledTitle = titleStyle().Render(render.TruncateEllipsis(title, maxTitle))
		usedContentWidth = min(titleWidth, maxTitle)
	}

	barWidth := max(innerWidth-usedContentWidth-statusWidth-timeWidth-modesWidth-sepWidth*3, 5)

	var content strings.Builder
	content.WriteString(styledTitle)
	if styledInfo != "" {
		content.WriteString(separator)
		content.WriteString(styledInfo)
	}
	content.WriteString(separator)
	content.WriteString(status)
	content.WriteString("  ")
	content.WriteString(renderProgress(s.Position, s.Duration, barWidth))
	content.WriteString(separator)
	content.WriteString(progressTimeStyle().Render(timeStr))
	content.WriteString(separator)
	content.WriteString(modes)

	return barStyle().Padding(0, 2).Width(width - 2).Render(content.String())
}

func renderProgress(position, duration time.Duration, width int) string {
	var ratio float64
	if duration > 0 {
		ratio = float64(position) / float64(duration)
	}
	filled := min(max(int(float64(width)*ratio), 0), width)
	return styles.Gradient(strings.Repeat("━", filled), styles.T().Primary, styles.T().Secondary) +
		progressBarEmpty().Render(strings.Repeat("─", width-filled))
}

// renderModes renders the shuffle/repeat/video indicators and the volume.
func renderModes(s State) string {
	var parts []string
	switch {
	case s.Failed:
		parts = append(parts, warningStyle().Render("player unavailable"))
	case s.Loading:
		parts = append(parts, metaStyle().Render("loading player"))
	case s.NoVideo:
		parts = append(parts, warningStyle().Render("no video"))
	case s.VideoVisible:
		parts = append(parts, activeModeStyle().Render(icons.Video()))
	}
	if s.Shuffle {
		parts = append(parts, activeModeStyle().Render(icons.Shuffle()))
	}
	if r := icons.Repeat(s.Repeat); r != "" {
		parts = append(parts, activeModeStyle().Render(r))
	}
	parts = append(parts, metaStyle().Render(fmt.Sprintf("vol %3d%%", s.Volume)))
	return strings.Join(parts, " ")
}

func formatDuration(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
