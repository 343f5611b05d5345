// Package styles holds the lyrifi color palette and the styles built on it.
package styles

import (
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a color palette plus the styles derived from it.
type Theme struct {
	Primary   lipgloss.Color // focus, the playing track, progress start
	Secondary lipgloss.Color // active modes, progress end

	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color
	BgCursor lipgloss.Color

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Warning lipgloss.Color

	once   sync.Once
	styles *Styles
}

// Styles are the text styles the panels share.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Playing lipgloss.Style
	Cursor  lipgloss.Style
	Warning lipgloss.Style
}

var lyrifiTheme = Theme{
	Primary:   lipgloss.Color("#ff4e6a"),
	Secondary: lipgloss.Color("#ffb347"),

	FgBase:   lipgloss.Color("#d0d0d0"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#5c5c5c"),
	BgCursor: lipgloss.Color("#2e2e2e"),

	Border:      lipgloss.Color("#4e4e4e"),
	BorderFocus: lipgloss.Color("#ff4e6a"),

	Warning: lipgloss.Color("#ffb347"),
}

// T returns the active theme.
func T() *Theme {
	return &lyrifiTheme
}

// S returns the styles of t, building them on first use.
func (t *Theme) S() *Styles {
	t.once.Do(func() {
		base := lipgloss.NewStyle().Foreground(t.FgBase)
		t.styles = &Styles{
			Base:    base,
			Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
			Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
			Title:   base.Bold(true),
			Playing: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
			Cursor:  lipgloss.NewStyle().Background(t.BgCursor).Foreground(t.FgBase),
			Warning: lipgloss.NewStyle().Foreground(t.Warning),
		}
	})
	return t.styles
}
