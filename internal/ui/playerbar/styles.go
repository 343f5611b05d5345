package playerbar

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/lyrifi/internal/ui/styles"
)

func barStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border)
}

func titleStyle() lipgloss.Style {
	return styles.T().S().Title
}

func artistStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func metaStyle() lipgloss.Style {
	return styles.T().S().Subtle
}

func progressTimeStyle() lipgloss.Style {
	return styles.T().S().Muted
}

func progressBarEmpty() lipgloss.Style {
	return styles.T().S().Subtle
}

func activeModeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(styles.T().Secondary)
}

func warningStyle() lipgloss.Style {
	return styles.T().S().Warning
}
