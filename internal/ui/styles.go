package ui

import (
	"github.com/charmbracelet/lipgloss"

	"deckview/internal/markup"
)

var (
	plainStyle   = lipgloss.NewStyle()
	yellowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	greenStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	magentaStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))

	tocFocusBorderColor = lipgloss.Color("#7aa2f7")
	tocLineStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	tocSelectedStyle    = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#7aa2f7")).
				Bold(true)

	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
)

// spanStyle maps a markup color onto its lipgloss style.
func spanStyle(c markup.Color) lipgloss.Style {
	switch c {
	case markup.Yellow:
		return yellowStyle
	case markup.Green:
		return greenStyle
	case markup.Magenta:
		return magentaStyle
	default:
		return plainStyle
	}
}

func tocPanelStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(color)
}
