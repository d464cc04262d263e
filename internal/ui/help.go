package ui

import (
	"hexgrid/internal/editor"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

const helpTitle = "hexgrid keys"

var helpStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7D56F4")).
	Padding(1, 3).
	Bold(false)

var helpTitleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4")).
	Bold(true).
	MarginBottom(1)

// RenderHelp returns the help overlay listing every binding in keys. Any key
// closes it.
func RenderHelp(keys editor.KeyMap, width, height int) string {
	h := help.New()
	h.ShowAll = true
	h.FullSeparator = "    "
	body := lipgloss.JoinVertical(lipgloss.Left,
		helpTitleStyle.Render(helpTitle),
		h.View(keys),
		"",
		h.Styles.FullDesc.Render("press any key to close"),
	)
	box := helpStyle.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
