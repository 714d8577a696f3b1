package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joshuapare/tomlkit/tomldoc"
)

var (
	// Color palette
	primaryColor   = lipgloss.Color("#7D56F4")
	secondaryColor = lipgloss.Color("#00D7FF")
	accentColor    = lipgloss.Color("#FF00FF")
	successColor   = lipgloss.Color("#04B575")
	warningColor   = lipgloss.Color("#FFA500")
	errorColor     = lipgloss.Color("#FF4B4B")
	mutedColor     = lipgloss.Color("#666666")
	borderColor    = lipgloss.Color("#383838")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	pathStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Italic(true)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1)

	rowStyle = lipgloss.NewStyle()

	selectedStyle = lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)

	keyNameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginTop(1)

	statusCountStyle = lipgloss.NewStyle().
				Foreground(primaryColor).
				Bold(true)

	statusMessageStyle = lipgloss.NewStyle().
				Foreground(successColor)

	hintStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Background(lipgloss.Color("#1A1A1A")).
			Padding(0, 1).
			MarginBottom(1)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Background(lipgloss.Color("#1A1A1A"))

	modalTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// kindStyle colors the kind column of a row.
func kindStyle(k tomldoc.Kind) lipgloss.Style {
	switch k {
	case tomldoc.KindTable, tomldoc.KindArray:
		return lipgloss.NewStyle().Foreground(primaryColor).Bold(true)
	case tomldoc.KindString:
		return lipgloss.NewStyle().Foreground(successColor)
	case tomldoc.KindInt, tomldoc.KindFloat:
		return lipgloss.NewStyle().Foreground(secondaryColor)
	case tomldoc.KindBool:
		return lipgloss.NewStyle().Foreground(warningColor)
	case tomldoc.KindTimestamp:
		return lipgloss.NewStyle().Foreground(accentColor)
	default:
		return lipgloss.NewStyle().Foreground(mutedColor)
	}
}
