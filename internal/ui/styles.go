package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1).
			Bold(true)

	taskStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EE6FF8")).
			PaddingLeft(0)

	completedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			Strikethrough(true)

	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#89B4FA"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")).
			PaddingLeft(2).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))
)
