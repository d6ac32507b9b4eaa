package client

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	nameStyle   = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Faint(true)
	okStyle     = lipgloss.NewStyle().Bold(true)
	failStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	cellStyle   = lipgloss.NewStyle().PaddingRight(2)
)
