package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	statusStyle = lipgloss.NewStyle().MarginTop(1)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)
