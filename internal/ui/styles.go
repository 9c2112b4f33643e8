package ui

import "github.com/charmbracelet/lipgloss"

// Soft palette shared by every screen.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			Bold(true)

	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a")).
			Bold(true)

	favoriteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5")).
			Bold(true)

	okStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	dropdownStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd")).
			PaddingLeft(4)

	dropdownPickStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0c4a6e")).
				Background(lipgloss.Color("#bae6fd")).
				PaddingLeft(4)

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#52525b"))

	checkedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ade80"))
)
