package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	colorPrimary   = lipgloss.Color("#00BCD4") // Cyan
	colorSwell     = lipgloss.Color("#4CAF50") // Green for swell direction
	colorWind      = lipgloss.Color("#FF9800") // Orange for wind direction
	colorDanger    = lipgloss.Color("#FF6B6B") // Red for errors
	colorMuted     = lipgloss.Color("#6C757D") // Gray
	colorBorder    = lipgloss.Color("#00838F") // Darker cyan for borders
	colorHighlight = lipgloss.Color("#FFFFFF")

	// Title styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Content styles
	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	swellStyle = lipgloss.NewStyle().
			Foreground(colorSwell)

	windStyle = lipgloss.NewStyle().
			Foreground(colorWind)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorDanger).
			Bold(true)

	// Condition tiles on the current view
	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			Align(lipgloss.Center)

	// Per-day forecast rows
	dayRowStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1)

	dayDateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	// Help text style
	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(1, 0)

	// Utility styles
	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	searchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2).
			Width(64)

	sectionHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				MarginTop(1)
)
