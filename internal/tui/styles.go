package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by all RxDesk views.
var (
	ColorHeader   = lipgloss.Color("81")
	ColorLabel    = lipgloss.Color("245")
	ColorValue    = lipgloss.Color("252")
	ColorMuted    = lipgloss.Color("240")
	ColorCritical = lipgloss.Color("196")
	ColorBorder   = lipgloss.Color("238")
	ColorSpinner  = lipgloss.Color("205")
	ColorAccent   = lipgloss.Color("114")
)

// Common styles.
var (
	HeaderStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle  = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	SubtleStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	InfoStyle   = lipgloss.NewStyle().Foreground(ColorValue).Italic(true)

	CriticalStyle = lipgloss.NewStyle().Foreground(ColorCritical).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorCritical).
			Padding(0, 1)
)

// Card styles for the tablet grid.
var (
	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorAccent).
				Padding(0, 1)

	CardNameStyle  = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	CardPriceStyle = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	CardDescStyle  = lipgloss.NewStyle().Foreground(ColorValue)
	CardIDStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
)
