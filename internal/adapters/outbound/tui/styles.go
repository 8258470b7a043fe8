package tui

import "github.com/charmbracelet/lipgloss"

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	accentStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(dim)
	passStyle   = lipgloss.NewStyle().Foreground(success).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(danger).Bold(true)
)
