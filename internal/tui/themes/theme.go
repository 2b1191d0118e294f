// Package themes holds the color schemes for the terminal UI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Selected      lipgloss.Style
	TabActive     lipgloss.Style
	TabInactive   lipgloss.Style
	RoundedBox    lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusPending lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldFocused  lipgloss.Style
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	ProgressEmpty string
}

// Default is the default theme.
var Default = Theme{
	Primary: lipgloss.Color("#3b82f6"),
	Success: lipgloss.Color("#22c55e"),
	Error:   lipgloss.Color("#ef4444"),
	Border:  lipgloss.Color("#404040"),
	Muted:   lipgloss.Color("#737373"),

	ProgressEmpty: "#404040",

	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		MarginBottom(1),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#3b82f6")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),

	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#3b82f6")).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Padding(0, 2),

	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#404040")).
		Padding(0, 1),

	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#22c55e")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ef4444")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#737373")).
		Italic(true),

	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a3a3a3")).
		Width(13),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3b82f6")).
		Bold(true).
		Width(13),
}

// Monochrome relies on weight and reverse video only, for terminals where
// color is unavailable or unwanted.
var Monochrome = Theme{
	ProgressEmpty: "",

	Title:    lipgloss.NewStyle().Bold(true).MarginBottom(1),
	Subtitle: lipgloss.NewStyle().Faint(true),
	Normal:   lipgloss.NewStyle(),
	Bold:     lipgloss.NewStyle().Bold(true),
	Selected: lipgloss.NewStyle().Reverse(true).Bold(true),

	TabActive:   lipgloss.NewStyle().Reverse(true).Bold(true).Padding(0, 2),
	TabInactive: lipgloss.NewStyle().Padding(0, 2),

	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Padding(0, 1),

	StatusSuccess: lipgloss.NewStyle().Bold(true),
	StatusError:   lipgloss.NewStyle().Bold(true).Underline(true),
	StatusPending: lipgloss.NewStyle().Italic(true),

	FieldLabel:   lipgloss.NewStyle().Width(13),
	FieldFocused: lipgloss.NewStyle().Bold(true).Width(13),
}
