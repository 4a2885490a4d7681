// Package tui implements the live "today" view: the day schedule with
// the current block highlighted, refreshed on a timer, with imminent
// calendar anchors surfaced as an interrupt banner.
package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
	Success   lipgloss.Color
	Fixed     lipgloss.Color
	Active    lipgloss.Color
	Urgent    lipgloss.Color
	TitleText lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Muted:     lipgloss.Color("#636E72"), // Gray
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Success:   lipgloss.Color("#00B894"), // Green
	Fixed:     lipgloss.Color("#74B9FF"), // Light blue
	Active:    lipgloss.Color("#FFEAA7"), // Yellow highlight
	Urgent:    lipgloss.Color("#D63031"), // Red
	TitleText: lipgloss.Color("#DFE6E9"), // Light gray
}

// Styles contains the lipgloss styles for the today view.
type Styles struct {
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Fixed     lipgloss.Style
	Task      lipgloss.Style
	Active    lipgloss.Style
	Past      lipgloss.Style
	Interrupt lipgloss.Style
	Help      lipgloss.Style
}

// DefaultStyles returns the default style set.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(Colors.TitleText).
			Bold(true).
			Padding(0, 1),
		Clock: lipgloss.NewStyle().
			Foreground(Colors.Muted),
		Fixed: lipgloss.NewStyle().
			Foreground(Colors.Fixed),
		Task: lipgloss.NewStyle().
			Foreground(Colors.TitleText),
		Active: lipgloss.NewStyle().
			Foreground(Colors.Active).
			Bold(true),
		Past: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),
		Interrupt: lipgloss.NewStyle().
			Foreground(Colors.Urgent).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Warning).
			Padding(0, 1),
		Help: lipgloss.NewStyle().
			Foreground(Colors.Muted),
	}
}
