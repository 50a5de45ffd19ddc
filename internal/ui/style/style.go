// Package style holds the colors and glyphs shared by log and report output.
package style

import "github.com/charmbracelet/lipgloss"

// Colors by meaning. Float is the CPM name for slack.
var (
	Accent   = lipgloss.Color("#2563EB")
	Muted    = lipgloss.Color("#6B7280")
	OnTrack  = lipgloss.Color("#16A34A")
	Critical = lipgloss.Color("#DC2626")
	Float    = lipgloss.Color("#D97706")
)

// Status icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Task markers.
const (
	CriticalTask = "●"
	FloatTask    = "○"
)

// Gantt cells.
const (
	BarCell   = "█"
	FloatCell = "░"
	IdleCell  = "·"
)
