// Package style holds the colors and icons shared by log output and command tables.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Rust   = lipgloss.Color("#CE422B")
	Slate  = lipgloss.Color("#667085")
	Ink    = lipgloss.Color("#0B0F19")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
	Arrow   = "→"
)

// Text styles for tables and status output.
var (
	Header = lipgloss.NewStyle().Bold(true).Foreground(Rust)
	Muted  = lipgloss.NewStyle().Foreground(Slate)
	Ok     = lipgloss.NewStyle().Foreground(Green)
	Failed = lipgloss.NewStyle().Foreground(Red)
	Warn   = lipgloss.NewStyle().Foreground(Yellow)
)
