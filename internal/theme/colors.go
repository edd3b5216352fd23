package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Check status colors
const (
	ColorFailed  Color = "9"  // Bright red
	ColorPassed  Color = "10" // Bright green
	ColorPending Color = "11" // Bright yellow
)

// ColorNote is used for the NOTE label
const ColorNote Color = "9" // Bright red
