package theme

import "github.com/charmbracelet/lipgloss"

// Check mark styles
var (
	FailedMarkStyle = lipgloss.NewStyle().
			Foreground(ColorFailed).
			Bold(true)

	PassedMarkStyle = lipgloss.NewStyle().
			Foreground(ColorPassed).
			Bold(true)

	PendingMarkStyle = lipgloss.NewStyle().
				Foreground(ColorPending).
				Bold(true)
)

// NoteLabelStyle renders the NOTE label of advisory messages
var NoteLabelStyle = lipgloss.NewStyle().
	Foreground(ColorNote).
	Bold(true)

// Marks rendered inside the [ ] of a check line
const (
	MarkFailed  = "⨯"
	MarkPassed  = "✓"
	MarkPending = "~"
)
