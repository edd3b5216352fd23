package domain

// SessionConfig describes the tmuxinator project generated for a repo:
// one session rooted at the project directory with a single window.
type SessionConfig struct {
	Name       string
	OnOpen     string
	Root       string
	WindowName string
}

