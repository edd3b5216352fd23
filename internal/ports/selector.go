package ports

import (
	"context"

	"workflows/internal/config"
)

// SelectorOptions configures one fuzzy-finder run
type SelectorOptions struct {
	Border      config.Border
	BorderLabel string
	Layout      config.Layout
	Prompt      string
}

// Selector starts an interactive fuzzy finder
type Selector interface {
	Start(ctx context.Context, opts SelectorOptions) (SelectorSession, error)
}

// SelectorSession is a running fuzzy finder fed through its input stream
type SelectorSession interface {
	// Send appends candidate names to the finder's list
	Send(names []string) error
	// Wait closes the input, waits for the user's choice and returns it.
	// An aborted selection returns "" without error.
	Wait() (string, error)
	// Abort terminates the finder without a selection
	Abort() error
}
