package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"workflows/internal/logging"
	"workflows/internal/ports"
)

// HuhPrompter implements ports.Prompter with huh confirm fields
type HuhPrompter struct {
	accessible bool
	in         io.Reader
	out        io.Writer
}

// Verify interface compliance at compile time
var _ ports.Prompter = (*HuhPrompter)(nil)

// NewHuhPrompter creates a prompter on stdin/stdout.
// Without a terminal on stdin huh falls back to plain line-based prompts.
func NewHuhPrompter() *HuhPrompter {
	fd := os.Stdin.Fd()
	return &HuhPrompter{
		accessible: !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd),
		in:         os.Stdin,
		out:        os.Stdout,
	}
}

// Confirm implements Prompter.Confirm. Aborting the prompt counts as "no".
func (p *HuhPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	answer := defaultYes

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(question).
				Affirmative("Yes").
				Negative("No").
				Value(&answer),
		),
	).
		WithAccessible(p.accessible).
		WithInput(p.in).
		WithOutput(p.out).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			logging.Logger.Info("User aborted prompt", "question", question)
			return false, nil
		}
		return false, fmt.Errorf("confirmation prompt failed: %w", err)
	}

	logging.Logger.Debug("Prompt answered", "question", question, "answer", answer)
	return answer, nil
}
