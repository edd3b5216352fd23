package fzf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"workflows/internal/config"
	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/ports"
)

// fzf exit codes that mean "nothing selected" rather than failure
const (
	exitNoMatch     = 1
	exitInterrupted = 130
)

// Selector implements ports.Selector by spawning the fzf binary
type Selector struct {
	binary string
	stderr io.Writer
}

// Verify interface compliance at compile time
var _ ports.Selector = (*Selector)(nil)

// NewSelector creates a Selector running the fzf found in PATH
func NewSelector() *Selector {
	return &Selector{
		binary: "fzf",
		stderr: os.Stderr,
	}
}

// Start implements Selector.Start
func (s *Selector) Start(ctx context.Context, opts ports.SelectorOptions) (ports.SelectorSession, error) {
	path, err := exec.LookPath(s.binary)
	if err != nil {
		logging.Logger.Error("fzf not found", "binary", s.binary, "error", err)
		return nil, fmt.Errorf("%w: %s", domain.ErrToolNotFound, s.binary)
	}

	args := BuildArgs(opts)
	logging.Logger.Debug("Starting fzf", "path", path, "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	// fzf renders its interface on /dev/tty, stderr is only used for errors
	cmd.Stderr = s.stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to open fzf stdin: %w", err)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Start(); err != nil {
		logging.Logger.Error("Failed to start fzf", "error", err)
		return nil, fmt.Errorf("failed to start fzf: %w", err)
	}

	return &session{
		cmd:    cmd,
		stdin:  stdin,
		stdout: &stdout,
	}, nil
}

// BuildArgs translates selector options into fzf command-line flags
func BuildArgs(opts ports.SelectorOptions) []string {
	layout := opts.Layout
	if layout == "" {
		layout = config.LayoutDefault
	}
	args := []string{"--layout=" + string(layout)}

	if opts.Border != "" && opts.Border != config.BorderNone {
		args = append(args, "--border="+string(opts.Border))
	}
	if opts.BorderLabel != "" {
		args = append(args, "--border-label="+opts.BorderLabel)
	}
	if opts.Prompt != "" {
		args = append(args, "--prompt="+opts.Prompt)
	}

	return args
}

// session is one running fzf process
type session struct {
	cmd    *exec.Cmd
	closed bool
	stdin  io.WriteCloser
	stdout *bytes.Buffer
}

// Send implements SelectorSession.Send
func (s *session) Send(names []string) error {
	if s.closed {
		return fmt.Errorf("fzf input already closed")
	}
	if len(names) == 0 {
		return nil
	}

	var buf strings.Builder
	for _, name := range names {
		buf.WriteString(name)
		buf.WriteByte('\n')
	}

	if _, err := io.WriteString(s.stdin, buf.String()); err != nil {
		// The user may pick an entry and quit before everything was written
		if errors.Is(err, os.ErrClosed) || errors.Is(err, syscall.EPIPE) {
			logging.Logger.Debug("fzf exited before input was fully written", "error", err)
			return nil
		}
		return fmt.Errorf("failed to write to fzf: %w", err)
	}

	logging.Logger.Debug("Sent entries to fzf", "count", len(names))
	return nil
}

// Wait implements SelectorSession.Wait
func (s *session) Wait() (string, error) {
	s.closeInput()

	if err := s.cmd.Wait(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			switch exitErr.ExitCode() {
			case exitNoMatch, exitInterrupted:
				logging.Logger.Info("fzf exited without a selection", "exit_code", exitErr.ExitCode())
				return "", nil
			}
		}
		logging.Logger.Error("fzf failed", "error", err)
		return "", fmt.Errorf("fzf failed: %w", err)
	}

	selected := strings.TrimSpace(s.stdout.String())
	logging.Logger.Debug("fzf selection", "selected", selected)
	return selected, nil
}

// Abort implements SelectorSession.Abort
func (s *session) Abort() error {
	s.closeInput()
	if s.cmd.Process == nil {
		return nil
	}
	if err := s.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to stop fzf: %w", err)
	}
	// Reap the process, its exit status is irrelevant after a kill
	_ = s.cmd.Wait()
	return nil
}

func (s *session) closeInput() {
	if s.closed {
		return
	}
	s.closed = true
	if err := s.stdin.Close(); err != nil {
		logging.Logger.Debug("Failed to close fzf stdin", "error", err)
	}
}
