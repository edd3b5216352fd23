package tmuxinator

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"

	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/ports"
)

// Client implements ports.SessionManager on top of the tmuxinator CLI
type Client struct {
	*ConfigStore

	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Verify interface compliance at compile time
var _ ports.SessionManager = (*Client)(nil)

// NewClient creates a Client storing project files in configDir
func NewClient(configDir string) *Client {
	return &Client{
		ConfigStore: NewConfigStore(configDir),
		shell:       "sh",
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
}

// StartCommand returns the shell command line that starts the named project
func StartCommand(name string) string {
	return shellquote.Join("tmuxinator", "start", name)
}

// Start implements SessionLauncher.Start.
// tmuxinator attaches to the session and owns the terminal until it returns;
// its exit status belongs to the user's session, not to this run.
func (c *Client) Start(ctx context.Context, name string) error {
	if _, err := exec.LookPath(c.shell); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrToolNotFound, c.shell)
	}

	command := StartCommand(name)
	logging.Logger.Info("Starting tmuxinator session", "name", name, "command", command)

	cmd := exec.CommandContext(ctx, c.shell, "-c", command)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	if err := cmd.Start(); err != nil {
		logging.Logger.Error("Failed to start tmuxinator", "error", err)
		return fmt.Errorf("failed to start tmuxinator: %w", err)
	}

	if err := cmd.Wait(); err != nil {
		logging.Logger.Warn("tmuxinator exited with error", "name", name, "error", err)
		return nil
	}

	logging.Logger.Info("tmuxinator session handed back", "name", name)
	return nil
}
