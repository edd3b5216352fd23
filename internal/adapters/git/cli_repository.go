package git

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"workflows/internal/logging"
	"workflows/internal/ports"
)

// CLIRepository implements ports.VersionControl using local git commands
type CLIRepository struct {
	binary string
}

// Verify interface compliance at compile time
var _ ports.VersionControl = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{binary: "git"}
}

// IsWorkingTreeClean implements VersionControl.IsWorkingTreeClean
func (r *CLIRepository) IsWorkingTreeClean(ctx context.Context, repoPath string) (bool, error) {
	output, err := r.run(ctx, repoPath, "status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("failed to check working tree: %w", err)
	}

	clean := strings.TrimSpace(output) == ""
	logging.Logger.Debug("Checked working tree", "path", repoPath, "clean", clean)
	return clean, nil
}

// IsBranchPushed implements VersionControl.IsBranchPushed.
// A missing branch or a branch without upstream counts as not pushed.
func (r *CLIRepository) IsBranchPushed(ctx context.Context, repoPath, branch string) (bool, error) {
	exists, err := r.refExists(ctx, repoPath, "refs/heads/"+branch)
	if err != nil {
		return false, fmt.Errorf("failed to check branch %s: %w", branch, err)
	}
	if !exists {
		logging.Logger.Info("Branch not found", "path", repoPath, "branch", branch)
		return false, nil
	}

	upstream := branch + "@{upstream}"
	if _, err := r.run(ctx, repoPath, "rev-parse", "--abbrev-ref", "--symbolic-full-name", upstream); err != nil {
		if isExitError(err) {
			logging.Logger.Info("Branch has no upstream", "path", repoPath, "branch", branch)
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve upstream of %s: %w", branch, err)
	}

	output, err := r.run(ctx, repoPath, "rev-list", "--count", upstream+".."+branch)
	if err != nil {
		return false, fmt.Errorf("failed to compare %s with upstream: %w", branch, err)
	}

	ahead, err := strconv.Atoi(strings.TrimSpace(output))
	if err != nil {
		return false, fmt.Errorf("unexpected rev-list output %q: %w", output, err)
	}

	logging.Logger.Debug("Checked branch push state", "path", repoPath, "branch", branch, "ahead", ahead)
	return ahead == 0, nil
}

// refExists reports whether ref resolves in the repository
func (r *CLIRepository) refExists(ctx context.Context, repoPath, ref string) (bool, error) {
	_, err := r.run(ctx, repoPath, "rev-parse", "--verify", "--quiet", ref)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, nil
	}
	return false, err
}

// run executes git in repoPath and returns stdout
func (r *CLIRepository) run(ctx context.Context, repoPath string, args ...string) (string, error) {
	logging.Logger.Debug("Running git", "path", repoPath, "args", args)

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = repoPath
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			logging.Logger.Debug("git command failed", "args", args, "stderr", string(exitErr.Stderr))
			return "", fmt.Errorf("git %s: %w\nOutput: %s", args[0], err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s: %w", args[0], err)
	}
	return string(output), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
