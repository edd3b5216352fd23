package github

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"

	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/ports"
)

// CLI implements ports.HostingService using the gh command
type CLI struct {
	binary string
}

// Verify interface compliance at compile time
var _ ports.HostingService = (*CLI)(nil)

// NewCLI creates a new CLI using the gh found in PATH
func NewCLI() *CLI {
	return &CLI{binary: "gh"}
}

// ghRepo represents one entry of `gh repo list --json`
type ghRepo struct {
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
	Name        string `json:"name"`
	Owner       struct {
		Login string `json:"login"`
	} `json:"owner"`
	URL string `json:"url"`
}

const repoListFields = "name,owner,url,description,isPrivate"

// ListRepositories implements RepoLister.ListRepositories
func (c *CLI) ListRepositories(ctx context.Context, limit int) (domain.Repos, error) {
	path, err := c.lookPath()
	if err != nil {
		return nil, err
	}

	args := []string{"repo", "list", "--limit", strconv.Itoa(limit), "--json", repoListFields}
	logging.Logger.Debug("Listing repositories", "args", args)

	cmd := exec.CommandContext(ctx, path, args...)
	output, err := cmd.Output()
	if err != nil {
		logging.Logger.Error("gh repo list failed", "error", err, "stderr", stderrOf(err))
		return nil, fmt.Errorf("gh repo list failed: %w%s", err, stderrSuffix(err))
	}

	repos, err := parseRepoList(output)
	if err != nil {
		logging.Logger.Debug("Failed to parse gh repo list output", "error", err, "output", string(output))
		return nil, err
	}

	logging.Logger.Info("Listed repositories", "count", len(repos))
	return repos, nil
}

// Clone implements RepoCloner.Clone
func (c *CLI) Clone(ctx context.Context, repo domain.Repo, dest string) error {
	path, err := c.lookPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		logging.Logger.Error("Failed to create parent directory", "error", err, "path", dest)
		return fmt.Errorf("failed to create parent directory: %w", err)
	}

	logging.Logger.Info("Cloning repository", "repo", repo.FullName(), "target", dest)

	cmd := exec.CommandContext(ctx, path, "repo", "clone", repo.FullName(), dest)
	// Let gh report clone progress directly
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		logging.Logger.Error("gh repo clone failed", "error", err, "repo", repo.FullName())
		return fmt.Errorf("failed to clone %s: %w", repo.FullName(), err)
	}

	logging.Logger.Info("Repository cloned successfully", "path", dest)
	return nil
}

func (c *CLI) lookPath() (string, error) {
	path, err := exec.LookPath(c.binary)
	if err != nil {
		logging.Logger.Error("gh CLI not found", "binary", c.binary)
		return "", fmt.Errorf("%w: %s", domain.ErrToolNotFound, c.binary)
	}
	return path, nil
}

// parseRepoList converts gh JSON output into remote repos
func parseRepoList(output []byte) (domain.Repos, error) {
	var entries []ghRepo
	if err := json.Unmarshal(output, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse gh response: %w", err)
	}

	repos := make(domain.Repos, 0, len(entries))
	for _, e := range entries {
		if e.Name == "" {
			continue
		}
		repos = append(repos, domain.NewRemoteRepo(e.Name, domain.RemoteInfo{
			Description: e.Description,
			Owner:       e.Owner.Login,
			Private:     e.IsPrivate,
			URL:         e.URL,
		}))
	}
	return repos, nil
}

func stderrOf(err error) string {
	if exitErr, ok := err.(*exec.ExitError); ok {
		return string(exitErr.Stderr)
	}
	return ""
}

func stderrSuffix(err error) string {
	if s := stderrOf(err); s != "" {
		return "\nOutput: " + s
	}
	return ""
}
