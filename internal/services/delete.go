package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"workflows/internal/config"
	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/paths"
	"workflows/internal/ports"
)

// DeleteService removes a local project and its session config
type DeleteService struct {
	configs     ports.SessionConfigStore
	git         config.GitConfig
	projectsDir string
	prompter    ports.Prompter
	reporter    ports.Reporter
	vcs         ports.VersionControl
}

// NewDeleteService creates a new DeleteService
func NewDeleteService(
	vcs ports.VersionControl,
	configs ports.SessionConfigStore,
	prompter ports.Prompter,
	reporter ports.Reporter,
	projectsDir string,
	git config.GitConfig,
) *DeleteService {
	return &DeleteService{
		configs:     configs,
		git:         git,
		projectsDir: projectsDir,
		prompter:    prompter,
		reporter:    reporter,
		vcs:         vcs,
	}
}

// Delete runs the safety checks, asks for confirmation and removes repo.
// Failed checks are advisory; only the user's answer decides.
// Returns false when the user declined; nothing was changed in that case.
func (s *DeleteService) Delete(ctx context.Context, repo domain.Repo) (bool, error) {
	if !repo.Local {
		return false, fmt.Errorf("%w: %s", domain.ErrNotLocal, repo.FullName())
	}

	root, err := s.projectRoot(repo)
	if err != nil {
		return false, err
	}

	mainBranch := s.git.ResolvedMainBranch()

	s.reporter.CheckStarted("clean working tree")
	clean, err := s.vcs.IsWorkingTreeClean(ctx, root)
	if err != nil {
		return false, err
	}
	s.reporter.CheckFinished("clean working tree", clean)

	pushedLabel := mainBranch + " pushed"
	s.reporter.CheckStarted(pushedLabel)
	pushed, err := s.vcs.IsBranchPushed(ctx, root, mainBranch)
	if err != nil {
		return false, err
	}
	s.reporter.CheckFinished(pushedLabel, pushed)

	s.reporter.Note(fmt.Sprintf("These checks are only for the %s branch of the repo", mainBranch))

	ok, err := s.prompter.Confirm(fmt.Sprintf("Delete %s?", repo.Name), false)
	if err != nil {
		return false, err
	}
	if !ok {
		logging.Logger.Info("User declined deletion", "repo", repo.Name)
		return false, nil
	}

	s.reporter.Info("Deleting tmuxinator config")
	if err := s.configs.Delete(repo.Name); err != nil {
		return false, err
	}

	s.reporter.Info(fmt.Sprintf("Deleting project from %s", paths.DisplayPath(s.projectsDir)))
	if err := os.RemoveAll(root); err != nil {
		logging.Logger.Error("Failed to remove project", "error", err, "path", root)
		return false, fmt.Errorf("failed to remove project %s: %w", root, err)
	}

	logging.Logger.Info("Project deleted", "repo", repo.Name, "path", root)
	s.reporter.Success(fmt.Sprintf("Deleted %s!", repo.Name))
	return true, nil
}

// projectRoot returns the root of repo, refusing anything not strictly inside the projects directory
func (s *DeleteService) projectRoot(repo domain.Repo) (string, error) {
	root := repo.ProjectRoot(s.projectsDir)
	rel, err := filepath.Rel(filepath.Clean(s.projectsDir), root)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(rel) {
		return "", fmt.Errorf("%w: %q", domain.ErrOutsideProjectsDir, repo.Name)
	}
	return root, nil
}
