package services

import (
	"context"
	"fmt"

	"workflows/internal/config"
	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/paths"
	"workflows/internal/ports"
)

// CloneService makes remote-only projects available locally
type CloneService struct {
	cloner      ports.RepoCloner
	github      config.GithubConfig
	projectsDir string
	prompter    ports.Prompter
}

// NewCloneService creates a new CloneService
func NewCloneService(cloner ports.RepoCloner, prompter ports.Prompter, projectsDir string, github config.GithubConfig) *CloneService {
	return &CloneService{
		cloner:      cloner,
		github:      github,
		projectsDir: projectsDir,
		prompter:    prompter,
	}
}

// EnsureLocal clones repo into the projects directory if it is remote-only.
// Returns false when the user declined cloning; nothing was changed in that case.
func (s *CloneService) EnsureLocal(ctx context.Context, repo domain.Repo) (bool, error) {
	if repo.Local {
		return true, nil
	}

	if s.github.ResolvedConfirmCloning() {
		question := fmt.Sprintf("Project is not local, clone it to %s/?", paths.DisplayPath(s.projectsDir))
		ok, err := s.prompter.Confirm(question, true)
		if err != nil {
			return false, err
		}
		if !ok {
			logging.Logger.Info("User declined cloning", "repo", repo.FullName())
			return false, nil
		}
	}

	if err := s.cloner.Clone(ctx, repo, repo.ProjectRoot(s.projectsDir)); err != nil {
		return false, err
	}
	return true, nil
}
