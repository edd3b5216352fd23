package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/ports"
)

// ProjectService lists local and remote projects
type ProjectService struct {
	projectsDir string
	repoLimit   int
	repoLister  ports.RepoLister
}

// NewProjectService creates a new ProjectService
func NewProjectService(projectsDir string, repoLister ports.RepoLister, repoLimit int) *ProjectService {
	return &ProjectService{
		projectsDir: projectsDir,
		repoLimit:   repoLimit,
		repoLister:  repoLister,
	}
}

// ProjectsDir returns the directory holding local projects
func (s *ProjectService) ProjectsDir() string {
	return s.projectsDir
}

// ListLocal returns every directory directly under the projects directory
func (s *ProjectService) ListLocal() (domain.Repos, error) {
	entries, err := os.ReadDir(s.projectsDir)
	if err != nil {
		logging.Logger.Error("Failed to read projects directory", "error", err, "dir", s.projectsDir)
		return nil, fmt.Errorf("failed to read projects directory: %w", err)
	}

	repos := make(domain.Repos, 0, len(entries))
	for _, entry := range entries {
		if !s.isDir(entry) {
			continue
		}
		repos = append(repos, domain.NewLocalRepo(entry.Name()))
	}

	logging.Logger.Debug("Listed local projects", "dir", s.projectsDir, "count", len(repos))
	return repos, nil
}

// isDir reports whether entry is a directory, following symlinks
func (s *ProjectService) isDir(entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(s.projectsDir, entry.Name()))
	return err == nil && info.IsDir()
}

// ListRemote returns the user's hosted repositories that are not already local
func (s *ProjectService) ListRemote(ctx context.Context, local domain.Repos) (domain.Repos, error) {
	remote, err := s.repoLister.ListRepositories(ctx, s.repoLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list remote repositories: %w", err)
	}

	seen := make(map[string]bool, len(local)+len(remote))
	for _, r := range local {
		seen[r.Name] = true
	}

	repos := make(domain.Repos, 0, len(remote))
	for _, r := range remote {
		if seen[r.Name] {
			continue
		}
		seen[r.Name] = true
		repos = append(repos, r)
	}

	logging.Logger.Debug("Listed remote projects", "total", len(remote), "not_local", len(repos))
	return repos, nil
}
