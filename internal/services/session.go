package services

import (
	"context"

	"workflows/internal/config"
	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/ports"
)

// SessionService generates tmuxinator configs and starts sessions
type SessionService struct {
	projectsDir string
	sessions    ports.SessionManager
	tmuxinator  config.TmuxinatorConfig
}

// NewSessionService creates a new SessionService
func NewSessionService(sessions ports.SessionManager, projectsDir string, tmuxinator config.TmuxinatorConfig) *SessionService {
	return &SessionService{
		projectsDir: projectsDir,
		sessions:    sessions,
		tmuxinator:  tmuxinator,
	}
}

// BuildConfig describes the session generated for repo
func (s *SessionService) BuildConfig(repo domain.Repo) domain.SessionConfig {
	return domain.SessionConfig{
		Name:       repo.Name,
		OnOpen:     s.tmuxinator.ResolvedOnOpen(),
		Root:       repo.ProjectRoot(s.projectsDir),
		WindowName: s.tmuxinator.ResolvedWindowName(),
	}
}

// EnsureConfig writes the session config when fresh configs are forced or none exists yet.
// Returns true if a config was written.
func (s *SessionService) EnsureConfig(repo domain.Repo) (bool, error) {
	// fresh_config first: it avoids touching the filesystem
	if !s.tmuxinator.ResolvedFreshConfig() {
		exists, err := s.sessions.Exists(repo.Name)
		if err != nil {
			return false, err
		}
		if exists {
			logging.Logger.Debug("Reusing existing session config", "path", s.sessions.Path(repo.Name))
			return false, nil
		}
	}

	if _, err := s.sessions.Write(s.BuildConfig(repo)); err != nil {
		return false, err
	}
	return true, nil
}

// Open ensures the session config and starts the session for repo
func (s *SessionService) Open(ctx context.Context, repo domain.Repo) error {
	if _, err := s.EnsureConfig(repo); err != nil {
		return err
	}
	return s.sessions.Start(ctx, repo.Name)
}
