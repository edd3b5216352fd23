package services

import (
	"context"
	"fmt"

	"workflows/internal/domain"
	"workflows/internal/logging"
)

// RunParams contains parameters for a single launcher run
type RunParams struct {
	DeleteMode bool
}

// LauncherService runs the pick, then open or delete, flow
type LauncherService struct {
	cloner   *CloneService
	deleter  *DeleteService
	picker   *PickerService
	sessions *SessionService
}

// NewLauncherService creates a new LauncherService
func NewLauncherService(
	picker *PickerService,
	cloner *CloneService,
	sessions *SessionService,
	deleter *DeleteService,
) *LauncherService {
	return &LauncherService{
		cloner:   cloner,
		deleter:  deleter,
		picker:   picker,
		sessions: sessions,
	}
}

// Run lets the user pick a project and opens or deletes it.
// An empty selection or a declined confirmation ends the run without error.
func (s *LauncherService) Run(ctx context.Context, params RunParams) error {
	selected, repos, err := s.picker.Pick(ctx, PickParams{DeleteMode: params.DeleteMode})
	if err != nil {
		return err
	}
	if selected == "" {
		logging.Logger.Info("No project selected")
		return nil
	}

	repo, ok := repos.Find(selected)
	if !ok {
		logging.Logger.Warn("Selected project not in candidate list", "selected", selected)
		return nil
	}

	if params.DeleteMode {
		if !repo.Local {
			return fmt.Errorf("%w: %s", domain.ErrNotLocal, repo.FullName())
		}
		_, err := s.deleter.Delete(ctx, repo)
		return err
	}

	ok, err = s.cloner.EnsureLocal(ctx, repo)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	return s.sessions.Open(ctx, repo)
}
