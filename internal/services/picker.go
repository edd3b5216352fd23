package services

import (
	"context"

	"workflows/internal/config"
	"workflows/internal/domain"
	"workflows/internal/logging"
	"workflows/internal/ports"
)

// PickParams contains parameters for a project selection
type PickParams struct {
	DeleteMode bool
}

// PickerService drives the fuzzy finder over local and remote projects
type PickerService struct {
	fzf      config.FzfConfig
	projects *ProjectService
	selector ports.Selector
}

// NewPickerService creates a new PickerService
func NewPickerService(projects *ProjectService, selector ports.Selector, fzf config.FzfConfig) *PickerService {
	return &PickerService{
		fzf:      fzf,
		projects: projects,
		selector: selector,
	}
}

// Options returns the finder options for the given mode
func (s *PickerService) Options(deleteMode bool) ports.SelectorOptions {
	prompt := s.fzf.ResolvedOpenPrompt()
	if deleteMode {
		prompt = s.fzf.ResolvedDeletePrompt()
	}
	return ports.SelectorOptions{
		Border:      s.fzf.ResolvedBorder(),
		BorderLabel: s.fzf.ResolvedBorderLabel(),
		Layout:      s.fzf.ResolvedLayout(),
		Prompt:      prompt,
	}
}

// Pick lets the user choose a project.
// Local names are shown immediately; remote names are streamed in once listed,
// except in delete mode where only local projects are eligible.
// Returns the selected name ("" when aborted) and the merged list, local first.
func (s *PickerService) Pick(ctx context.Context, params PickParams) (string, domain.Repos, error) {
	local, err := s.projects.ListLocal()
	if err != nil {
		return "", nil, err
	}

	session, err := s.selector.Start(ctx, s.Options(params.DeleteMode))
	if err != nil {
		return "", nil, err
	}

	if err := session.Send(local.Names()); err != nil {
		s.abort(session)
		return "", nil, err
	}

	var remote domain.Repos
	if !params.DeleteMode {
		remote, err = s.projects.ListRemote(ctx, local)
		if err != nil {
			s.abort(session)
			return "", nil, err
		}
		if err := session.Send(remote.Names()); err != nil {
			s.abort(session)
			return "", nil, err
		}
	}

	selected, err := session.Wait()
	if err != nil {
		return "", nil, err
	}

	merged := make(domain.Repos, 0, len(local)+len(remote))
	merged = append(merged, local...)
	merged = append(merged, remote...)

	logging.Logger.Info("Project selected", "selected", selected, "candidates", len(merged), "delete_mode", params.DeleteMode)
	return selected, merged, nil
}

func (s *PickerService) abort(session ports.SelectorSession) {
	if err := session.Abort(); err != nil {
		logging.Logger.Warn("Failed to stop selector", "error", err)
	}
}
