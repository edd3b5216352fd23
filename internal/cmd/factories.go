package cmd

import (
	adapterfzf "workflows/internal/adapters/fzf"
	adaptergit "workflows/internal/adapters/git"
	adaptergithub "workflows/internal/adapters/github"
	adapterprompt "workflows/internal/adapters/prompt"
	adapterterminal "workflows/internal/adapters/terminal"
	adaptertmuxinator "workflows/internal/adapters/tmuxinator"
	"workflows/internal/config"
	"workflows/internal/logging"
	"workflows/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	CloneService    *services.CloneService
	DeleteService   *services.DeleteService
	LauncherService *services.LauncherService
	PickerService   *services.PickerService
	ProjectService  *services.ProjectService
	SessionService  *services.SessionService
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(cfg *config.Config, projectsDir, tmuxinatorDir string) *Container {
	logging.Logger.Debug("Wiring container",
		"projects_dir", projectsDir,
		"tmuxinator_dir", tmuxinatorDir)

	// Create adapters
	gitRepo := adaptergit.NewCLIRepository()
	hosting := adaptergithub.NewCLI()
	prompter := adapterprompt.NewHuhPrompter()
	reporter := adapterterminal.NewReporter()
	selector := adapterfzf.NewSelector()
	sessionManager := adaptertmuxinator.NewClient(tmuxinatorDir)

	// Create services
	projectService := services.NewProjectService(projectsDir, hosting, cfg.Github.ResolvedRepoLimit())
	pickerService := services.NewPickerService(projectService, selector, cfg.Fzf)
	cloneService := services.NewCloneService(hosting, prompter, projectsDir, cfg.Github)
	sessionService := services.NewSessionService(sessionManager, projectsDir, cfg.Tmuxinator)
	deleteService := services.NewDeleteService(gitRepo, sessionManager, prompter, reporter, projectsDir, cfg.Git)
	launcherService := services.NewLauncherService(pickerService, cloneService, sessionService, deleteService)

	return &Container{
		CloneService:    cloneService,
		DeleteService:   deleteService,
		LauncherService: launcherService,
		PickerService:   pickerService,
		ProjectService:  projectService,
		SessionService:  sessionService,
	}
}
