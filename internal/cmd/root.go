package cmd

import (
	"context"

	"github.com/alecthomas/kong"

	"workflows/internal/config"
	"workflows/internal/logging"
	"workflows/internal/paths"
	"workflows/internal/services"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Config      string           `help:"Path to the TOML config file" type:"path" env:"WORKFLOWS_CONFIG"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Run RunCmd `cmd:"" help:"Pick a project and open it in a tmuxinator session (default)" default:"withargs"`

	// Internal fields (not flags)
	Container *Container `kong:"-"`
}

// AfterApply initializes logging and configuration after CLI parsing
func (c *CLI) AfterApply() error {
	if _, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	configPath := c.Config
	if configPath == "" {
		configPath = paths.GetConfigPath()
	}

	// A broken config file should not keep projects from opening
	cfg, err := config.Load(configPath)
	if err != nil {
		logging.Logger.Warn("Failed to load config, using defaults", "error", err, "path", configPath)
		cfg = config.Default()
	}

	// Create container AFTER logging is initialized
	c.Container = NewContainer(cfg, paths.GetProjectsDir(), paths.GetTmuxinatorConfigDir())
	return nil
}

// RunCmd picks a project and opens or deletes it
type RunCmd struct {
	Delete bool `help:"Delete the selected local project instead of opening it"`
}

// Run executes the pick and open (or delete) flow
func (r *RunCmd) Run(cli *CLI) error {
	logging.Logger.Info("Starting workflows", "delete_mode", r.Delete)

	if err := cli.Container.LauncherService.Run(context.Background(), services.RunParams{
		DeleteMode: r.Delete,
	}); err != nil {
		logging.Logger.Error("Run failed", "error", err)
		return err
	}

	logging.Logger.Info("Workflows finished")
	return nil
}
