package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// ProjectsDirName is the directory under $HOME holding local projects
const ProjectsDirName = "Projects"

// GetHome returns the user's home directory, or "." if it can't be resolved
func GetHome() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}

// GetProjectsDir returns WORKFLOWS_PROJECTS_DIR or ~/Projects default
func GetProjectsDir() string {
	if dir := os.Getenv("WORKFLOWS_PROJECTS_DIR"); dir != "" {
		return ExpandPath(dir)
	}
	return filepath.Join(GetHome(), ProjectsDirName)
}

// GetTmuxinatorConfigDir returns TMUXINATOR_CONFIG or ~/.config/tmuxinator default
func GetTmuxinatorConfigDir() string {
	if dir := os.Getenv("TMUXINATOR_CONFIG"); dir != "" {
		return ExpandPath(dir)
	}
	return filepath.Join(GetHome(), ".config", "tmuxinator")
}

// GetConfigPath returns the default config file, $XDG_CONFIG_HOME/workflows/config.toml.
// An explicit path comes from the --config flag or WORKFLOWS_CONFIG.
func GetConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(GetHome(), ".config")
	}
	return filepath.Join(configHome, "workflows", "config.toml")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// DisplayPath replaces the home directory prefix with ~ for user-facing messages
func DisplayPath(path string) string {
	homeDir, err := os.UserHomeDir()
	if err != nil || homeDir == "" {
		return path
	}
	rel, err := filepath.Rel(homeDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	if rel == "." {
		return "~"
	}
	return filepath.Join("~", rel)
}
