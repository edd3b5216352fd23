package config

import "strings"

// DefaultMainBranch is the branch checked before deleting a project
const DefaultMainBranch = "main"

// GitConfig holds the [git] section
type GitConfig struct {
	MainBranch *string `toml:"main_branch,omitempty"`
}

// ResolvedMainBranch returns the branch the push check compares to its upstream
func (g GitConfig) ResolvedMainBranch() string {
	if g.MainBranch == nil || strings.TrimSpace(*g.MainBranch) == "" {
		return DefaultMainBranch
	}
	return strings.TrimSpace(*g.MainBranch)
}
