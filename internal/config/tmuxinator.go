package config

const (
	DefaultFreshConfig = false
	DefaultOnOpen      = "nvim ."
	DefaultWindowName  = "editor"
)

// TmuxinatorConfig holds the [tmuxinator] section
type TmuxinatorConfig struct {
	FreshConfig *bool   `toml:"fresh_config,omitempty"`
	OnOpen      *string `toml:"on_open,omitempty"`
	WindowName  *string `toml:"window_name,omitempty"`
}

// ResolvedWindowName is the name of the single window created. Default: editor
func (t TmuxinatorConfig) ResolvedWindowName() string {
	return stringOr(t.WindowName, DefaultWindowName)
}

// ResolvedOnOpen is the command run in that window. Default: "nvim ."
func (t TmuxinatorConfig) ResolvedOnOpen() string {
	return stringOr(t.OnOpen, DefaultOnOpen)
}

// ResolvedFreshConfig forces config regeneration on every open. Default: false
func (t TmuxinatorConfig) ResolvedFreshConfig() bool {
	if t.FreshConfig == nil {
		return DefaultFreshConfig
	}
	return *t.FreshConfig
}
