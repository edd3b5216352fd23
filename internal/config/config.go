package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the structure of the workflows config.toml.
// Every section and field is optional; section accessors resolve defaults.
type Config struct {
	Fzf        FzfConfig        `toml:"fzf"`
	Git        GitConfig        `toml:"git"`
	Github     GithubConfig     `toml:"github"`
	Tmuxinator TmuxinatorConfig `toml:"tmuxinator"`
}

// Default returns a Config with every field unset
func Default() *Config {
	return &Config{}
}

// Parse decodes a TOML document into a Config
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

// Load reads the config file at path.
// Returns the default config if the file doesn't exist (not an error).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
