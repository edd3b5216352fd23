package tmuxinator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"workflows/internal/domain"
	"workflows/internal/logging"
)

const configExt = ".yml"

// ConfigStore reads and writes tmuxinator project files in a single directory
type ConfigStore struct {
	dir string
}

// NewConfigStore creates a ConfigStore for the given tmuxinator config directory
func NewConfigStore(dir string) *ConfigStore {
	return &ConfigStore{dir: dir}
}

// Dir returns the directory holding the project files
func (s *ConfigStore) Dir() string {
	return s.dir
}

// Path returns <dir>/<name>.yml
func (s *ConfigStore) Path(name string) string {
	return filepath.Join(s.dir, name+configExt)
}

// Exists reports whether a project file for name is present
func (s *ConfigStore) Exists(name string) (bool, error) {
	info, err := os.Stat(s.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check tmuxinator config: %w", err)
	}
	return info.Mode().IsRegular(), nil
}

// Write renders cfg and writes it to its project file, replacing any existing one
func (s *ConfigStore) Write(cfg domain.SessionConfig) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		logging.Logger.Error("Failed to create tmuxinator config directory", "error", err, "dir", s.dir)
		return "", fmt.Errorf("failed to create tmuxinator config directory: %w", err)
	}

	path := s.Path(cfg.Name)
	contents, err := Render(path, cfg)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		logging.Logger.Error("Failed to write tmuxinator config", "error", err, "path", path)
		return "", fmt.Errorf("failed to write tmuxinator config: %w", err)
	}

	logging.Logger.Info("Wrote tmuxinator config", "path", path, "root", cfg.Root)
	return path, nil
}

// Delete removes the project file for name; a missing file is not an error
func (s *ConfigStore) Delete(name string) error {
	path := s.Path(name)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Logger.Debug("No tmuxinator config to delete", "path", path)
			return nil
		}
		logging.Logger.Error("Failed to delete tmuxinator config", "error", err, "path", path)
		return fmt.Errorf("failed to delete tmuxinator config: %w", err)
	}

	logging.Logger.Info("Deleted tmuxinator config", "path", path)
	return nil
}

// Project is the parsed form of a generated project file
type Project struct {
	Name    string              `yaml:"name"`
	Root    string              `yaml:"root"`
	Windows []map[string]string `yaml:"windows"`
}

// Load parses the project file for name
func (s *ConfigStore) Load(name string) (*Project, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to read tmuxinator config: %w", err)
	}

	var p Project
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid tmuxinator config %s: %w", s.Path(name), err)
	}
	return &p, nil
}

// Render produces the project file body:
//
//	# <path>
//
//	name: <name>
//	root: <root>
//
//	windows:
//	  - <window>: <command>
func Render(path string, cfg domain.SessionConfig) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", path)

	fields := []struct {
		prefix string
		value  string
	}{
		{"name: ", cfg.Name},
		{"root: ", cfg.Root},
	}
	for _, f := range fields {
		v, err := scalar(f.value)
		if err != nil {
			return "", err
		}
		b.WriteString(f.prefix + v + "\n")
	}

	window, err := scalar(cfg.WindowName)
	if err != nil {
		return "", err
	}
	command, err := scalar(cfg.OnOpen)
	if err != nil {
		return "", err
	}
	fmt.Fprintf(&b, "\nwindows:\n  - %s: %s", window, command)

	return b.String(), nil
}

// scalar encodes s as a single-line YAML scalar, quoting only when needed
func scalar(s string) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to encode %q: %w", s, err)
	}
	v := strings.TrimSuffix(string(out), "\n")
	if strings.Contains(v, "\n") {
		// Block or folded style; a double-quoted scalar keeps it on one line
		return strconv.Quote(s), nil
	}
	return v, nil
}
