package domain

import (
	"path/filepath"
)

// RemoteInfo holds the hosting service metadata of a repository
type RemoteInfo struct {
	Description string
	Owner       string
	Private     bool
	URL         string
}

// Repo represents a single selectable project.
// Local repos live under the projects directory; remote repos were
// discovered through the hosting service and always carry Remote.
type Repo struct {
	Local  bool
	Name   string
	Remote *RemoteInfo
}

// NewLocalRepo creates a Repo for a directory found under the projects directory
func NewLocalRepo(name string) Repo {
	return Repo{
		Local: true,
		Name:  name,
	}
}

// NewRemoteRepo creates a Repo discovered through the hosting service
func NewRemoteRepo(name string, remote RemoteInfo) Repo {
	return Repo{
		Local:  false,
		Name:   name,
		Remote: &remote,
	}
}

// ProjectRoot returns the directory the project lives (or will live) in
func (r Repo) ProjectRoot(projectsDir string) string {
	return filepath.Join(projectsDir, r.Name)
}

// FullName returns owner/name for remote repos and the bare name otherwise
func (r Repo) FullName() string {
	if r.Remote != nil && r.Remote.Owner != "" {
		return r.Remote.Owner + "/" + r.Name
	}
	return r.Name
}

// Repos is an ordered list of repos, local entries first
type Repos []Repo

// Names returns the display names in list order
func (rs Repos) Names() []string {
	names := make([]string, len(rs))
	for i, r := range rs {
		names[i] = r.Name
	}
	return names
}

// Find returns the first repo with the given name
func (rs Repos) Find(name string) (Repo, bool) {
	for _, r := range rs {
		if r.Name == name {
			return r, true
		}
	}
	return Repo{}, false
}

// Contains reports whether a repo with the given name is in the list
func (rs Repos) Contains(name string) bool {
	_, ok := rs.Find(name)
	return ok
}
