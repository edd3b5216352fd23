package config

const (
	DefaultConfirmCloning = true
	DefaultRepoLimit      = 1000
)

// GithubConfig holds the [github] section
type GithubConfig struct {
	ConfirmCloning *bool `toml:"confirm_cloning,omitempty"`
	RepoLimit      *int  `toml:"repo_limit,omitempty"`
}

// ResolvedConfirmCloning asks before cloning a remote-only project. Default: true
func (g GithubConfig) ResolvedConfirmCloning() bool {
	if g.ConfirmCloning == nil {
		return DefaultConfirmCloning
	}
	return *g.ConfirmCloning
}

// ResolvedRepoLimit is the maximum number of repositories listed. Default: 1000
func (g GithubConfig) ResolvedRepoLimit() int {
	if g.RepoLimit == nil || *g.RepoLimit <= 0 {
		return DefaultRepoLimit
	}
	return *g.RepoLimit
}
