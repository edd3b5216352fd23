package ports

import (
	"context"

	"workflows/internal/domain"
)

// RepoLister lists the authenticated user's repositories
type RepoLister interface {
	ListRepositories(ctx context.Context, limit int) (domain.Repos, error)
}

// RepoCloner clones a hosted repository to a local directory
type RepoCloner interface {
	Clone(ctx context.Context, repo domain.Repo, dest string) error
}

// HostingService is the composite interface
type HostingService interface {
	RepoLister
	RepoCloner
}
