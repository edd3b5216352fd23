package ports

import "context"

// VersionControl runs the safety checks performed before a project is deleted
type VersionControl interface {
	// IsWorkingTreeClean reports whether the repo has no uncommitted or untracked changes
	IsWorkingTreeClean(ctx context.Context, repoPath string) (bool, error)
	// IsBranchPushed reports whether branch has no commits missing from its upstream
	IsBranchPushed(ctx context.Context, repoPath, branch string) (bool, error)
}
