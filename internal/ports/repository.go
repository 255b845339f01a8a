package ports

import (
	"context"

	"github.com/0xADD1E/git-statusline/internal/domain"
)

// RepositoryOpener locates the repository containing a path
type RepositoryOpener interface {
	// Discover searches startPath and its parents for a repository.
	// Returns domain.ErrRepositoryNotFound when there is none.
	Discover(ctx context.Context, startPath string) (Repository, error)
}

// RefReader resolves HEAD and tracking references
type RefReader interface {
	// Head returns the checked out reference.
	// Returns domain.ErrUnbornHead when the current branch has no commits.
	Head(ctx context.Context) (domain.Reference, error)
	// Upstream returns the configured upstream of a local branch, or nil when none is configured
	Upstream(ctx context.Context, branch domain.Reference) (*domain.Reference, error)
}

// CommitGraph answers reachability questions about commits
type CommitGraph interface {
	// AheadBehind counts commits reachable from only one of local and upstream
	AheadBehind(ctx context.Context, local, upstream domain.CommitID) (ahead, behind int, err error)
}

// StatusReader enumerates changed paths in the working tree and index
type StatusReader interface {
	Statuses(ctx context.Context, includeUntracked bool) ([]domain.ChangeRecord, error)
}

// Repository is a read-only handle on one repository
type Repository interface {
	CommitGraph
	RefReader
	StatusReader

	IsBare() bool
	Root() string
}
