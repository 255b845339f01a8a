package gogit

import (
	"context"
	"errors"
	"fmt"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/ports"
)

// localRemote is the remote name git uses for an upstream in the same repository
const localRemote = "."

// Repository implements ports.Repository on top of a go-git repository
type Repository struct {
	repo     *git.Repository
	root     string
	worktree *git.Worktree // nil for bare repositories
}

// Verify interface compliance at compile time
var _ ports.Repository = (*Repository)(nil)

func newRepository(repo *git.Repository, dir string) *Repository {
	r := &Repository{repo: repo, root: dir}
	if wt, err := repo.Worktree(); err == nil {
		wt.Excludes = append(wt.Excludes, globalExcludes()...)
		r.worktree = wt
		r.root = wt.Filesystem.Root()
	}
	return r
}

// Root returns the working tree root, or the git dir of a bare repository
func (r *Repository) Root() string {
	return r.root
}

// IsBare reports whether the repository has no working tree
func (r *Repository) IsBare() bool {
	return r.worktree == nil
}

// Head returns the checked out reference, resolved to its commit
func (r *Repository) Head(ctx context.Context) (domain.Reference, error) {
	if err := ctx.Err(); err != nil {
		return domain.Reference{}, err
	}

	head, err := r.repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return domain.Reference{}, domain.ErrUnbornHead
	}
	if err != nil {
		return domain.Reference{}, err
	}

	return toReference(head), nil
}

// Upstream resolves the tracking branch configured for a local branch.
// An upstream whose remote-tracking ref does not exist is returned without a target.
func (r *Repository) Upstream(ctx context.Context, branch domain.Reference) (*domain.Reference, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	short, ok := branch.Shorthand()
	if !ok || !branch.IsBranch() {
		return nil, nil
	}

	cfg, err := r.repo.Config()
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	bc, ok := cfg.Branches[short]
	if !ok || bc.Remote == "" || bc.Merge == "" {
		return nil, nil
	}

	name := trackingRefName(cfg, bc)
	ref, err := r.repo.Reference(name, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return &domain.Reference{Name: name.String()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", name, err)
	}

	upstream := toReference(ref)
	upstream.Name = name.String()
	return &upstream, nil
}

// AheadBehind counts commits reachable from only one side, walking the object store
// down to the merge base
func (r *Repository) AheadBehind(ctx context.Context, local, upstream domain.CommitID) (int, int, error) {
	return countAheadBehind(ctx, storedCommits(r.repo.Storer), plumbing.NewHash(string(local)), plumbing.NewHash(string(upstream)))
}

// Statuses lists changed paths of the working tree and index
func (r *Repository) Statuses(ctx context.Context, includeUntracked bool) ([]domain.ChangeRecord, error) {
	if r.worktree == nil {
		return nil, domain.ErrBareRepository
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status, err := r.worktree.Status()
	if err != nil {
		return nil, err
	}

	idx, err := r.repo.Storer.Index()
	if err != nil {
		return nil, fmt.Errorf("failed to read index: %w", err)
	}

	return changeRecords(status, newIndexView(idx), includeUntracked), nil
}

// trackingRefName maps branch.<name>.merge through the remote's fetch refspecs
func trackingRefName(cfg *config.Config, bc *config.Branch) plumbing.ReferenceName {
	if bc.Remote == localRemote {
		return bc.Merge
	}

	if remote, ok := cfg.Remotes[bc.Remote]; ok {
		for _, spec := range remote.Fetch {
			if spec.Match(bc.Merge) {
				return spec.Dst(bc.Merge)
			}
		}
	}

	return plumbing.NewRemoteReferenceName(bc.Remote, bc.Merge.Short())
}

func toReference(ref *plumbing.Reference) domain.Reference {
	result := domain.Reference{Name: ref.Name().String()}
	if !ref.Hash().IsZero() {
		result.Target = domain.CommitID(ref.Hash().String())
	}
	return result
}
