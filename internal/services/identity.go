package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/ports"
)

// IdentityResolver determines the display name of the checked out branch
type IdentityResolver struct {
	refs ports.RefReader
}

// NewIdentityResolver creates a new IdentityResolver
func NewIdentityResolver(refs ports.RefReader) *IdentityResolver {
	return &IdentityResolver{refs: refs}
}

// Resolve returns the short name of HEAD.
// Detached and unborn HEADs yield an empty identity; other lookup failures are returned.
func (r *IdentityResolver) Resolve(ctx context.Context) (domain.BranchIdentity, error) {
	head, err := r.refs.Head(ctx)
	if errors.Is(err, domain.ErrUnbornHead) {
		logging.Logger.Debug("HEAD is unborn, no branch identity")
		return domain.BranchIdentity{}, nil
	}
	if err != nil {
		return domain.BranchIdentity{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	if !head.IsBranch() {
		logging.Logger.Debug("HEAD is detached", "ref", head.Name, "target", head.Target.Short())
		return domain.BranchIdentity{}, nil
	}

	name, _ := head.Shorthand()
	return domain.BranchIdentity{Name: name}, nil
}
