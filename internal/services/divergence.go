package services

import (
	"context"
	"errors"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/ports"
)

// divergenceSource is the subset of a repository the divergence resolver reads
type divergenceSource interface {
	ports.CommitGraph
	ports.RefReader
}

// DivergenceResolver computes how far HEAD has diverged from its upstream
type DivergenceResolver struct {
	repo divergenceSource
}

// NewDivergenceResolver creates a new DivergenceResolver
func NewDivergenceResolver(repo divergenceSource) *DivergenceResolver {
	return &DivergenceResolver{repo: repo}
}

// Resolve returns ahead/behind counts, or an absent divergence explaining why
// none could be computed. It never fails: lookup errors are recorded on the result.
func (r *DivergenceResolver) Resolve(ctx context.Context) domain.Divergence {
	head, err := r.repo.Head(ctx)
	if errors.Is(err, domain.ErrUnbornHead) {
		return domain.NoDivergence(domain.DivergenceUnbornHead, nil)
	}
	if err != nil {
		return r.lookupFailed("head", err)
	}
	if !head.IsBranch() {
		return domain.NoDivergence(domain.DivergenceDetached, nil)
	}
	if head.Target.IsZero() {
		return domain.NoDivergence(domain.DivergenceUnresolved, nil)
	}

	upstream, err := r.repo.Upstream(ctx, head)
	if err != nil {
		return r.lookupFailed("upstream", err)
	}
	if upstream == nil {
		logging.Logger.Debug("No upstream configured", "branch", head.Name)
		return domain.NoDivergence(domain.DivergenceNoUpstream, nil)
	}
	if upstream.Target.IsZero() {
		logging.Logger.Debug("Upstream has no commit", "upstream", upstream.Name)
		return domain.NoDivergence(domain.DivergenceUnresolved, nil)
	}

	ahead, behind, err := r.repo.AheadBehind(ctx, head.Target, upstream.Target)
	if err != nil {
		return r.lookupFailed("ahead-behind", err)
	}

	logging.Logger.Debug("Divergence resolved",
		"branch", head.Name,
		"upstream", upstream.Name,
		"ahead", ahead,
		"behind", behind)

	return domain.NewDivergence(ahead, behind)
}

func (r *DivergenceResolver) lookupFailed(step string, err error) domain.Divergence {
	// Non-fatal - the summary is still produced without divergence
	logging.Logger.Debug("Divergence lookup failed", "step", step, "error", err)
	return domain.NoDivergence(domain.DivergenceLookupFailed, err)
}
