package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/ports"
)

// StatusService produces the status summary of the repository containing a path
type StatusService struct {
	opener            ports.RepositoryOpener
	divergenceTimeout time.Duration
}

// NewStatusService creates a new StatusService.
// divergenceTimeout bounds the ahead/behind lookup only (0 = none); when it
// runs out the summary is still produced without divergence.
func NewStatusService(opener ports.RepositoryOpener, divergenceTimeout time.Duration) *StatusService {
	return &StatusService{
		opener:            opener,
		divergenceTimeout: divergenceTimeout,
	}
}

// Summarize computes the summary for the repository containing startPath.
// Returns (nil, nil) when startPath is not inside a repository or the repository is bare.
func (s *StatusService) Summarize(ctx context.Context, startPath string) (*domain.StatusSummary, error) {
	logging.Logger.Debug("Summarizing repository status", "path", startPath)

	repo, err := s.opener.Discover(ctx, startPath)
	if errors.Is(err, domain.ErrRepositoryNotFound) {
		logging.Logger.Debug("Not inside a repository", "path", startPath)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	if repo.IsBare() {
		logging.Logger.Debug("Repository is bare, skipping", "root", repo.Root())
		return nil, nil
	}

	identity, err := NewIdentityResolver(repo).Resolve(ctx)
	if err != nil {
		return nil, err
	}

	divergence := s.resolveDivergence(ctx, repo)

	records, err := repo.Statuses(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}
	counts := Classify(records)

	summary := Assemble(identity, divergence, counts)

	logging.Logger.Debug("Status summarized",
		"root", repo.Root(),
		"branch", identity.Name,
		"divergence", divergence.State.String(),
		"new", counts.New,
		"modified", counts.Modified,
		"deleted", counts.Deleted,
		"untracked", counts.Untracked,
		"conflicted", counts.Conflicted)

	return &summary, nil
}

func (s *StatusService) resolveDivergence(ctx context.Context, repo ports.Repository) domain.Divergence {
	if s.divergenceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.divergenceTimeout)
		defer cancel()
	}
	return NewDivergenceResolver(repo).Resolve(ctx)
}
