package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/0xADD1E/git-statusline/internal/domain"
	portsmocks "github.com/0xADD1E/git-statusline/internal/ports/mocks"
)

func TestSummarize_EndToEnd(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().Root().Return("/repo").Maybe()
	repo.EXPECT().IsBare().Return(false)
	repo.EXPECT().Head(mock.Anything).Return(mainRef, nil)
	repo.EXPECT().Upstream(mock.Anything, mainRef).Return(upstreamRef, nil)
	repo.EXPECT().AheadBehind(mock.Anything, domain.CommitID("local"), domain.CommitID("remote")).Return(2, 1, nil)
	repo.EXPECT().Statuses(mock.Anything, true).Return([]domain.ChangeRecord{
		{Path: "added.txt", Flags: domain.IndexNew},
		{Path: "README.md", Flags: domain.WorktreeModified},
		{Path: "scratch.txt", Flags: domain.WorktreeNew},
	}, nil)

	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, "/repo/sub").Return(repo, nil)

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), "/repo/sub")

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "main", summary.Branch.Name)
	assert.Equal(t, domain.NewDivergence(2, 1), summary.Divergence)
	assert.Equal(t, domain.FileCounts{New: 1, Modified: 1, Untracked: 1}, summary.Files)
	assert.Equal(t, []domain.StatusEntry{
		{Kind: domain.KindNew, Count: 1},
		{Kind: domain.KindModified, Count: 1},
		{Kind: domain.KindUntracked, Count: 1},
	}, summary.Entries)
}

func TestSummarize_NotARepository(t *testing.T) {
	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, "/tmp").Return(nil, domain.ErrRepositoryNotFound)

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), "/tmp")

	assert.NoError(t, err)
	assert.Nil(t, summary)
}

func TestSummarize_BareRepository(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().IsBare().Return(true)
	repo.EXPECT().Root().Return("/srv/repo.git")

	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, "/srv/repo.git").Return(repo, nil)

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), "/srv/repo.git")

	assert.NoError(t, err)
	assert.Nil(t, summary)
}

func TestSummarize_OpenFailure(t *testing.T) {
	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, ".").Return(nil, errors.New("permission denied"))

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), ".")

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "failed to open repository")
}

func TestSummarize_IdentityFailureIsFatal(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().IsBare().Return(false)
	repo.EXPECT().Head(mock.Anything).Return(domain.Reference{}, errors.New("bad HEAD"))

	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, ".").Return(repo, nil)

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), ".")

	require.Error(t, err)
	assert.Nil(t, summary)
}

func TestSummarize_StatusFailureIsFatal(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().IsBare().Return(false)
	repo.EXPECT().Head(mock.Anything).Return(domain.Reference{Name: domain.HeadRef, Target: "c1"}, nil)
	repo.EXPECT().Statuses(mock.Anything, true).Return(nil, errors.New("index locked"))

	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, ".").Return(repo, nil)

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), ".")

	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Contains(t, err.Error(), "index locked")
}

func TestSummarize_UnbornRepositoryIsClean(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().Root().Return("/new").Maybe()
	repo.EXPECT().IsBare().Return(false)
	repo.EXPECT().Head(mock.Anything).Return(domain.Reference{}, domain.ErrUnbornHead)
	repo.EXPECT().Statuses(mock.Anything, true).Return(nil, nil)

	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, "/new").Return(repo, nil)

	summary, err := NewStatusService(opener, 0).Summarize(context.Background(), "/new")

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.False(t, summary.Branch.Known())
	assert.Equal(t, domain.DivergenceUnbornHead, summary.Divergence.State)
	assert.True(t, summary.Clean())
}

func TestSummarize_SlowDivergenceIsNotFatal(t *testing.T) {
	repo := portsmocks.NewMockRepository(t)
	repo.EXPECT().Root().Return("/repo").Maybe()
	repo.EXPECT().IsBare().Return(false)
	repo.EXPECT().Head(mock.Anything).Return(mainRef, nil)
	repo.EXPECT().Upstream(mock.Anything, mainRef).Return(upstreamRef, nil)
	repo.EXPECT().AheadBehind(mock.Anything, domain.CommitID("local"), domain.CommitID("remote")).
		RunAndReturn(func(ctx context.Context, _, _ domain.CommitID) (int, int, error) {
			<-ctx.Done()
			return 0, 0, ctx.Err()
		})
	liveContext := mock.MatchedBy(func(ctx context.Context) bool { return ctx.Err() == nil })
	repo.EXPECT().Statuses(liveContext, true).Return([]domain.ChangeRecord{
		{Path: "README.md", Flags: domain.WorktreeModified},
	}, nil)

	opener := portsmocks.NewMockRepositoryOpener(t)
	opener.EXPECT().Discover(mock.Anything, "/repo").Return(repo, nil)

	summary, err := NewStatusService(opener, 10*time.Millisecond).Summarize(context.Background(), "/repo")

	require.NoError(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, "main", summary.Branch.Name)
	assert.Equal(t, domain.DivergenceLookupFailed, summary.Divergence.State)
	assert.ErrorIs(t, summary.Divergence.Err, context.DeadlineExceeded)
	assert.Equal(t, domain.FileCounts{Modified: 1}, summary.Files)
}
