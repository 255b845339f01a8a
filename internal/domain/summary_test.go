package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusFlags_HasAndIntersects(t *testing.T) {
	flags := IndexModified | WorktreeModified

	assert.True(t, flags.Has(IndexModified))
	assert.True(t, flags.Has(IndexModified|WorktreeModified))
	assert.False(t, flags.Has(IndexModified|WorktreeNew))
	assert.True(t, flags.Intersects(WorktreeNew|WorktreeModified))
	assert.False(t, flags.Intersects(Conflicted))
}

func TestStatusFlags_String(t *testing.T) {
	assert.Equal(t, "none", StatusFlags(0).String())
	assert.Equal(t, "index-new", IndexNew.String())
	assert.Equal(t, "index-modified|worktree-modified", (WorktreeModified | IndexModified).String())
}

func TestReference_Shorthand(t *testing.T) {
	tests := []struct {
		name      string
		ref       Reference
		expected  string
		wantShort bool
		isBranch  bool
	}{
		{"branch", Reference{Name: "refs/heads/main"}, "main", true, true},
		{"nested branch", Reference{Name: "refs/heads/feature/x"}, "feature/x", true, true},
		{"remote", Reference{Name: "refs/remotes/origin/main"}, "origin/main", true, false},
		{"tag", Reference{Name: "refs/tags/v1.0.0"}, "v1.0.0", true, false},
		{"detached", Reference{Name: HeadRef, Target: "abc"}, "", false, false},
		{"empty", Reference{}, "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			short, ok := tt.ref.Shorthand()
			assert.Equal(t, tt.wantShort, ok)
			assert.Equal(t, tt.expected, short)
			assert.Equal(t, tt.isBranch, tt.ref.IsBranch())
		})
	}
}

func TestRefBuilders(t *testing.T) {
	assert.Equal(t, "refs/heads/feature/x", BranchRef("feature/x"))
	assert.Equal(t, "refs/remotes/origin/main", RemoteRef("origin", "main"))
}

func TestCommitID_Short(t *testing.T) {
	assert.Equal(t, "0123456", CommitID("0123456789abcdef").Short())
	assert.Equal(t, "abc", CommitID("abc").Short())
	assert.True(t, CommitID("").IsZero())
}

func TestDivergence_Available(t *testing.T) {
	assert.True(t, NewDivergence(0, 0).Available())
	assert.True(t, NewDivergence(0, 0).InSync())
	assert.False(t, NewDivergence(2, 1).InSync())

	absent := NoDivergence(DivergenceNoUpstream, nil)
	assert.False(t, absent.Available())
	assert.False(t, absent.InSync())
	assert.Equal(t, "no-upstream", absent.State.String())
}

func TestDivergence_ZeroValueIsAbsent(t *testing.T) {
	var zero Divergence

	assert.Equal(t, DivergenceUnknown, zero.State)
	assert.False(t, zero.Available())
	assert.False(t, zero.InSync())
	assert.Equal(t, "unknown", zero.State.String())
}

func TestFileCounts_Dirty(t *testing.T) {
	assert.False(t, FileCounts{}.Dirty())
	assert.False(t, FileCounts{Conflicted: 3}.Dirty(), "conflicts alone are not dirty")
	assert.True(t, FileCounts{Untracked: 1}.Dirty())
	assert.Equal(t, 6, FileCounts{New: 1, Modified: 1, Deleted: 1, Untracked: 1, Conflicted: 2}.Total())
}

func TestStatusSummary_Clean(t *testing.T) {
	clean := StatusSummary{Entries: []StatusEntry{{Kind: KindClean}}}
	dirty := StatusSummary{Entries: []StatusEntry{{Kind: KindNew, Count: 1}}}

	assert.True(t, clean.Clean())
	assert.False(t, dirty.Clean())
	assert.False(t, StatusSummary{}.Clean())
}
