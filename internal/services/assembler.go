package services

import (
	"github.com/0xADD1E/git-statusline/internal/domain"
)

// Assemble combines the resolver outputs into a summary.
// Entries hold a single clean marker when nothing is new, modified, deleted or
// untracked (conflicts alone don't count); otherwise one entry per non-zero
// counter in display order.
func Assemble(identity domain.BranchIdentity, divergence domain.Divergence, counts domain.FileCounts) domain.StatusSummary {
	summary := domain.StatusSummary{
		Branch:     identity,
		Divergence: divergence,
		Files:      counts,
	}

	if !counts.Dirty() {
		summary.Entries = []domain.StatusEntry{{Kind: domain.KindClean}}
		return summary
	}

	ordered := []domain.StatusEntry{
		{Kind: domain.KindNew, Count: counts.New},
		{Kind: domain.KindModified, Count: counts.Modified},
		{Kind: domain.KindDeleted, Count: counts.Deleted},
		{Kind: domain.KindUntracked, Count: counts.Untracked},
		{Kind: domain.KindConflicted, Count: counts.Conflicted},
	}
	for _, entry := range ordered {
		if entry.Count > 0 {
			summary.Entries = append(summary.Entries, entry)
		}
	}

	return summary
}
