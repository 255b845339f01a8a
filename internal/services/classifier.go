package services

import (
	"github.com/0xADD1E/git-statusline/internal/domain"
)

// categoryRule assigns a status kind to any record carrying one of its facets
type categoryRule struct {
	kind domain.StatusKind
	mask domain.StatusFlags
}

// categoryRules is checked top to bottom; the first matching rule wins so that a
// path with both staged and unstaged changes is counted once, on the index side.
// Conflicted is its own category and is checked last.
var categoryRules = []categoryRule{
	{
		kind: domain.KindNew,
		mask: domain.IndexNew | domain.IndexModified | domain.IndexRenamed | domain.IndexTypeChange,
	},
	{
		kind: domain.KindModified,
		mask: domain.WorktreeModified | domain.WorktreeTypeChange | domain.WorktreeRenamed,
	},
	{
		kind: domain.KindDeleted,
		mask: domain.IndexDeleted | domain.WorktreeDeleted,
	},
	{
		kind: domain.KindUntracked,
		mask: domain.WorktreeNew,
	},
	{
		kind: domain.KindConflicted,
		mask: domain.Conflicted,
	},
}

// Categorize returns the single category a set of facets belongs to.
// Returns false when no facet is recognized.
func Categorize(flags domain.StatusFlags) (domain.StatusKind, bool) {
	for _, rule := range categoryRules {
		if flags.Intersects(rule.mask) {
			return rule.kind, true
		}
	}
	return "", false
}

// Classify counts change records per category. The result does not depend on
// the order of records.
func Classify(records []domain.ChangeRecord) domain.FileCounts {
	var counts domain.FileCounts
	for _, record := range records {
		kind, ok := Categorize(record.Flags)
		if !ok {
			continue
		}
		switch kind {
		case domain.KindNew:
			counts.New++
		case domain.KindModified:
			counts.Modified++
		case domain.KindDeleted:
			counts.Deleted++
		case domain.KindUntracked:
			counts.Untracked++
		case domain.KindConflicted:
			counts.Conflicted++
		}
	}
	return counts
}
