package domain

import "strings"

// StatusFlags is a bitset of the change facets reported for a single path.
// A path may carry several facets at once (e.g. staged and unstaged edits).
type StatusFlags uint16

const (
	IndexNew StatusFlags = 1 << iota
	IndexModified
	IndexDeleted
	IndexRenamed
	IndexTypeChange
	WorktreeNew // untracked
	WorktreeModified
	WorktreeDeleted
	WorktreeTypeChange
	WorktreeRenamed
	Conflicted
)

var flagNames = []struct {
	flag StatusFlags
	name string
}{
	{IndexNew, "index-new"},
	{IndexModified, "index-modified"},
	{IndexDeleted, "index-deleted"},
	{IndexRenamed, "index-renamed"},
	{IndexTypeChange, "index-typechange"},
	{WorktreeNew, "worktree-new"},
	{WorktreeModified, "worktree-modified"},
	{WorktreeDeleted, "worktree-deleted"},
	{WorktreeTypeChange, "worktree-typechange"},
	{WorktreeRenamed, "worktree-renamed"},
	{Conflicted, "conflicted"},
}

// Has reports whether every facet in mask is set
func (f StatusFlags) Has(mask StatusFlags) bool {
	return f&mask == mask
}

// Intersects reports whether any facet in mask is set
func (f StatusFlags) Intersects(mask StatusFlags) bool {
	return f&mask != 0
}

// String returns the facet names joined with "|", or "none"
func (f StatusFlags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	for _, fn := range flagNames {
		if f.Has(fn.flag) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ChangeRecord is one changed path as reported by the repository
type ChangeRecord struct {
	Flags StatusFlags
	Path  string
}
