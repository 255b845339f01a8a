package domain

// StatusKind identifies one file-status segment of the summary
type StatusKind string

const (
	KindClean      StatusKind = "clean"
	KindConflicted StatusKind = "conflicted"
	KindDeleted    StatusKind = "deleted"
	KindModified   StatusKind = "modified"
	KindNew        StatusKind = "new"
	KindUntracked  StatusKind = "untracked"
)

// BranchIdentity is the display name of the checked out branch.
// Name is empty when HEAD is detached or unborn.
type BranchIdentity struct {
	Name string
}

// Known reports whether HEAD has a symbolic name
func (b BranchIdentity) Known() bool {
	return b.Name != ""
}

// FileCounts holds the number of changed paths per category
type FileCounts struct {
	Conflicted int
	Deleted    int
	Modified   int
	New        int
	Untracked  int
}

// Total returns the number of classified paths
func (c FileCounts) Total() int {
	return c.New + c.Modified + c.Deleted + c.Untracked + c.Conflicted
}

// Dirty reports whether any new, modified, deleted or untracked path exists.
// Conflicts alone do not make the working copy dirty.
func (c FileCounts) Dirty() bool {
	return c.New+c.Modified+c.Deleted+c.Untracked > 0
}

// StatusEntry is one rendered file-status segment
type StatusEntry struct {
	Count int
	Kind  StatusKind
}

// StatusSummary is the complete state of a working copy for one invocation
type StatusSummary struct {
	Branch     BranchIdentity
	Divergence Divergence
	Entries    []StatusEntry // Ordered; a single KindClean entry when not dirty
	Files      FileCounts
}

// Clean reports whether the summary carries the clean marker
func (s StatusSummary) Clean() bool {
	return len(s.Entries) == 1 && s.Entries[0].Kind == KindClean
}
