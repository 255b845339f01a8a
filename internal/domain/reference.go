package domain

import "strings"

const (
	// HeadRef is the name of a detached HEAD reference
	HeadRef = "HEAD"

	branchPrefix = "refs/heads/"
	remotePrefix = "refs/remotes/"
	tagPrefix    = "refs/tags/"
)

// CommitID is a hex-encoded object id. The zero value means "no commit".
type CommitID string

// IsZero reports whether the id is absent
func (c CommitID) IsZero() bool {
	return c == ""
}

// Short returns the first 7 characters of the id
func (c CommitID) Short() string {
	if len(c) > 7 {
		return string(c[:7])
	}
	return string(c)
}

// Reference is a resolved git reference
type Reference struct {
	Name   string   // Full name, e.g. refs/heads/main, or HEAD when detached
	Target CommitID // Peeled commit, empty when unresolvable
}

// IsBranch reports whether the reference is a local branch
func (r Reference) IsBranch() bool {
	return strings.HasPrefix(r.Name, branchPrefix)
}

// Shorthand returns the display name of a named reference.
// Returns false for a detached HEAD.
func (r Reference) Shorthand() (string, bool) {
	for _, prefix := range []string{branchPrefix, remotePrefix, tagPrefix} {
		if short, ok := strings.CutPrefix(r.Name, prefix); ok && short != "" {
			return short, true
		}
	}
	return "", false
}

// BranchRef builds the full reference name of a local branch
func BranchRef(name string) string {
	return branchPrefix + name
}

// RemoteRef builds the full reference name of a remote-tracking branch
func RemoteRef(remote, branch string) string {
	return remotePrefix + remote + "/" + branch
}
