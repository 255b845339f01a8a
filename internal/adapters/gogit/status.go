package gogit

import (
	"path"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/format/index"

	"github.com/0xADD1E/git-statusline/internal/domain"
)

var stagingFlags = map[git.StatusCode]domain.StatusFlags{
	git.Added:    domain.IndexNew,
	git.Copied:   domain.IndexNew,
	git.Deleted:  domain.IndexDeleted,
	git.Modified: domain.IndexModified,
	git.Renamed:  domain.IndexRenamed,
}

var worktreeFlags = map[git.StatusCode]domain.StatusFlags{
	git.Deleted:   domain.WorktreeDeleted,
	git.Modified:  domain.WorktreeModified,
	git.Renamed:   domain.WorktreeRenamed,
	git.Untracked: domain.WorktreeNew,
}

// toFlags converts a go-git file status into change facets.
// Unmerged paths carry only the conflicted facet.
func toFlags(fs *git.FileStatus) domain.StatusFlags {
	if fs.Staging == git.UpdatedButUnmerged || fs.Worktree == git.UpdatedButUnmerged {
		return domain.Conflicted
	}
	if fs.Staging == git.Untracked {
		return domain.WorktreeNew
	}
	return stagingFlags[fs.Staging] | worktreeFlags[fs.Worktree]
}

// indexView is what the status mapping needs from the index.
// go-git's Worktree.Status never reports unmerged entries, so they are read here.
type indexView struct {
	trackedDirs map[string]struct{}
	unmerged    map[string]struct{}
}

func newIndexView(idx *index.Index) indexView {
	v := indexView{
		trackedDirs: make(map[string]struct{}),
		unmerged:    make(map[string]struct{}),
	}
	if idx == nil {
		return v
	}

	for _, e := range idx.Entries {
		// Merged entries are stage 0 on disk; index.Merged is 1 and cannot be used here
		if e.Stage != 0 {
			v.unmerged[e.Name] = struct{}{}
		}
		for dir := path.Dir(e.Name); dir != "."; dir = path.Dir(dir) {
			if _, ok := v.trackedDirs[dir]; ok {
				break
			}
			v.trackedDirs[dir] = struct{}{}
		}
	}
	return v
}

// untrackedRoot returns the top-most directory of p that holds no tracked
// files, with a trailing slash as git prints it, or p when there is none
func (v indexView) untrackedRoot(p string) string {
	parts := strings.Split(p, "/")
	for i := 1; i < len(parts); i++ {
		dir := strings.Join(parts[:i], "/")
		if _, tracked := v.trackedDirs[dir]; !tracked {
			return dir + "/"
		}
	}
	return p
}

// changeRecords flattens a status map into records sorted by path.
// Untracked files are collapsed into their untracked directory.
func changeRecords(status git.Status, idx indexView, includeUntracked bool) []domain.ChangeRecord {
	records := make([]domain.ChangeRecord, 0, len(status))
	untracked := make(map[string]struct{})

	for p, fs := range status {
		flags := toFlags(fs)
		if _, ok := idx.unmerged[p]; ok {
			flags = domain.Conflicted
		}
		if flags == 0 {
			continue
		}

		if flags == domain.WorktreeNew {
			if !includeUntracked {
				continue
			}
			p = idx.untrackedRoot(p)
			if _, seen := untracked[p]; seen {
				continue
			}
			untracked[p] = struct{}{}
		}

		records = append(records, domain.ChangeRecord{Path: p, Flags: flags})
	}

	for p := range idx.unmerged {
		if _, ok := status[p]; !ok {
			records = append(records, domain.ChangeRecord{Path: p, Flags: domain.Conflicted})
		}
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})
	return records
}
