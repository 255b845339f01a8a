package git

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/0xADD1E/git-statusline/internal/domain"
)

var indexFlags = map[byte]domain.StatusFlags{
	'A': domain.IndexNew,
	'C': domain.IndexNew,
	'D': domain.IndexDeleted,
	'M': domain.IndexModified,
	'R': domain.IndexRenamed,
	'T': domain.IndexTypeChange,
}

var worktreeFlags = map[byte]domain.StatusFlags{
	'A': domain.WorktreeNew, // intent-to-add
	'D': domain.WorktreeDeleted,
	'M': domain.WorktreeModified,
	'R': domain.WorktreeRenamed,
	'T': domain.WorktreeTypeChange,
}

// Number of space separated fields before the path, per entry type
const (
	ordinaryFields = 8
	renameFields   = 9
	unmergedFields = 10
)

// parsePorcelainV2 parses `git status --porcelain=v2 -z` output
func parsePorcelainV2(out []byte) ([]domain.ChangeRecord, error) {
	var records []domain.ChangeRecord

	tokens := bytes.Split(out, []byte{0})
	for i := 0; i < len(tokens); i++ {
		entry := string(tokens[i])
		if entry == "" {
			continue
		}

		switch entry[0] {
		case '#', '!':
			continue
		case '?':
			records = append(records, domain.ChangeRecord{Path: strings.TrimPrefix(entry, "? "), Flags: domain.WorktreeNew})
		case '1':
			record, err := parseChanged(entry, ordinaryFields)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
		case '2':
			record, err := parseChanged(entry, renameFields)
			if err != nil {
				return nil, err
			}
			records = append(records, record)
			// The original path follows as its own token
			i++
		case 'u':
			fields := strings.SplitN(entry, " ", unmergedFields+1)
			if len(fields) != unmergedFields+1 {
				return nil, fmt.Errorf("malformed unmerged entry: %q", entry)
			}
			records = append(records, domain.ChangeRecord{Path: fields[unmergedFields], Flags: domain.Conflicted})
		default:
			return nil, fmt.Errorf("unknown status entry: %q", entry)
		}
	}

	return records, nil
}

// parseChanged parses an ordinary or rename entry whose path follows n fields
func parseChanged(entry string, n int) (domain.ChangeRecord, error) {
	fields := strings.SplitN(entry, " ", n+1)
	if len(fields) != n+1 || len(fields[1]) != 2 {
		return domain.ChangeRecord{}, fmt.Errorf("malformed status entry: %q", entry)
	}

	xy := fields[1]
	return domain.ChangeRecord{
		Path:  fields[n],
		Flags: indexFlags[xy[0]] | worktreeFlags[xy[1]],
	}, nil
}
