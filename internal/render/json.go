package render

import (
	"encoding/json"

	"github.com/0xADD1E/git-statusline/internal/domain"
)

// summaryView is the JSON encoding of a summary
type summaryView struct {
	Ahead      *int       `json:"ahead"`
	Behind     *int       `json:"behind"`
	Branch     *string    `json:"branch"`
	Clean      *bool      `json:"clean,omitempty"`
	Divergence string     `json:"divergence"`
	Files      *filesView `json:"files,omitempty"`
}

type filesView struct {
	Conflicted int `json:"conflicted"`
	Deleted    int `json:"deleted"`
	Modified   int `json:"modified"`
	New        int `json:"new"`
	Untracked  int `json:"untracked"`
}

func marshalSummary(summary *domain.StatusSummary, hideFiles bool) ([]byte, error) {
	view := summaryView{
		Divergence: summary.Divergence.State.String(),
	}

	if summary.Branch.Known() {
		name := summary.Branch.Name
		view.Branch = &name
	}

	if summary.Divergence.Available() {
		ahead, behind := summary.Divergence.Ahead, summary.Divergence.Behind
		view.Ahead = &ahead
		view.Behind = &behind
	}

	if !hideFiles {
		clean := summary.Clean()
		view.Clean = &clean
		view.Files = &filesView{
			Conflicted: summary.Files.Conflicted,
			Deleted:    summary.Files.Deleted,
			Modified:   summary.Files.Modified,
			New:        summary.Files.New,
			Untracked:  summary.Files.Untracked,
		}
	}

	return json.Marshal(view)
}
