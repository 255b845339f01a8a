package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/ports"
)

// DefaultBinary is the git executable looked up in PATH
const DefaultBinary = "git"

// CLIOpener implements ports.RepositoryOpener using local git commands
type CLIOpener struct {
	binary  string
	timeout time.Duration
}

// Verify interface compliance at compile time
var _ ports.RepositoryOpener = (*CLIOpener)(nil)

// NewCLIOpener creates a new CLIOpener.
// timeout bounds every git child process; zero disables the per-command limit.
func NewCLIOpener(timeout time.Duration) *CLIOpener {
	return &CLIOpener{binary: DefaultBinary, timeout: timeout}
}

// Discover asks git for the repository containing startPath
func (o *CLIOpener) Discover(ctx context.Context, startPath string) (ports.Repository, error) {
	dir, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", startPath, err)
	}
	fi, err := os.Stat(dir)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		dir = filepath.Dir(dir)
	}

	runner := gitRunner{binary: o.binary, dir: dir, timeout: o.timeout}
	out, err := runner.output(ctx, "rev-parse", "--is-bare-repository", "--is-inside-work-tree", "--absolute-git-dir")
	if exitStatus(err) == 128 && strings.Contains(err.Error(), "not a git repository") {
		return nil, domain.ErrRepositoryNotFound
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		return nil, fmt.Errorf("unexpected rev-parse output: %q", out)
	}

	repo := &CLIRepository{
		bare:   lines[0] == "true" || lines[1] != "true",
		root:   lines[2],
		runner: runner,
	}
	if !repo.bare {
		top, err := runner.output(ctx, "rev-parse", "--show-toplevel")
		if err != nil {
			return nil, err
		}
		repo.root = top
		repo.runner.dir = top
	}

	logging.Logger.Debug("Found repository", "root", repo.root, "bare", repo.bare)
	return repo, nil
}

// CLIRepository implements ports.Repository by running git in the repository root
type CLIRepository struct {
	bare   bool
	root   string
	runner gitRunner
}

// Verify interface compliance at compile time
var _ ports.Repository = (*CLIRepository)(nil)

// Root returns the working tree root, or the git dir when there is no working tree
func (r *CLIRepository) Root() string {
	return r.root
}

// IsBare reports whether there is no working tree to inspect
func (r *CLIRepository) IsBare() bool {
	return r.bare
}

// Head implements RefReader.Head
func (r *CLIRepository) Head(ctx context.Context) (domain.Reference, error) {
	name, err := r.runner.output(ctx, "symbolic-ref", "-q", "HEAD")
	if exitStatus(err) == 1 {
		// Detached
		name = domain.HeadRef
	} else if err != nil {
		return domain.Reference{}, err
	}

	sha, err := r.runner.verifyCommit(ctx, "HEAD")
	if err != nil {
		return domain.Reference{}, err
	}
	if sha == "" {
		return domain.Reference{}, domain.ErrUnbornHead
	}

	return domain.Reference{Name: name, Target: domain.CommitID(sha)}, nil
}

// Upstream implements RefReader.Upstream
func (r *CLIRepository) Upstream(ctx context.Context, branch domain.Reference) (*domain.Reference, error) {
	if !branch.IsBranch() {
		return nil, nil
	}

	name, err := r.runner.output(ctx, "for-each-ref", "--format=%(upstream)", branch.Name)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, nil
	}

	sha, err := r.runner.verifyCommit(ctx, name)
	if err != nil {
		return nil, err
	}

	return &domain.Reference{Name: name, Target: domain.CommitID(sha)}, nil
}

// AheadBehind implements CommitGraph.AheadBehind
func (r *CLIRepository) AheadBehind(ctx context.Context, local, upstream domain.CommitID) (int, int, error) {
	if local == upstream {
		return 0, 0, nil
	}

	out, err := r.runner.output(ctx, "rev-list", "--left-right", "--count", string(local)+"..."+string(upstream))
	if err != nil {
		return 0, 0, err
	}

	// Parse output: "AHEAD	BEHIND"
	parts := strings.Fields(out)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %s", out)
	}

	ahead, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count: %w", err)
	}
	behind, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count: %w", err)
	}

	return ahead, behind, nil
}

// Statuses implements StatusReader.Statuses
func (r *CLIRepository) Statuses(ctx context.Context, includeUntracked bool) ([]domain.ChangeRecord, error) {
	if r.bare {
		return nil, domain.ErrBareRepository
	}

	untracked := "--untracked-files=no"
	if includeUntracked {
		untracked = "--untracked-files=normal"
	}

	out, err := r.runner.run(ctx, "status", "--porcelain=v2", "-z", "--no-renames", untracked)
	if err != nil {
		return nil, err
	}

	return parsePorcelainV2(out)
}
