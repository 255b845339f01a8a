package gogit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/storage/filesystem"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/ports"
)

// Environment variables git consults before walking up the directory tree
const (
	envGitDir      = "GIT_DIR"
	envWorkTree    = "GIT_WORK_TREE"
	envCeilingDirs = "GIT_CEILING_DIRECTORIES"
)

// Opener implements ports.RepositoryOpener using go-git
type Opener struct{}

// Verify interface compliance at compile time
var _ ports.RepositoryOpener = (*Opener)(nil)

// NewOpener creates a new Opener
func NewOpener() *Opener {
	return &Opener{}
}

// Discover walks up from startPath until a directory opens as a repository.
// Both working copies (with a .git dir or file) and bare repositories are found.
// GIT_DIR skips the walk, and the walk never enters a GIT_CEILING_DIRECTORIES entry.
func (o *Opener) Discover(ctx context.Context, startPath string) (ports.Repository, error) {
	start, err := filepath.Abs(startPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", startPath, err)
	}
	fi, err := os.Stat(start)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		start = filepath.Dir(start)
	}
	if resolved, err := filepath.EvalSymlinks(start); err == nil {
		start = resolved
	}

	if gitDir := os.Getenv(envGitDir); gitDir != "" {
		return openGitDir(gitDir, start)
	}

	ceilings := ceilingDirs(os.Getenv(envCeilingDirs))

	dir := start
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{
			EnableDotGitCommonDir: true,
		})
		if err == nil {
			logging.Logger.Debug("Found repository", "path", dir)
			return newRepository(repo, dir), nil
		}
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("failed to open %s: %w", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, domain.ErrRepositoryNotFound
		}
		if _, stop := ceilings[parent]; stop {
			logging.Logger.Debug("Stopped at ceiling directory", "path", parent)
			return nil, domain.ErrRepositoryNotFound
		}
		dir = parent
	}
}

// openGitDir opens the repository named by GIT_DIR. The working tree is
// GIT_WORK_TREE, else none for a bare repository, else the start directory.
func openGitDir(gitDir, start string) (ports.Repository, error) {
	gitDir, err := filepath.Abs(gitDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", envGitDir, err)
	}
	if fi, err := os.Stat(gitDir); err != nil || !fi.IsDir() {
		return nil, domain.ErrRepositoryNotFound
	}

	storage := filesystem.NewStorage(osfs.New(gitDir), cache.NewObjectLRUDefault())

	var worktree billy.Filesystem
	if dir := os.Getenv(envWorkTree); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", envWorkTree, err)
		}
		worktree = osfs.New(abs)
	} else {
		cfg, err := storage.Config()
		if err != nil {
			return nil, fmt.Errorf("failed to read config in %s: %w", gitDir, err)
		}
		if !cfg.Core.IsBare {
			worktree = osfs.New(start)
		}
	}

	repo, err := git.Open(storage, worktree)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, domain.ErrRepositoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", gitDir, err)
	}

	logging.Logger.Debug("Opened repository from environment", "git_dir", gitDir)
	return newRepository(repo, gitDir), nil
}

// ceilingDirs parses a GIT_CEILING_DIRECTORIES list into cleaned real paths.
// Relative entries are ignored, as git does.
func ceilingDirs(list string) map[string]struct{} {
	dirs := make(map[string]struct{})
	for _, dir := range filepath.SplitList(list) {
		if dir == "" || !filepath.IsAbs(dir) {
			continue
		}
		dir = filepath.Clean(dir)
		if resolved, err := filepath.EvalSymlinks(dir); err == nil {
			dir = resolved
		}
		dirs[dir] = struct{}{}
	}
	return dirs
}
