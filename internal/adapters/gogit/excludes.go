package gogit

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/0xADD1E/git-statusline/internal/logging"
)

// globalExcludes loads the ignore files git reads outside the repository:
// core.excludesFile from /etc/gitconfig and ~/.gitconfig, or the XDG
// default $XDG_CONFIG_HOME/git/ignore when the user sets none.
// Unreadable files are skipped, as the status is still useful without them.
func globalExcludes() []gitignore.Pattern {
	root := osfs.New("/")

	system, err := gitignore.LoadSystemPatterns(root)
	if err != nil {
		logging.Logger.Debug("Failed to load system excludes", "error", err)
	}

	global, err := gitignore.LoadGlobalPatterns(root)
	if err != nil {
		logging.Logger.Debug("Failed to load global excludes", "error", err)
	}
	if global == nil {
		global, err = readExcludesFile(xdgExcludesPath())
		if err != nil {
			logging.Logger.Debug("Failed to load XDG excludes", "error", err)
		}
	}

	return append(system, global...)
}

// xdgExcludesPath is git's default core.excludesFile
func xdgExcludesPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "git", "ignore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "git", "ignore")
}

func readExcludesFile(path string) ([]gitignore.Pattern, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var patterns []gitignore.Pattern
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	return patterns, scanner.Err()
}
