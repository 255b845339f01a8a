package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestGitSetup holds paths for a complete git test environment.
// It creates a bare repo (simulating remote/origin), a clone tracking origin/main,
// and a second clone used to push commits the first clone has not seen.
type TestGitSetup struct {
	BareRepoPath  string // Acts as "origin" remote
	ClonePath     string // Working repo with origin configured
	UpstreamClone string // Second clone for creating "behind" commits
	tb            testing.TB
	commits       int
}

// RequireGit skips the test when the git binary is not installed.
func RequireGit(tb testing.TB) {
	tb.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		tb.Skip("git binary not available")
	}
}

// NewTestGitSetup creates a complete git environment with origin.
//
// Setup structure:
//
//	tb.TempDir()/
//	├── bare/       <- git init --bare (acts as origin, HEAD -> main)
//	├── clone/      <- working repo on main, tracking origin/main
//	└── upstream/   <- second clone, created lazily by PushUpstreamCommits
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()
	RequireGit(tb)

	baseDir := tb.TempDir()
	g := &TestGitSetup{
		BareRepoPath:  filepath.Join(baseDir, "bare"),
		ClonePath:     filepath.Join(baseDir, "clone"),
		UpstreamClone: filepath.Join(baseDir, "upstream"),
		tb:            tb,
	}

	runGitCommand(tb, baseDir, "init", "--bare", g.BareRepoPath)
	runGitCommand(tb, g.BareRepoPath, "symbolic-ref", "HEAD", "refs/heads/main")

	runGitCommand(tb, baseDir, "clone", g.BareRepoPath, g.ClonePath)
	configureUser(tb, g.ClonePath)

	// Initial commit so the branch exists
	g.WriteFile("README.md", "# Test Repo\n")
	runGitCommand(tb, g.ClonePath, "add", "README.md")
	runGitCommand(tb, g.ClonePath, "commit", "-m", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, g.ClonePath, "branch", "-M", "main")
	runGitCommand(tb, g.ClonePath, "push", "-u", "origin", "main")

	return g
}

// NewTestRepo creates a standalone repository on an unborn main branch.
func NewTestRepo(tb testing.TB) string {
	tb.Helper()
	RequireGit(tb)

	dir := tb.TempDir()
	runGitCommand(tb, dir, "init")
	runGitCommand(tb, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	configureUser(tb, dir)
	return dir
}

// NewDivergedSetup builds the canonical scenario: main is ahead of origin/main
// by ahead commits and behind by behind commits.
func NewDivergedSetup(tb testing.TB, ahead, behind int) *TestGitSetup {
	tb.Helper()

	g := NewTestGitSetup(tb)
	g.PushUpstreamCommits(behind)
	g.CommitLocal(ahead)
	runGitCommand(tb, g.ClonePath, "fetch", "origin")
	return g
}

// CommitLocal creates n commits in the working clone without pushing them.
func (g *TestGitSetup) CommitLocal(n int) {
	g.tb.Helper()
	for i := 0; i < n; i++ {
		g.commits++
		name := "local-" + strconv.Itoa(g.commits) + ".txt"
		g.WriteFile(name, "local change\n")
		runGitCommand(g.tb, g.ClonePath, "add", name)
		runGitCommand(g.tb, g.ClonePath, "commit", "-m", "Local commit "+strconv.Itoa(g.commits))
	}
}

// PushUpstreamCommits pushes n commits to origin/main from the second clone.
// The working clone only sees them after a fetch.
func (g *TestGitSetup) PushUpstreamCommits(n int) {
	g.tb.Helper()
	if n == 0 {
		return
	}

	if _, err := os.Stat(g.UpstreamClone); os.IsNotExist(err) {
		runGitCommand(g.tb, filepath.Dir(g.UpstreamClone), "clone", g.BareRepoPath, g.UpstreamClone)
		configureUser(g.tb, g.UpstreamClone)
	} else {
		runGitCommand(g.tb, g.UpstreamClone, "pull", "--ff-only")
	}

	for i := 0; i < n; i++ {
		g.commits++
		name := "upstream-" + strconv.Itoa(g.commits) + ".txt"
		path := filepath.Join(g.UpstreamClone, name)
		if err := os.WriteFile(path, []byte("upstream change\n"), 0644); err != nil {
			g.tb.Fatalf("Failed to write %s: %v", path, err)
		}
		runGitCommand(g.tb, g.UpstreamClone, "add", name)
		runGitCommand(g.tb, g.UpstreamClone, "commit", "-m", "Upstream commit "+strconv.Itoa(g.commits))
	}
	runGitCommand(g.tb, g.UpstreamClone, "push", "origin", "main")
}

// MakeDirty leaves one staged new file, one modified tracked file and one untracked file.
func (g *TestGitSetup) MakeDirty() {
	g.tb.Helper()

	g.WriteFile("staged.txt", "staged\n")
	runGitCommand(g.tb, g.ClonePath, "add", "staged.txt")
	g.WriteFile("README.md", "# Test Repo\nchanged\n")
	g.WriteFile("untracked.txt", "untracked\n")
}

// MakeConflict leaves README.md unmerged after a conflicting merge into main.
func (g *TestGitSetup) MakeConflict() {
	g.tb.Helper()

	runGitCommand(g.tb, g.ClonePath, "checkout", "-q", "-b", "conflicting")
	g.WriteFile("README.md", "theirs\n")
	runGitCommand(g.tb, g.ClonePath, "commit", "-q", "-am", "Theirs")

	runGitCommand(g.tb, g.ClonePath, "checkout", "-q", "main")
	g.WriteFile("README.md", "ours\n")
	runGitCommand(g.tb, g.ClonePath, "commit", "-q", "-am", "Ours")

	// Expected to fail with a conflict
	if err := gitCommand(g.ClonePath, "merge", "conflicting").Run(); err == nil {
		g.tb.Fatalf("Expected merge conflict in %s", g.ClonePath)
	}
}

// WriteFile writes a file relative to the working clone.
func (g *TestGitSetup) WriteFile(name, content string) {
	g.tb.Helper()
	path := filepath.Join(g.ClonePath, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		g.tb.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", path, err)
	}
}

// Git runs a git command in the working clone and returns its trimmed output.
func (g *TestGitSetup) Git(args ...string) string {
	g.tb.Helper()
	return RunGitOutput(g.tb, g.ClonePath, args...)
}

// CreateBranch creates a local branch without checking it out.
func (g *TestGitSetup) CreateBranch(name string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "branch", name)
}

// Checkout switches the working clone to a branch or commit.
func (g *TestGitSetup) Checkout(target string) {
	g.tb.Helper()
	runGitCommand(g.tb, g.ClonePath, "checkout", "-q", target)
}

// GetClonePath returns the path to the clone directory.
func (g *TestGitSetup) GetClonePath() string {
	return g.ClonePath
}

// GetBareRepoPath returns the path to the bare repository (origin).
func (g *TestGitSetup) GetBareRepoPath() string {
	return g.BareRepoPath
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()
	runGitCommand(tb, dir, args...)
}

// RunGitOutput executes a git command and returns its trimmed stdout.
func RunGitOutput(tb testing.TB, dir string, args ...string) string {
	tb.Helper()
	return strings.TrimSpace(runGitCommand(tb, dir, args...))
}

func configureUser(tb testing.TB, dir string) {
	tb.Helper()
	runGitCommand(tb, dir, "config", "user.email", "test@example.com")
	runGitCommand(tb, dir, "config", "user.name", "Test User")
}

func gitCommand(dir string, args ...string) *exec.Cmd {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
		"GIT_CONFIG_NOSYSTEM=1",
	)
	return cmd
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) string {
	tb.Helper()

	output, err := gitCommand(dir, args...).CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
	return string(output)
}
