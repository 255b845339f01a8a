package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/0xADD1E/git-statusline/internal/logging"
)

// gitRunner executes git commands in one directory
type gitRunner struct {
	binary  string
	dir     string
	timeout time.Duration // Per command, zero means only ctx bounds it
}

// commandError is returned when git exits with a non-zero status
type commandError struct {
	args     []string
	exitCode int
	stderr   string
}

func (e *commandError) Error() string {
	msg := fmt.Sprintf("git %s exited with status %d", strings.Join(e.args, " "), e.exitCode)
	if e.stderr != "" {
		msg += ": " + e.stderr
	}
	return msg
}

// exitStatus returns the exit code of a failed git command, or -1
func exitStatus(err error) int {
	var cmdErr *commandError
	if errors.As(err, &cmdErr) {
		return cmdErr.exitCode
	}
	return -1
}

// run executes git and returns its raw stdout
func (r gitRunner) run(ctx context.Context, args ...string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = r.dir
	// Read-only queries must not take the index lock; messages are matched in English
	cmd.Env = append(cmd.Environ(), "GIT_OPTIONAL_LOCKS=0", "LC_ALL=C")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logging.Logger.Debug("Running git", "dir", r.dir, "args", args)

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("git %s: %w", strings.Join(args, " "), ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return nil, &commandError{
			args:     args,
			exitCode: exitErr.ExitCode(),
			stderr:   strings.TrimSpace(stderr.String()),
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to run git: %w", err)
	}

	return stdout.Bytes(), nil
}

// output executes git and returns its trimmed stdout
func (r gitRunner) output(ctx context.Context, args ...string) (string, error) {
	out, err := r.run(ctx, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// verifyCommit resolves a revision to a commit id. Returns "" when it does not exist.
func (r gitRunner) verifyCommit(ctx context.Context, rev string) (string, error) {
	sha, err := r.output(ctx, "rev-parse", "-q", "--verify", rev+"^{commit}")
	if exitStatus(err) == 1 {
		return "", nil
	}
	return sha, err
}
