// Package harness provides utilities for integration testing the git-statusline CLI.
// It handles binary compilation, environment isolation, git fixtures and command execution.
//
// Environment variables managed:
//   - GIT_STATUSLINE_HOME: Isolated per test (temp directory)
//   - GIT_STATUSLINE_DEBUG: Disabled to reduce noise
//   - STATUSLINE_DISABLE, NO_COLOR, GIT_STATUSLINE_BACKEND: Cleared unless set by the test
package harness
