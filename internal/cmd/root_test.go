package cmd

import (
	"os"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xADD1E/git-statusline/internal/config"
)

func parse(t *testing.T, cli *CLI, args ...string) *kong.Context {
	t.Helper()
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Bind(cli))
	require.NoError(t, err)
	ctx, err := parser.Parse(args)
	require.NoError(t, err)
	return ctx
}

// unsetenv removes key for the duration of the test
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestCLI_DefaultCommandIsPrompt(t *testing.T) {
	unsetenv(t, "GIT_STATUSLINE_BACKEND")
	t.Setenv("GIT_STATUSLINE_HOME", t.TempDir())

	var cli CLI
	ctx := parse(t, &cli, "--format", "json", "-C", "/tmp")

	assert.Equal(t, "prompt", ctx.Command())
	assert.Equal(t, "json", cli.Prompt.Format)
	assert.Equal(t, "/tmp", cli.Prompt.Path)
	assert.Equal(t, config.BackendGoGit, cli.Prompt.Backend)
	assert.Equal(t, "none", cli.Prompt.Shell)
}

func TestCLI_InitCommand(t *testing.T) {
	unsetenv(t, "GIT_STATUSLINE_BACKEND")
	t.Setenv("GIT_STATUSLINE_HOME", t.TempDir())

	var cli CLI
	ctx := parse(t, &cli, "init", "fish")

	assert.Equal(t, "init <shell>", ctx.Command())
	assert.Equal(t, "fish", cli.Init.Shell)
}

func TestCLI_BackendFromEnv(t *testing.T) {
	t.Setenv("GIT_STATUSLINE_BACKEND", "git")
	t.Setenv("GIT_STATUSLINE_HOME", t.TempDir())

	var cli CLI
	parse(t, &cli, "prompt")

	assert.Equal(t, config.BackendGit, cli.Prompt.Backend)
}

func TestCLI_AfterApplySettingsPrecedence(t *testing.T) {
	t.Setenv("GIT_STATUSLINE_HOME", t.TempDir())
	unsetenv(t, "GIT_STATUSLINE_BACKEND")
	unsetenv(t, "GIT_STATUSLINE_DEBUG")
	unsetenv(t, "GIT_STATUSLINE_DEBUG_FILE")
	unsetenv(t, "GIT_STATUSLINE_MAX_LOG_FILES")

	maxLogFiles := 5
	var cli CLI
	cli.SetSettings(&config.Settings{MaxLogFiles: &maxLogFiles})

	parse(t, &cli)

	assert.Equal(t, 5, cli.MaxLogFiles)
	assert.False(t, cli.Debug)
}

func TestCLI_ExplicitShellFlagBeatsSettings(t *testing.T) {
	unsetenv(t, "GIT_STATUSLINE_BACKEND")
	t.Setenv("GIT_STATUSLINE_HOME", t.TempDir())
	settings := &config.Settings{Backend: config.BackendGit, Shell: "bash"}

	var explicit CLI
	parse(t, &explicit, "prompt", "--shell", "none")
	explicit.Prompt.applySettings(settings)

	assert.Equal(t, "none", explicit.Prompt.Shell)
	assert.Equal(t, config.BackendGit, explicit.Prompt.Backend)

	var implicit CLI
	parse(t, &implicit, "prompt")
	implicit.Prompt.applySettings(settings)

	assert.Equal(t, "bash", implicit.Prompt.Shell)
}

func TestCLI_SettingsNeverNil(t *testing.T) {
	var cli CLI

	assert.NotNil(t, cli.Settings())
}
