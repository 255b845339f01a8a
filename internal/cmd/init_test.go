package cmd

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitSnippet(t *testing.T) {
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"PROMPT_COMMAND", "/usr/local/bin/git-statusline prompt --shell bash", "PS1='${__git_statusline_out}'"}},
		{"zsh", []string{"add-zsh-hook precmd", "/usr/local/bin/git-statusline prompt --shell zsh", "PROMPT='${__git_statusline_out}'"}},
		{"fish", []string{"function fish_prompt", "/usr/local/bin/git-statusline prompt 2>/dev/null"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			snippet, err := initSnippet(tt.shell, "/usr/local/bin/git-statusline")

			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, snippet, s)
			}
		})
	}
}

func TestInitSnippet_UnsupportedShell(t *testing.T) {
	_, err := initSnippet("tcsh", "git-statusline")

	assert.Error(t, err)
}

func TestShellQuote(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/usr/bin/git-statusline", "/usr/bin/git-statusline"},
		{"/Users/me/My Tools/git-statusline", "'/Users/me/My Tools/git-statusline'"},
		{"/tmp/it's", `'/tmp/it'\''s'`},
		{"", "''"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shellQuote(tt.input))
		})
	}
}

func TestInitCmd_Run(t *testing.T) {
	var out bytes.Buffer

	require.NoError(t, (&InitCmd{Shell: "zsh", Stdout: &out}).Run())

	assert.Contains(t, out.String(), "prompt --shell zsh")
}

func TestInitSnippet_BashKeepsOutputLiteral(t *testing.T) {
	bash, err := exec.LookPath("bash")
	if err != nil {
		t.Skip("bash not available")
	}

	// Stand-in binary printing shell syntax, as a hostile branch name would
	line := "on $(echo INJECTED) `echo INJECTED` \\w "
	fake := filepath.Join(t.TempDir(), "fake-statusline")
	script := "#!/bin/sh\nprintf '%s' '" + strings.ReplaceAll(line, "'", `'\''`) + "'\n"
	require.NoError(t, os.WriteFile(fake, []byte(script), 0755))

	snippet, err := initSnippet("bash", fake)
	require.NoError(t, err)

	cmd := exec.Command(bash, "--norc", "--noprofile", "-c",
		`PS1='$ '; eval "$1"; __git_statusline_update; printf '%s' "${PS1@P}"`, "bash", snippet)
	out, err := cmd.CombinedOutput()
	if err != nil && strings.Contains(string(out), "bad substitution") {
		t.Skip("bash is too old to expand prompts with ${PS1@P}")
	}
	require.NoError(t, err, string(out))

	assert.Equal(t, line+"$ ", string(out))
}
