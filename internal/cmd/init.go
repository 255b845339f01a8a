package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const (
	// The status line is read through ${__git_statusline_out} so branch
	// names are never parsed as shell code while the prompt is expanded.
	bashSnippet = `# git-statusline prompt integration
shopt -s promptvars
__git_statusline_ps1="${__git_statusline_ps1:-$PS1}"
__git_statusline_update() {
    __git_statusline_out="$(%[1]s prompt --shell bash 2>/dev/null)"
    PS1='${__git_statusline_out}'"${__git_statusline_ps1}"
}
case ";${PROMPT_COMMAND};" in
    *";__git_statusline_update;"*) ;;
    *) PROMPT_COMMAND="__git_statusline_update${PROMPT_COMMAND:+;$PROMPT_COMMAND}" ;;
esac
`

	zshSnippet = `# git-statusline prompt integration
autoload -Uz add-zsh-hook
setopt prompt_subst
typeset -g __git_statusline_ps1="${__git_statusline_ps1:-$PROMPT}"
__git_statusline_update() {
    typeset -g __git_statusline_out="$(%[1]s prompt --shell zsh 2>/dev/null)"
    PROMPT='${__git_statusline_out}'"${__git_statusline_ps1}"
}
add-zsh-hook precmd __git_statusline_update
`

	fishSnippet = `# git-statusline prompt integration
if not functions -q __git_statusline_original_prompt
    functions -c fish_prompt __git_statusline_original_prompt
end
function fish_prompt
    %[1]s prompt 2>/dev/null
    __git_statusline_original_prompt
end
`
)

// InitCmd prints the shell integration snippet
type InitCmd struct {
	Shell string `arg:"" help:"Shell to integrate with" enum:"bash,zsh,fish"`

	Stdout io.Writer `kong:"-"`
}

// Run executes the init command
func (i *InitCmd) Run() error {
	// Get the path of the running binary so the prompt works without PATH changes
	binary, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get git-statusline binary path: %w", err)
	}

	snippet, err := initSnippet(i.Shell, binary)
	if err != nil {
		return err
	}

	out := i.Stdout
	if out == nil {
		out = os.Stdout
	}
	_, err = io.WriteString(out, snippet)
	return err
}

// initSnippet renders the integration snippet for a shell
func initSnippet(shell, binary string) (string, error) {
	switch shell {
	case "bash":
		return fmt.Sprintf(bashSnippet, shellQuote(binary)), nil
	case "zsh":
		return fmt.Sprintf(zshSnippet, shellQuote(binary)), nil
	case "fish":
		return fmt.Sprintf(fishSnippet, shellQuote(binary)), nil
	default:
		return "", fmt.Errorf("unsupported shell '%s' (expected bash, zsh or fish)", shell)
	}
}

// shellQuote single-quotes s for POSIX shells and fish
func shellQuote(s string) string {
	if s != "" && strings.IndexFunc(s, needsQuoting) < 0 {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

func needsQuoting(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return false
	case strings.ContainsRune("/._-+", r):
		return false
	default:
		return true
	}
}
