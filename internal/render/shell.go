package render

import (
	"regexp"
	"strings"
)

// Shell selects how escape sequences are marked as zero-width
type Shell string

const (
	ShellBash Shell = "bash"
	ShellNone Shell = "none"
	ShellZsh  Shell = "zsh"
)

// ansiSequence matches SGR escape sequences emitted by lipgloss
var ansiSequence = regexp.MustCompile("\x1b\\[[0-9;]*m")

// Readline markers around invisible characters. Unlike \[ \], they still work
// when the prompt text arrives through a variable expanded by promptvars.
const (
	readlineIgnoreStart = "\x01"
	readlineIgnoreEnd   = "\x02"
)

// escapeForShell wraps escape sequences so the shell does not count them
// towards the prompt width. Bash output is meant to be referenced as
// ${var} from PS1 and is never decoded again, so it needs no quoting.
// Zsh applies % escapes to the expanded value, so % is doubled.
func escapeForShell(shell Shell, s string) string {
	switch shell {
	case ShellBash:
		return ansiSequence.ReplaceAllString(s, readlineIgnoreStart+"$0"+readlineIgnoreEnd)
	case ShellZsh:
		s = strings.ReplaceAll(s, "%", "%%")
		return ansiSequence.ReplaceAllString(s, "%{$0%}")
	default:
		return s
	}
}
