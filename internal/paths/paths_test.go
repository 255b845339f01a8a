package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHome_FromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GIT_STATUSLINE_HOME", dir)

	assert.Equal(t, dir, GetHome())
	assert.Equal(t, filepath.Join(dir, "settings.json"), GetSettingsPath())
}

func TestGetHome_Default(t *testing.T) {
	t.Setenv("GIT_STATUSLINE_HOME", "")
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".git-statusline"), GetHome())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		input    string
		expected string
	}{
		{"~", homeDir},
		{"~/logs/debug.log", filepath.Join(homeDir, "logs", "debug.log")},
		{"/abs/path", "/abs/path"},
		{"relative", "relative"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExpandPath(tt.input))
		})
	}
}
