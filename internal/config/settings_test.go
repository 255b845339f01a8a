package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGlyphNames = []string{"branch", "clean", "new", "modified"}

func TestLoadSettingsFrom_MissingFile(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.json")
	content := `{
  "backend": "git",
  "debug": true,
  "max_log_files": 5,
  "shell": "zsh",
  "symbols": {"branch": "", "clean": "ok"},
  "colors": {"clean": "10"}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, BackendGit, settings.Backend)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, "zsh", settings.Shell)
	assert.Equal(t, "ok", settings.Symbols["clean"])
	assert.Equal(t, "10", settings.Colors["clean"])
}

func TestLoadSettingsFrom_YAMLFallback(t *testing.T) {
	dir := t.TempDir()
	content := "backend: gogit\nno_color: true\nsymbols:\n  modified: \"~\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(content), 0644))

	settings, err := LoadSettingsFrom(filepath.Join(dir, "settings.json"))

	require.NoError(t, err)
	assert.Equal(t, BackendGoGit, settings.Backend)
	require.NotNil(t, settings.NoColor)
	assert.True(t, *settings.NoColor)
	assert.Equal(t, "~", settings.Symbols["modified"])
}

func TestLoadSettingsFrom_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid settings.json")
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		wantErr  string
	}{
		{"empty", Settings{}, ""},
		{"valid", Settings{Backend: "git", Shell: "bash", Symbols: GlyphConfig{"clean": "ok"}}, ""},
		{"bad backend", Settings{Backend: "libgit2"}, "unknown backend 'libgit2'"},
		{"bad shell", Settings{Shell: "fish"}, "unknown shell 'fish'"},
		{"unknown symbol", Settings{Symbols: GlyphConfig{"sparkle": "*"}}, "unknown symbols entry 'sparkle'"},
		{"empty color", Settings{Colors: GlyphConfig{"new": ""}}, "colors entry for 'new' is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate(testGlyphNames)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
