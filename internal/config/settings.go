package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/0xADD1E/git-statusline/internal/paths"
)

// Backends understood by the prompt command
const (
	BackendGit   = "git"
	BackendGoGit = "gogit"
)

// GlyphConfig maps glyph names (e.g. "branch", "clean") to override values
type GlyphConfig map[string]string

// Validate checks for unknown glyph names and empty values.
// The validNames parameter should come from render.GlyphNames().
func (g GlyphConfig) Validate(section string, validNames []string) error {
	if g == nil {
		return nil
	}

	// Sorted so the first reported error is stable
	names := make([]string, 0, len(g))
	for name := range g {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if !slices.Contains(validNames, name) {
			return fmt.Errorf("unknown %s entry '%s'", section, name)
		}
		if g[name] == "" {
			return fmt.Errorf("%s entry for '%s' is empty", section, name)
		}
	}

	return nil
}

// Settings represents the structure of ~/.git-statusline/settings.json
type Settings struct {
	Backend     string      `json:"backend,omitempty" yaml:"backend,omitempty"`
	Colors      GlyphConfig `json:"colors,omitempty" yaml:"colors,omitempty"`
	Debug       *bool       `json:"debug,omitempty" yaml:"debug,omitempty"`
	MaxLogFiles *int        `json:"max_log_files,omitempty" yaml:"max_log_files,omitempty"`
	NoColor     *bool       `json:"no_color,omitempty" yaml:"no_color,omitempty"`
	Shell       string      `json:"shell,omitempty" yaml:"shell,omitempty"`
	Symbols     GlyphConfig `json:"symbols,omitempty" yaml:"symbols,omitempty"`
}

// Validate checks enum fields and glyph overrides
func (s *Settings) Validate(glyphNames []string) error {
	switch s.Backend {
	case "", BackendGit, BackendGoGit:
	default:
		return fmt.Errorf("unknown backend '%s' (expected %s or %s)", s.Backend, BackendGoGit, BackendGit)
	}

	switch s.Shell {
	case "", "none", "bash", "zsh":
	default:
		return fmt.Errorf("unknown shell '%s' (expected none, bash or zsh)", s.Shell)
	}

	if err := s.Symbols.Validate("symbols", glyphNames); err != nil {
		return err
	}
	return s.Colors.Validate("colors", glyphNames)
}

// LoadSettings loads settings from $GIT_STATUSLINE_HOME/settings.json, falling back
// to settings.yaml or settings.yml in the same directory.
// Returns empty Settings if no file exists (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific JSON path with the same YAML fallback
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		var settings Settings
		if err := json.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
		}
		return &settings, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	dir := filepath.Dir(path)
	for _, name := range []string{"settings.yaml", "settings.yml"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}

		var settings Settings
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return nil, fmt.Errorf("invalid %s: %w", name, err)
		}
		return &settings, nil
	}

	return &Settings{}, nil // Not an error, use defaults
}
