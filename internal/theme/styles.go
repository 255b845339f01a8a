package theme

import "github.com/charmbracelet/lipgloss"

// Styles holds the prompt styles bound to one lipgloss renderer
type Styles struct {
	BranchName lipgloss.Style
	Glyphs     map[string]lipgloss.Style
}

// NewStyles builds bold glyph styles for r. overrides replaces colors by glyph name.
func NewStyles(r *lipgloss.Renderer, overrides map[string]string) Styles {
	styles := Styles{
		BranchName: r.NewStyle().
			Bold(true).
			Foreground(ColorBranchName),
		Glyphs: make(map[string]lipgloss.Style, len(GlyphNames)),
	}

	for _, name := range GlyphNames {
		color := DefaultColors[name]
		if override, ok := overrides[name]; ok {
			color = Color(override)
		}

		style := r.NewStyle()
		if color != "" {
			style = style.Bold(true).Foreground(color)
		}
		styles.Glyphs[name] = style
	}

	return styles
}
