package theme

// Glyph names, also used as keys of the symbols and colors settings
const (
	GlyphAhead      = "ahead"
	GlyphBehind     = "behind"
	GlyphBranch     = "branch"
	GlyphClean      = "clean"
	GlyphConflicted = "conflicted"
	GlyphDeleted    = "deleted"
	GlyphModified   = "modified"
	GlyphNew        = "new"
	GlyphUntracked  = "untracked"
)

// GlyphNames lists every glyph in display order
var GlyphNames = []string{
	GlyphBranch,
	GlyphAhead,
	GlyphBehind,
	GlyphClean,
	GlyphNew,
	GlyphModified,
	GlyphDeleted,
	GlyphUntracked,
	GlyphConflicted,
}

// DefaultSymbols are the Powerline-compatible prompt glyphs
var DefaultSymbols = map[string]string{
	GlyphAhead:      "↑",
	GlyphBehind:     "↓",
	GlyphBranch:     "",
	GlyphClean:      "✓",
	GlyphConflicted: "!",
	GlyphDeleted:    "-",
	GlyphModified:   "*",
	GlyphNew:        "+",
	GlyphUntracked:  "+",
}

// DefaultColors maps glyphs to their foreground color. Divergence arrows are plain.
var DefaultColors = map[string]Color{
	GlyphBranch:     ColorBranchGlyph,
	GlyphClean:      ColorClean,
	GlyphConflicted: ColorConflicted,
	GlyphDeleted:    ColorDeleted,
	GlyphModified:   ColorModified,
	GlyphNew:        ColorNew,
	GlyphUntracked:  ColorUntracked,
}
