package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/0xADD1E/git-statusline/internal/domain"
	"github.com/0xADD1E/git-statusline/internal/theme"
)

// Format selects the output encoding
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// Options configures a Renderer
type Options struct {
	Colors    map[string]string // Color overrides by glyph name
	Format    Format
	HideFiles bool // Suppress the file status segment
	NoColor   bool
	Shell     Shell
	Symbols   map[string]string // Symbol overrides by glyph name
}

// Renderer writes a status summary as a prompt segment
type Renderer struct {
	opts    Options
	styles  theme.Styles
	symbols map[string]string
}

// GlyphNames returns the names accepted by the symbols and colors settings
func GlyphNames() []string {
	return append([]string(nil), theme.GlyphNames...)
}

// NewRenderer creates a Renderer. The color profile is forced because prompt
// output is captured through a pipe and never looks like a terminal.
func NewRenderer(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.Shell == "" {
		opts.Shell = ShellNone
	}

	lr := lipgloss.NewRenderer(io.Discard)
	if opts.NoColor {
		lr.SetColorProfile(termenv.Ascii)
	} else {
		lr.SetColorProfile(termenv.ANSI256)
	}

	symbols := make(map[string]string, len(theme.DefaultSymbols))
	for name, symbol := range theme.DefaultSymbols {
		symbols[name] = symbol
	}
	for name, symbol := range opts.Symbols {
		symbols[name] = symbol
	}

	return &Renderer{
		opts:    opts,
		styles:  theme.NewStyles(lr, opts.Colors),
		symbols: symbols,
	}
}

// Render writes summary to w. A nil summary (no repository) writes nothing.
func (r *Renderer) Render(w io.Writer, summary *domain.StatusSummary) error {
	if summary == nil {
		return nil
	}

	var out string
	switch r.opts.Format {
	case FormatJSON:
		data, err := marshalSummary(summary, r.opts.HideFiles)
		if err != nil {
			return err
		}
		out = string(data) + "\n"
	case FormatText:
		out = escapeForShell(r.opts.Shell, r.Text(summary))
	default:
		return fmt.Errorf("unknown format '%s'", r.opts.Format)
	}

	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}

// Text returns the styled prompt segment without shell escaping.
// Every segment is followed by a space so a prompt can be appended directly.
func (r *Renderer) Text(summary *domain.StatusSummary) string {
	var segments []string

	if summary.Branch.Known() {
		segments = append(segments, "on", r.glyph(theme.GlyphBranch), r.styles.BranchName.Render(summary.Branch.Name))
	}

	if summary.Divergence.Available() {
		segments = append(segments,
			r.glyph(theme.GlyphAhead)+strconv.Itoa(summary.Divergence.Ahead),
			r.glyph(theme.GlyphBehind)+strconv.Itoa(summary.Divergence.Behind))
	}

	if !r.opts.HideFiles {
		for _, entry := range summary.Entries {
			segments = append(segments, r.entry(entry))
		}
	}

	if len(segments) == 0 {
		return ""
	}
	return strings.Join(segments, " ") + " "
}

func (r *Renderer) entry(entry domain.StatusEntry) string {
	if entry.Kind == domain.KindClean {
		return r.glyph(theme.GlyphClean)
	}
	return r.glyph(string(entry.Kind)) + strconv.Itoa(entry.Count)
}

func (r *Renderer) glyph(name string) string {
	return r.styles.Glyphs[name].Render(r.symbols[name])
}
