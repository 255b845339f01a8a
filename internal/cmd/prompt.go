package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/0xADD1E/git-statusline/internal/config"
	"github.com/0xADD1E/git-statusline/internal/logging"
	"github.com/0xADD1E/git-statusline/internal/paths"
	"github.com/0xADD1E/git-statusline/internal/render"
)

// PromptCmd prints the status line
type PromptCmd struct {
	Backend   string        `help:"Repository backend" enum:"gogit,git" default:"gogit" env:"GIT_STATUSLINE_BACKEND"`
	Format    string        `help:"Output format" enum:"text,json" default:"text"`
	HideFiles bool          `help:"Hide the file status segment (also enabled by a non-empty $STATUSLINE_DISABLE)"`
	NoColor   bool          `help:"Disable colors (also enabled by a non-empty $NO_COLOR)"`
	Path      string        `help:"Directory to inspect" short:"C" default:"."`
	Shell     string        `help:"Mark escape sequences for a shell prompt" enum:"none,bash,zsh" default:"none"`
	Timeout   time.Duration `help:"Time limit for the ahead/behind lookup and each git process (0 = none)" default:"2s"`

	Stdout io.Writer `kong:"-"`

	explicit map[string]bool // flags given on the command line
}

// AfterApply records which flags were given on the command line so that
// settings never override them, even when they repeat the default
func (p *PromptCmd) AfterApply(kctx *kong.Context) error {
	for _, path := range kctx.Path {
		if path.Flag == nil || path.Resolved {
			continue
		}
		if p.explicit == nil {
			p.explicit = make(map[string]bool)
		}
		p.explicit[path.Flag.Name] = true
	}
	return nil
}

// Run executes the prompt command
func (p *PromptCmd) Run(cli *CLI) error {
	settings := cli.Settings()
	if err := settings.Validate(render.GlyphNames()); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	p.applySettings(settings)

	container, err := NewContainer(p.Backend, p.Timeout)
	if err != nil {
		return err
	}

	path := paths.ExpandPath(p.Path)
	summary, err := container.StatusService.Summarize(context.Background(), path)
	if err != nil {
		return err
	}
	if summary == nil {
		return nil
	}

	opts := p.renderOptions(settings)
	logging.Logger.Debug("Rendering prompt",
		"format", opts.Format,
		"shell", opts.Shell,
		"hide_files", opts.HideFiles,
		"no_color", opts.NoColor)

	out := p.Stdout
	if out == nil {
		out = os.Stdout
	}
	return render.NewRenderer(opts).Render(out, summary)
}

// applySettings fills flags not given on the command line from settings.json,
// unless an environment variable already set them
func (p *PromptCmd) applySettings(settings *config.Settings) {
	if !p.explicit["backend"] && settings.Backend != "" {
		if _, hasEnv := os.LookupEnv("GIT_STATUSLINE_BACKEND"); !hasEnv {
			p.Backend = settings.Backend
		}
	}

	if !p.explicit["shell"] && settings.Shell != "" {
		p.Shell = settings.Shell
	}
}

// renderOptions resolves output switches: flags and env vars win over settings
func (p *PromptCmd) renderOptions(settings *config.Settings) render.Options {
	noColor := p.NoColor || os.Getenv("NO_COLOR") != ""
	if !noColor && settings.NoColor != nil {
		noColor = *settings.NoColor
	}

	return render.Options{
		Colors:    settings.Colors,
		Format:    render.Format(p.Format),
		HideFiles: p.HideFiles || os.Getenv("STATUSLINE_DISABLE") != "",
		NoColor:   noColor,
		Shell:     render.Shell(p.Shell),
		Symbols:   settings.Symbols,
	}
}
