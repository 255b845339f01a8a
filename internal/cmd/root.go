package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/0xADD1E/git-statusline/internal/config"
	"github.com/0xADD1E/git-statusline/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Prompt PromptCmd `cmd:"" help:"Print the status line for the current repository (default)" default:"withargs"`
	Init   InitCmd   `cmd:"init" help:"Print a shell snippet that adds the status line to the prompt"`

	// Internal fields (not flags)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Apply settings with proper precedence: CLI flags > env vars > settings.json > defaults
	// Only apply if flag is at default value and env var is not set
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("GIT_STATUSLINE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GIT_STATUSLINE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if logFilePath != "" {
		logging.Logger.Debug("Logging initialized", "file", logFilePath, "max_log_files", c.MaxLogFiles)
	}

	return nil
}
