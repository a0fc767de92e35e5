// Package cli implements the gitsnitch command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gruns/gitsnitch/pkg/buildinfo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "gitsnitch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogWarn  = log.WarnLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for the command.
//
// Out receives the report and nothing else. Logs, warnings and the
// progress spinner go to Err.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer
	Err    io.Writer
}

// New creates a new CLI instance with a default logger writing to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the gitsnitch command.
func (c *CLI) RootCommand() *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   appName + " <usernameOrProfileUrl>",
		Short: "Gitsnitch lists who commits to a GitHub user's repositories",
		Long: `Gitsnitch lists the people committing to a GitHub user's repositories.

For up to ten of the user's repositories (originals before forks) it prints
the top committers by commit count, with their email address and the date
of their latest commit. GitHub noreply and *.local addresses are skipped.

Set GITHUB_TOKEN to raise the GitHub API rate limit.`,
		Example: `  gitsnitch gruns
  gitsnitch https://github.com/gruns
  gitsnitch --format table --max-repos 5 gruns`,
		Version:       buildinfo.Version,
		Args:          f.validateArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if f.verbose {
				c.SetLogLevel(LogDebug)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.completion != "" {
				return writeCompletion(cmd.Root(), f.completion, c.Out)
			}
			return c.run(cmd, f, args[0])
		},
	}

	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.SetVersionTemplate(buildinfo.Template())
	f.register(root)

	return root
}
