// Package cli implements the layout command-line interface.
//
// The CLI loads scene documents from TOML files, runs the layout engine over
// them, and prints resolved geometry. It exists to exercise the engine
// outside a host editor: inspecting a scene's solved layout, checking a
// container's hug-content size, and debugging constraint setups.
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "layout",
		Short:        "Solve design-canvas scenes from the command line",
		Long:         `layout loads a scene document (nodes, pin constraints, auto-layout containers) from a TOML file, runs the constraint-based layout engine over it, and prints the resolved geometry.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.minsizeCommand())

	return root
}
