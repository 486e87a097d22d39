// Package cli implements the viewport command-line interface.
//
// This package provides commands for inspecting breakpoint tables, resolving
// tier boundaries into media query expressions, generating stylesheet and
// data artifacts, and classifying viewport widths. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - list: Show the tiers of a breakpoint table
//   - resolve: Resolve one tier's boundaries and media query expressions
//   - generate: Write CSS, SCSS, JSON, or SVG artifacts, optionally watching
//     the definition file for changes
//   - tier: Classify a viewport width, or the terminal, into a tier
//   - preview: Interactively simulate viewport widths
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/viewport/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/buildinfo"
	"github.com/matzehuels/viewport/pkg/mediaquery"
	"github.com/matzehuels/viewport/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for the root command and display.
const appName = "viewport"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The CLI's logger is attached to the command context and accessible to all
// commands via loggerFromContext.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Viewport resolves breakpoint tables into media query boundaries",
		Long:         `Viewport is a CLI tool for working with viewport breakpoint tables: it resolves tier boundaries into media query expressions and generates CSS, SCSS, JSON, and SVG artifacts from a definition file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.listCommand())
	root.AddCommand(c.resolveCommand())
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.tierCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Table Loading
// =============================================================================

// loadTable resolves the breakpoint table and artifact prefix for a command:
// the definition file when configPath is set, the built-in defaults otherwise.
func (c *CLI) loadTable(configPath string) (*breakpoint.Table, string, error) {
	runner := pipeline.NewRunner(c.Logger)
	return runner.Load(pipeline.Options{ConfigPath: configPath})
}

// =============================================================================
// Formatting Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// If empty, defaults to ["css"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatCSS}
	}
	return strings.Split(s, ",")
}

// exprOrAll renders a range as a media feature expression, or "all" when
// the range is unconditional.
func exprOrAll(r breakpoint.Range) string {
	if expr := mediaquery.Expr(r); expr != "" {
		return expr
	}
	return "all"
}
