package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/config"
	"github.com/matzehuels/viewport/pkg/observability"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the logger - it doesn't store
// pipeline results. Multiple goroutines can safely use the same Runner
// with different options, which is what the CLI's watch mode does on
// every definition change.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner with the given logger.
// If logger is nil, the default logger is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete load → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}
	hooks := observability.Pipeline()

	// Stage 1: Load
	loadStart := time.Now()
	hooks.OnLoadStart(ctx, opts.ConfigPath)
	table, prefix, err := r.Load(opts)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		hooks.OnLoadComplete(ctx, opts.ConfigPath, 0, result.Stats.LoadTime, err)
		return nil, err
	}
	result.Table = table
	result.Prefix = prefix
	result.Stats.TierCount = table.Len()
	hooks.OnLoadComplete(ctx, opts.ConfigPath, table.Len(), result.Stats.LoadTime, nil)

	r.Logger.Info("loaded breakpoints",
		"tiers", table.Len(),
		"epsilon", table.Epsilon(),
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)
	artifacts, err := r.Render(table, prefix, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	hooks.OnRenderComplete(ctx, opts.Formats, result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts

	r.Logger.Info("rendered artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Load resolves the breakpoint table for the options and the naming
// prefix to use in generated artifacts. Precedence: a preloaded table
// beats the config file, which beats the built-in defaults. A prefix
// from the definition file applies unless the options carry a
// non-default prefix.
func (r *Runner) Load(opts Options) (*breakpoint.Table, string, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, "", err
	}

	if opts.Table != nil {
		return opts.Table, opts.Prefix, nil
	}
	if opts.ConfigPath == "" {
		opts.Logger.Debug("using built-in default table")
		return breakpoint.Default(), opts.Prefix, nil
	}

	def, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, "", err
	}
	table, err := def.Table()
	if err != nil {
		return nil, "", err
	}
	opts.Logger.Debug("loaded definition", "path", opts.ConfigPath, "tiers", table.Len())

	prefix := opts.Prefix
	if def.Prefix != "" && prefix == DefaultPrefix {
		prefix = def.Prefix
	}
	return table, prefix, nil
}

// Render generates all requested formats from the table.
func (r *Runner) Render(table *breakpoint.Table, prefix string, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = opts.Prefix
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(table, format, prefix, opts.SCSSVar)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
