package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/pipeline"
	"github.com/matzehuels/viewport/pkg/watch"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	configPath string   // breakpoint definition file, empty for the default table
	output     string   // output directory for artifacts
	prefix     string   // naming prefix for custom properties and custom media
	scssVar    string   // variable name of the SCSS map
	formats    []string // output formats: "css", "scss", "json", "svg"
	watch      bool     // regenerate when the definition file changes
}

// generateCommand creates the generate command for writing artifacts.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate stylesheet, data, and diagram artifacts",
		Long:  `Generate renders the breakpoint table into one file per requested format, named breakpoints.<format> inside the output directory. With --watch the definition file is monitored and artifacts are regenerated on every change.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.watch && opts.configPath == "" {
				return errors.New(errors.ErrCodeUnsupported, "--watch requires a definition file (--config)")
			}
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "breakpoint definition file (toml, yaml, or json)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): css (default), scss, json, svg (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().StringVar(&opts.prefix, "prefix", pipeline.DefaultPrefix, "naming prefix for custom properties and custom media")
	cmd.Flags().StringVar(&opts.scssVar, "scss-var", pipeline.DefaultSCSSVar, "variable name of the SCSS map")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "regenerate when the definition file changes")

	return cmd
}

// runGenerate performs one generation pass and, with --watch, keeps
// regenerating until the context is cancelled.
func (c *CLI) runGenerate(ctx context.Context, w io.Writer, opts *generateOpts) error {
	pipeOpts := pipeline.Options{
		ConfigPath: opts.configPath,
		Formats:    opts.formats,
		Prefix:     opts.prefix,
		SCSSVar:    opts.scssVar,
	}
	runner := pipeline.NewRunner(loggerFromContext(ctx))

	if err := generateOnce(ctx, w, runner, pipeOpts, opts.output); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watchGenerate(ctx, w, runner, pipeOpts, opts.output)
}

// generateOnce runs the pipeline and writes one artifact file per format
// into dir.
func generateOnce(ctx context.Context, w io.Writer, runner *pipeline.Runner, opts pipeline.Options, dir string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating output directory %s", dir)
	}

	for _, format := range opts.Formats {
		path := filepath.Join(dir, "breakpoints."+format)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "writing %s", path)
		}
		printFile(w, path)
	}
	printDetail(w, "%d tiers · prefix %s", result.Stats.TierCount, result.Prefix)
	printSuccess(w, "Generated %d artifact(s)", len(opts.Formats))

	prog.done(fmt.Sprintf("Completed generation for %d tiers", result.Stats.TierCount))
	return nil
}

// watchGenerate monitors the definition file and regenerates artifacts on
// every change until ctx is cancelled. Regeneration failures are logged
// rather than fatal so a syntax error mid-edit does not stop the watch.
func watchGenerate(ctx context.Context, w io.Writer, runner *pipeline.Runner, opts pipeline.Options, dir string) error {
	logger := loggerFromContext(ctx)

	watcher, err := watch.New(opts.ConfigPath, func(path string) {
		logger.Info("definition changed", "path", path)
		if err := generateOnce(ctx, w, runner, opts, dir); err != nil {
			logger.Error("regeneration failed", "err", err)
		}
	}, watch.WithErrorHandler(func(err error) {
		logger.Error("watch error", "err", err)
	}))
	if err != nil {
		return err
	}
	defer watcher.Close()

	printInfo(w, "Watching %s (ctrl-c to stop)", opts.ConfigPath)
	<-ctx.Done()
	return ctx.Err()
}
