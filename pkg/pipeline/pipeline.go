// Package pipeline provides the load → render pipeline for breakpoint
// artifacts.
//
// This package implements the complete flow from a definition file (or
// the built-in defaults) to generated stylesheet, data, and image
// artifacts. Centralizing it here keeps the CLI's one-shot and watch
// modes, and any embedding program, on identical behavior.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Read and validate the breakpoint definition, producing an
//     immutable table.
//  2. Render: Generate each requested output format from the table.
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(logger)
//	opts := pipeline.Options{
//	    ConfigPath: "breakpoints.toml",
//	    Formats:    []string{"css", "json"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	css := result.Artifacts["css"]
package pipeline

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/errors"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Embedders
// =============================================================================

const (
	// DefaultPrefix names generated custom properties and custom media
	// (--bp-md, --bp-md-up). A definition file may override it.
	DefaultPrefix = "bp"

	// DefaultSCSSVar is the variable name of the generated SCSS map.
	DefaultSCSSVar = "breakpoints"
)

// Format constants for output formats.
const (
	FormatCSS  = "css"
	FormatSCSS = "scss"
	FormatJSON = "json"
	FormatSVG  = "svg"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatCSS:  true,
	FormatSCSS: true,
	FormatJSON: true,
	FormatSVG:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for embedding in request
// payloads or job queues.
type Options struct {
	// Load options
	ConfigPath string `json:"config_path,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Prefix  string   `json:"prefix,omitempty"`
	SCSSVar string   `json:"scss_var,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger       `json:"-"`
	Table  *breakpoint.Table `json:"-"` // preloaded table, skips ConfigPath

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Table is the loaded breakpoint table.
	Table *breakpoint.Table

	// Prefix is the resolved naming prefix after option and definition
	// file precedence is applied.
	Prefix string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TierCount  int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: %s)", format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatNames returns the supported formats in stable order.
func FormatNames() []string {
	return []string{FormatCSS, FormatSCSS, FormatJSON, FormatSVG}
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatCSS}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Prefix == "" {
		o.Prefix = DefaultPrefix
	}
	if err := errors.ValidatePrefix(o.Prefix); err != nil {
		return err
	}

	if o.SCSSVar == "" {
		o.SCSSVar = DefaultSCSSVar
	}
	if err := errors.ValidateName(o.SCSSVar); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	o.validated = true
	return nil
}

// Wants reports whether format is among the requested output formats.
func (o *Options) Wants(format string) bool {
	for _, f := range o.Formats {
		if f == format {
			return true
		}
	}
	return false
}
