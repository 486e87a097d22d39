// Package config loads breakpoint table definitions from TOML, YAML or
// JSON files, turning project-specific tier declarations into validated
// [breakpoint.Table] values.
//
// A definition file carries a name→minimum-width map plus optional epsilon
// and artifact-prefix settings:
//
//	epsilon = 0.02
//	prefix  = "bp"
//
//	[breakpoints]
//	phone   = 0
//	tablet  = 768
//	desktop = 1200
//
// Map order is irrelevant: entries are sorted by minimum width (name as
// tie-break) before table validation, so equivalent files in any of the
// three formats produce identical tables.
//
// [breakpoint.Table]: github.com/matzehuels/viewport/pkg/breakpoint
package config

import (
	"cmp"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/errors"
)

// Format identifies a definition-file encoding.
type Format string

// Supported definition-file formats.
const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// DetectFormat maps a file path to its definition format by extension
// (.toml, .yaml, .yml, .json). Unknown extensions are reported with code
// [errors.ErrCodeInvalidFormat].
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unsupported definition format %q (want .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Definition is the decoded form of a breakpoint definition file.
type Definition struct {
	// Epsilon overrides the sub-pixel boundary margin. Omitted or zero
	// means the default (0.02).
	Epsilon float64 `toml:"epsilon" yaml:"epsilon" json:"epsilon,omitempty"`

	// Prefix names the CSS artifact prefix ("bp" in --bp-md). Optional.
	Prefix string `toml:"prefix" yaml:"prefix" json:"prefix,omitempty"`

	// Breakpoints maps tier names to minimum viewport widths in CSS pixels.
	Breakpoints map[string]float64 `toml:"breakpoints" yaml:"breakpoints" json:"breakpoints"`
}

// Load reads and decodes the definition file at path, detecting the format
// from the extension. Missing files are reported with code
// [errors.ErrCodeFileNotFound], unreadable or undecodable content with
// [errors.ErrCodeInvalidDefinition].
func Load(path string) (*Definition, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "definition file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "reading %s", path)
	}

	return Parse(data, format)
}

// Parse decodes definition data in the given format. Decode failures are
// reported with code [errors.ErrCodeInvalidDefinition].
func Parse(data []byte, format Format) (*Definition, error) {
	var def Definition
	var err error

	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &def)
	case FormatYAML:
		err = yaml.Unmarshal(data, &def)
	case FormatJSON:
		err = json.Unmarshal(data, &def)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported definition format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDefinition, err, "decoding %s definition", format)
	}

	if len(def.Breakpoints) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDefinition, "definition declares no breakpoints")
	}
	if err := errors.ValidatePrefix(def.Prefix); err != nil {
		return nil, err
	}
	return &def, nil
}

// Entries returns the definition's breakpoints as ordered table entries,
// sorted by minimum width with the name as tie-break.
func (d *Definition) Entries() []breakpoint.Entry {
	entries := make([]breakpoint.Entry, 0, len(d.Breakpoints))
	for name, min := range d.Breakpoints {
		entries = append(entries, breakpoint.Entry{Name: name, MinWidth: min})
	}
	slices.SortFunc(entries, func(a, b breakpoint.Entry) int {
		if a.MinWidth != b.MinWidth {
			return cmp.Compare(a.MinWidth, b.MinWidth)
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return entries
}

// Table builds the validated breakpoint table the definition describes.
// Table invariant violations carry the codes documented on
// [breakpoint.New].
func (d *Definition) Table() (*breakpoint.Table, error) {
	var opts []breakpoint.Option
	if d.Epsilon != 0 {
		opts = append(opts, breakpoint.WithEpsilon(d.Epsilon))
	}
	return breakpoint.New(d.Entries(), opts...)
}
