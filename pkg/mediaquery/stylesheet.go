package mediaquery

import (
	"io"
	"strings"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/errors"
)

// propName builds a CSS custom-property name: "--<prefix>-<name>", or
// "--<name>" when the prefix is empty.
func propName(prefix, name string) string {
	if prefix == "" {
		return "--" + name
	}
	return "--" + prefix + "-" + name
}

// WriteCustomProperties writes the table as CSS custom properties on
// :root, one per tier, carrying the tier's minimum width:
//
//	:root {
//	  --bp-xs: 0px;
//	  --bp-sm: 576px;
//	}
//
// The prefix must be empty or a valid identifier.
func WriteCustomProperties(w io.Writer, t *breakpoint.Table, prefix string) error {
	if err := errors.ValidatePrefix(prefix); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, e := range t.Entries() {
		b.WriteString("  ")
		b.WriteString(propName(prefix, e.Name))
		b.WriteString(": ")
		b.WriteString(FormatPx(e.MinWidth))
		b.WriteString(";\n")
	}
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCustomMedia writes @custom-media rules for every tier's up, down
// and only ranges:
//
//	@custom-media --bp-md-up (min-width: 768px);
//	@custom-media --bp-md-down (max-width: 767.98px);
//	@custom-media --bp-md-only (min-width: 768px) and (max-width: 991.98px);
//
// Unconditional ranges (the smallest tier's up and down, the largest
// tier's down) emit the universal query "all".
func WriteCustomMedia(w io.Writer, t *breakpoint.Table, prefix string) error {
	if err := errors.ValidatePrefix(prefix); err != nil {
		return err
	}

	queryOf := func(r breakpoint.Range) string {
		if expr := Expr(r); expr != "" {
			return expr
		}
		return "all"
	}

	var b strings.Builder
	for _, name := range t.Names() {
		up, err := t.RangeUp(name)
		if err != nil {
			return err
		}
		down, err := t.RangeDown(name)
		if err != nil {
			return err
		}
		only, err := t.RangeOnly(name)
		if err != nil {
			return err
		}

		b.WriteString("@custom-media ")
		b.WriteString(propName(prefix, name) + "-up ")
		b.WriteString(queryOf(up))
		b.WriteString(";\n")

		b.WriteString("@custom-media ")
		b.WriteString(propName(prefix, name) + "-down ")
		b.WriteString(queryOf(down))
		b.WriteString(";\n")

		b.WriteString("@custom-media ")
		b.WriteString(propName(prefix, name) + "-only ")
		b.WriteString(queryOf(only))
		b.WriteString(";\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteSCSSMap writes the table as an SCSS map with a !default guard,
// round-tripping the format responsive frameworks declare their grid
// breakpoints in. Zero widths stay unitless per SCSS convention:
//
//	$breakpoints: (
//	  xs: 0,
//	  sm: 576px
//	) !default;
//
// The variable name must be a valid identifier, without the leading "$".
func WriteSCSSMap(w io.Writer, t *breakpoint.Table, varName string) error {
	if err := errors.ValidateName(varName); err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString("$" + varName + ": (\n")
	entries := t.Entries()
	for i, e := range entries {
		b.WriteString("  ")
		b.WriteString(e.Name)
		b.WriteString(": ")
		if e.MinWidth == 0 {
			b.WriteString("0")
		} else {
			b.WriteString(FormatPx(e.MinWidth))
		}
		if i < len(entries)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString(") !default;\n")

	_, err := io.WriteString(w, b.String())
	return err
}
