// Package scale renders breakpoint tables as SVG rulers.
//
// # Overview
//
// [Render] draws a horizontal scale for a [breakpoint.Table]: each tier
// becomes a colored band starting at its minimum width, with a tick and
// pixel label at every band edge. The widest tier has no upper bound, so
// its band runs to the right margin.
//
// Basic usage:
//
//	data, err := scale.Render(breakpoint.Default(),
//	    scale.WithWidth(1200),
//	    scale.WithTitle("Site breakpoints"),
//	)
//
// # Options
//
//   - [WithWidth], [WithHeight]: canvas dimensions in pixels
//   - [WithMaxWidth]: right edge of the ruler in CSS pixels
//   - [WithTitle]: SVG document title
//
// Output is deterministic: the same table and options always produce the
// same bytes, so renders can be diffed or checked into version control.
//
// [breakpoint.Table]: github.com/matzehuels/viewport/pkg/breakpoint.Table
// [breakpoint.Default]: github.com/matzehuels/viewport/pkg/breakpoint.Default
package scale
