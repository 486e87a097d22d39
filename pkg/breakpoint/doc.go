// Package breakpoint provides an ordered table of named viewport-width
// tiers and the arithmetic that turns tier names into media-query
// boundaries.
//
// # Overview
//
// Responsive style sheets scope rules to viewport-width windows. This
// package holds the canonical mapping from tier name to minimum width
// (xs 0, sm 576, md 768, lg 992, xl 1200, xxl 1400 by default) and derives
// the boundary values those windows need: lower edges, upper edges one
// epsilon below the next tier, and {min, max} ranges for "this tier and
// up", "below this tier", "between two tiers" and "only this tier".
//
// The epsilon subtraction (0.02px by default) keeps two adjacent ranges
// from both matching the exact boundary pixel on engines that report
// fractional viewport widths.
//
// # Basic Usage
//
// Obtain the shared standard table with [Default], or build a custom one
// with [New]:
//
//	t := breakpoint.Default()
//	r, err := t.RangeOnly("md")
//	if err != nil {
//	    // unknown tier name
//	}
//	// r == Range{Min: Px(768), Max: Px(991.98)}
//
// Custom tables supply their own tiers, smallest first, starting at 0:
//
//	t, err := breakpoint.New([]breakpoint.Entry{
//	    {Name: "phone", MinWidth: 0},
//	    {Name: "tablet", MinWidth: 600},
//	    {Name: "desktop", MinWidth: 1024},
//	})
//
// # Boundary Semantics
//
// Boundaries follow the conventions of media-query authoring:
//
//   - [Table.MinBoundary] is the tier's minimum width, unbounded when
//     that width is 0.
//   - [Table.MaxBoundary] is the tier's minimum width minus epsilon, the
//     exclusive upper edge of the band below it. It is unbounded for the
//     smallest and largest tiers.
//   - Range operations degrade gracefully at the table's ends rather than
//     emit half-open nonsense: [Table.RangeBetween] falls back to an
//     up-range or down-range when one side is unbounded, and
//     [Table.RangeOnly] of the largest tier equals [Table.RangeUp]. The
//     tier just below the largest degrades the same way, since its cap
//     would come from the largest tier's unbounded upper edge.
//
// Every operation that accepts a tier name reports
// [errors.UnknownBreakpointError] for names absent from the table.
//
// # Concurrency
//
// Tables are immutable after construction and safe for any number of
// concurrent readers without locking. All operations are pure: the same
// inputs always produce identical results.
//
// # Related Packages
//
// The [mediaquery] package renders the ranges produced here as CSS
// media-query text, and [config] loads custom tables from definition
// files.
//
// [errors.UnknownBreakpointError]: github.com/matzehuels/viewport/pkg/errors
// [mediaquery]: github.com/matzehuels/viewport/pkg/mediaquery
// [config]: github.com/matzehuels/viewport/pkg/config
package breakpoint
