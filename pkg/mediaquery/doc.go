// Package mediaquery renders breakpoint ranges as CSS media-query text
// and emits whole tables as stylesheet artifacts.
//
// # Overview
//
// The [breakpoint] package computes {min, max} boundary pairs; this
// package turns them into the strings stylesheets need. Three layers:
//
//   - Expressions: [FormatPx], [MinWidth], [MaxWidth], [Expr] and [Media]
//     render a single boundary or range.
//   - Conditional blocks: [Wrap] and [Block] scope a body of rules to a
//     range, writing it inside an @media block, or bare when the range is
//     fully unbounded. That bare path matters: rules for the smallest tier
//     apply unconditionally and must not be wrapped at all.
//   - Stylesheets: [WriteCustomProperties], [WriteCustomMedia] and
//     [WriteSCSSMap] emit a whole table in formats downstream tooling
//     consumes.
//
// [Builder] binds the block helpers to a table, giving the four classic
// scoping operations (up, down, between, only) as one-call methods.
//
// # Example
//
//	b := mediaquery.NewBuilder(nil) // default table
//	css, err := b.OnlyBlock("md", ".nav { display: flex; }")
//	// @media (min-width: 768px) and (max-width: 991.98px) {
//	//   .nav { display: flex; }
//	// }
//
// All functions are pure and safe for concurrent use.
//
// [breakpoint]: github.com/matzehuels/viewport/pkg/breakpoint
package mediaquery
