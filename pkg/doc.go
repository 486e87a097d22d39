// Package pkg provides the core libraries for the Viewport breakpoint toolkit.
//
// # Overview
//
// Viewport turns an ordered table of named viewport tiers (the familiar
// xs/sm/md/lg/xl/xxl scheme) into exact media-query boundaries and
// generated stylesheet artifacts. The pkg directory is organized into
// four main areas:
//
//  1. [breakpoint] - Domain logic (tier tables, boundary resolution, ranges)
//  2. [mediaquery] - Media-query and stylesheet rendering
//  3. [config] - Definition file decoding (TOML, YAML, JSON)
//  4. [pipeline] - Orchestration (load → resolve → render)
//
// # Architecture
//
// The typical data flow through Viewport:
//
//	Definition File (TOML/YAML/JSON)
//	         ↓
//	    [config] package (decode + validate)
//	         ↓
//	    [breakpoint] package (table + boundary arithmetic)
//	         ↓
//	    [mediaquery] / [scale] packages (expressions, stylesheets, diagrams)
//	         ↓
//	    CSS/SCSS/JSON/SVG output
//
// # Quick Start
//
// Resolve a tier's media-query ranges against the default table:
//
//	import (
//	    "github.com/matzehuels/viewport/pkg/breakpoint"
//	    "github.com/matzehuels/viewport/pkg/mediaquery"
//	)
//
//	// 1. Obtain a table
//	table := breakpoint.Default()
//
//	// 2. Resolve a range
//	only, _ := table.RangeOnly("md")
//
//	// 3. Render it
//	fmt.Println(mediaquery.Media(only))
//	// @media (min-width: 768px) and (max-width: 991.98px)
//
// # Main Packages
//
// [breakpoint] - Ordered tier tables with the boundary arithmetic: min and
// max boundaries, up/down/only/between ranges, width classification, and
// name infixes for tier-scoped identifiers. Tables are immutable and safe
// for concurrent readers.
//
// [mediaquery] - Rendering of boundaries and ranges as media feature
// expressions, plus stylesheet writers for CSS custom properties,
// @custom-media rules, SCSS maps, and mixin-style conditional blocks.
//
// [config] - Definition files in TOML, YAML, or JSON: a breakpoints map,
// optional epsilon, and optional artifact prefix, decoded to a validated
// table regardless of declaration order.
//
// [pipeline] - Complete generation pipeline (load → resolve → render) used
// by the CLI and embedders. Ensures consistent behavior across all entry
// points and reports hook events through [observability].
//
// [scale] - SVG diagram of a table's tiers drawn as bands along a
// horizontal pixel scale.
//
// [term] - Column-based terminal tiers on top of golang.org/x/term, for
// TUI consumers adapting layout to terminal size.
//
// [watch] - Debounced definition-file watching on top of fsnotify,
// rename-safe for editors that save atomically.
//
// [errors] - Structured error codes shared by every package, with the
// UnknownBreakpointError carrying the requested name and the known tiers.
//
// [observability] - Process-wide pipeline and watch hooks for embedders
// that want progress reporting without importing a logging framework.
//
// [buildinfo] - Build-time version information set via ldflags.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                       # All tests
//	go test ./pkg/breakpoint/...            # Specific package
//	go test -run Golden ./pkg/pipeline/...  # Golden artifact tests
//
// [breakpoint]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/breakpoint
// [mediaquery]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/mediaquery
// [config]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/config
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/pipeline
// [scale]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/scale
// [term]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/term
// [watch]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/watch
// [errors]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/viewport/pkg/buildinfo
package pkg
