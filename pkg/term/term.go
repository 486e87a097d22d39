// Package term maps terminal widths onto breakpoint tiers.
//
// Terminals are measured in character columns rather than CSS pixels, so
// this package ships its own default table (compact, standard, wide,
// ultrawide) with a whole-column epsilon. [Width] and [Tier] detect the
// current terminal size via golang.org/x/term, falling back to the
// conventional 80 columns when the output is not a terminal.
package term

import (
	"io"
	"os"

	xterm "golang.org/x/term"

	"github.com/matzehuels/viewport/pkg/breakpoint"
)

// FallbackColumns is assumed when the terminal size cannot be detected.
const FallbackColumns = 80

// DefaultEntries returns the column tiers used by [Default].
func DefaultEntries() []breakpoint.Entry {
	return []breakpoint.Entry{
		{Name: "compact", MinWidth: 0},
		{Name: "standard", MinWidth: 80},
		{Name: "wide", MinWidth: 120},
		{Name: "ultrawide", MinWidth: 160},
	}
}

var defaultTable = breakpoint.MustNew(DefaultEntries(), breakpoint.WithEpsilon(1))

// Default returns the shared column-based table. Its epsilon is a whole
// column, so down boundaries land on integer widths (standard and below
// is "at most 79 columns").
func Default() *breakpoint.Table { return defaultTable }

// Width returns the column count of the terminal attached to stdout, or
// 0 when stdout is not a terminal.
func Width() int { return WidthOf(os.Stdout) }

// WidthOf returns the column count of the terminal behind w, or 0 when w
// is not a terminal.
func WidthOf(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	cols, _, err := xterm.GetSize(int(f.Fd()))
	if err != nil || cols <= 0 {
		return 0
	}
	return cols
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

// Tier resolves the tier for the current terminal width. A nil table
// uses [Default]; an undetectable width counts as 80 columns.
func Tier(t *breakpoint.Table) (breakpoint.Entry, error) {
	return TierOf(t, Width())
}

// TierOf resolves the tier for an explicit column count. A nil table
// uses [Default]; zero or negative columns count as 80.
func TierOf(t *breakpoint.Table, columns int) (breakpoint.Entry, error) {
	if t == nil {
		t = defaultTable
	}
	if columns <= 0 {
		columns = FallbackColumns
	}
	return t.TierFor(float64(columns))
}
