package breakpoint

import (
	"slices"

	"github.com/matzehuels/viewport/pkg/errors"
)

// DefaultEpsilon is the sub-pixel margin subtracted from a tier's minimum
// width to derive the exclusive upper edge of the band below it. The value
// 0.02 keeps adjacent ranges from both matching the shared boundary pixel
// on engines that report fractional viewport widths.
const DefaultEpsilon = 0.02

// Entry is one row of a breakpoint table: a named tier and the minimum
// viewport width, in CSS pixels, at which the tier starts.
type Entry struct {
	Name     string  // Tier name, e.g. "md"
	MinWidth float64 // Lower edge of the tier in CSS pixels
}

// Table is an ordered set of breakpoint tiers, smallest first, with the
// arithmetic for turning tier names into media-query boundaries.
//
// A Table is immutable after construction and safe for concurrent readers
// without locking. The zero value is not usable - use New, MustNew or
// Default to obtain a valid table.
type Table struct {
	entries []Entry
	index   map[string]int
	epsilon float64
}

// Option configures table construction.
type Option func(*Table)

// WithEpsilon overrides the sub-pixel margin used to derive exclusive upper
// edges. The value must be positive and at most 1; New reports an error
// otherwise.
func WithEpsilon(eps float64) Option {
	return func(t *Table) { t.epsilon = eps }
}

// New builds a Table from entries ordered smallest tier first.
//
// The entries must satisfy the table invariants:
//   - at least one entry
//   - names are non-empty, valid identifiers and unique
//   - minimum widths are non-negative and strictly increasing
//   - the first entry's minimum width is 0 (the unbounded-below tier)
//
// Violations are reported with code [errors.ErrCodeInvalidTable],
// [errors.ErrCodeInvalidName] or [errors.ErrCodeInvalidWidth]. The entries
// slice is copied, so the caller may reuse or modify it afterwards.
func New(entries []Entry, opts ...Option) (*Table, error) {
	t := &Table{
		entries: slices.Clone(entries),
		index:   make(map[string]int, len(entries)),
		epsilon: DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := errors.ValidateEpsilon(t.epsilon); err != nil {
		return nil, err
	}
	if len(t.entries) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidTable, "table must contain at least one breakpoint")
	}

	for i, e := range t.entries {
		if err := errors.ValidateName(e.Name); err != nil {
			return nil, err
		}
		if err := errors.ValidateWidth(e.MinWidth); err != nil {
			return nil, err
		}
		if _, dup := t.index[e.Name]; dup {
			return nil, errors.New(errors.ErrCodeInvalidTable, "duplicate breakpoint name %q", e.Name)
		}
		t.index[e.Name] = i
	}

	if first := t.entries[0]; first.MinWidth != 0 {
		return nil, errors.New(errors.ErrCodeInvalidTable,
			"first breakpoint %q must start at 0, got %g", first.Name, first.MinWidth)
	}
	for i := 1; i < len(t.entries); i++ {
		prev, cur := t.entries[i-1], t.entries[i]
		if cur.MinWidth <= prev.MinWidth {
			return nil, errors.New(errors.ErrCodeInvalidTable,
				"min widths must be strictly increasing: %q (%g) does not exceed %q (%g)",
				cur.Name, cur.MinWidth, prev.Name, prev.MinWidth)
		}
	}

	return t, nil
}

// MustNew is like New but panics on invalid entries. It is intended for
// package-level table literals that are known to be correct.
func MustNew(entries []Entry, opts ...Option) *Table {
	t, err := New(entries, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// DefaultEntries returns a fresh copy of the standard six-tier table.
// Callers may append project-specific tiers before passing the result
// to New.
func DefaultEntries() []Entry {
	return []Entry{
		{Name: "xs", MinWidth: 0},
		{Name: "sm", MinWidth: 576},
		{Name: "md", MinWidth: 768},
		{Name: "lg", MinWidth: 992},
		{Name: "xl", MinWidth: 1200},
		{Name: "xxl", MinWidth: 1400},
	}
}

// defaultTable is built once at package load and shared by all callers.
var defaultTable = MustNew(DefaultEntries())

// Default returns the shared standard table (xs 0, sm 576, md 768, lg 992,
// xl 1200, xxl 1400) with the default epsilon. The returned table is
// read-only and safe to share.
func Default() *Table { return defaultTable }

// Len returns the number of tiers in the table.
func (t *Table) Len() int { return len(t.entries) }

// Epsilon returns the sub-pixel margin used to derive exclusive upper edges.
func (t *Table) Epsilon() float64 { return t.epsilon }

// Names returns the tier names in table order, smallest first.
// The returned slice is a copy.
func (t *Table) Names() []string {
	names := make([]string, len(t.entries))
	for i, e := range t.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns the table rows in order, smallest tier first.
// The returned slice is a copy.
func (t *Table) Entries() []Entry { return slices.Clone(t.entries) }

// Contains reports whether name is a tier in the table.
func (t *Table) Contains(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Lookup returns the entry for name and whether it exists.
func (t *Table) Lookup(name string) (Entry, bool) {
	i, ok := t.index[name]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// unknown builds the lookup error for a name absent from the table.
func (t *Table) unknown(name string) error {
	return &errors.UnknownBreakpointError{Name: name, Known: t.Names()}
}
