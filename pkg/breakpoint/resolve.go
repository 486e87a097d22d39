package breakpoint

import (
	"math"

	"github.com/matzehuels/viewport/pkg/errors"
)

// Next returns the name of the tier immediately above name in table order,
// or the empty string if name is the largest tier. Returns an
// [errors.UnknownBreakpointError] if name is absent from the table.
func (t *Table) Next(name string) (string, error) {
	i, ok := t.index[name]
	if !ok {
		return "", t.unknown(name)
	}
	if i == len(t.entries)-1 {
		return "", nil
	}
	return t.entries[i+1].Name, nil
}

// MinBoundary returns the lower media-query boundary for name: the tier's
// minimum width, or unbounded when that width is 0 (the smallest tier
// matches everything below the next tier without a lower bound).
// Returns an [errors.UnknownBreakpointError] if name is absent.
func (t *Table) MinBoundary(name string) (Boundary, error) {
	i, ok := t.index[name]
	if !ok {
		return Boundary{}, t.unknown(name)
	}
	min := t.entries[i].MinWidth
	if min == 0 {
		return Unbounded(), nil
	}
	return Px(min), nil
}

// MaxBoundary returns the upper media-query boundary derived from name:
// the tier's minimum width minus the table's epsilon, which is the
// exclusive upper edge of the band below the tier. The boundary is
// unbounded when the tier's minimum width is 0 (there is no band below
// the smallest tier) and for the largest tier, which has no upper edge.
// Returns an [errors.UnknownBreakpointError] if name is absent.
func (t *Table) MaxBoundary(name string) (Boundary, error) {
	i, ok := t.index[name]
	if !ok {
		return Boundary{}, t.unknown(name)
	}
	if i == len(t.entries)-1 {
		return Unbounded(), nil
	}
	min := t.entries[i].MinWidth
	if min == 0 {
		return Unbounded(), nil
	}
	return Px(min - t.epsilon), nil
}

// RangeUp returns the range matching name's tier and every larger one:
// the tier's lower boundary with no upper bound. For the smallest tier
// the result is fully unbounded.
// Returns an [errors.UnknownBreakpointError] if name is absent.
func (t *Table) RangeUp(name string) (Range, error) {
	min, err := t.MinBoundary(name)
	if err != nil {
		return Range{}, err
	}
	return Range{Min: min, Max: Unbounded()}, nil
}

// RangeDown returns the range matching every viewport below name's lower
// edge: no lower bound, capped at [Table.MaxBoundary] of name. For the
// smallest and largest tiers the result is fully unbounded.
// Returns an [errors.UnknownBreakpointError] if name is absent.
func (t *Table) RangeDown(name string) (Range, error) {
	max, err := t.MaxBoundary(name)
	if err != nil {
		return Range{}, err
	}
	return Range{Min: Unbounded(), Max: max}, nil
}

// RangeBetween returns the range spanning from lower's lower edge up to,
// but not including, upper's lower edge. When upper has no upper boundary
// (largest or smallest tier) the result degrades to [Table.RangeUp] of
// lower; when lower has no lower boundary it degrades to
// [Table.RangeDown] of upper.
// Returns an [errors.UnknownBreakpointError] if either name is absent.
func (t *Table) RangeBetween(lower, upper string) (Range, error) {
	min, err := t.MinBoundary(lower)
	if err != nil {
		return Range{}, err
	}
	max, err := t.MaxBoundary(upper)
	if err != nil {
		return Range{}, err
	}
	switch {
	case min.Bounded() && max.Bounded():
		return Range{Min: min, Max: max}, nil
	case !max.Bounded():
		return Range{Min: min, Max: Unbounded()}, nil
	default:
		return Range{Min: Unbounded(), Max: max}, nil
	}
}

// RangeOnly returns the range matching exactly name's tier: from its lower
// edge up to just below the next tier's lower edge. For the largest tier
// the result degrades to [Table.RangeUp] of name.
// Returns an [errors.UnknownBreakpointError] if name is absent.
func (t *Table) RangeOnly(name string) (Range, error) {
	next, err := t.Next(name)
	if err != nil {
		return Range{}, err
	}
	if next == "" {
		return t.RangeUp(name)
	}
	return t.RangeBetween(name, next)
}

// TierFor returns the tier whose band contains the given viewport width:
// the largest entry whose minimum width does not exceed it. Negative
// widths clamp to the smallest tier. Returns an error with code
// [errors.ErrCodeInvalidWidth] for NaN or infinite widths.
func (t *Table) TierFor(width float64) (Entry, error) {
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return Entry{}, errors.New(errors.ErrCodeInvalidWidth, "width must be a finite number")
	}
	cur := t.entries[0]
	for _, e := range t.entries[1:] {
		if width < e.MinWidth {
			break
		}
		cur = e
	}
	return cur, nil
}

// Infix returns the name fragment used to build tier-scoped identifiers
// such as utility class names: "-" followed by the tier name, or the empty
// string for the tier with no lower boundary. With the default table,
// Infix("md") is "-md" and Infix("xs") is "".
// Returns an [errors.UnknownBreakpointError] if name is absent.
func (t *Table) Infix(name string) (string, error) {
	min, err := t.MinBoundary(name)
	if err != nil {
		return "", err
	}
	if !min.Bounded() {
		return "", nil
	}
	return "-" + name, nil
}
