package breakpoint

import "strconv"

// Boundary is one edge of a viewport-width range: either a concrete pixel
// value or unbounded (no constraint on that side). Boundary is a comparable
// value type, so ranges built from the same table compare equal with ==.
//
// The zero value is the unbounded boundary.
type Boundary struct {
	px  float64
	set bool
}

// Px returns a bounded Boundary at the given pixel value.
func Px(v float64) Boundary { return Boundary{px: v, set: true} }

// Unbounded returns the open boundary, meaning "no constraint on this side".
func Unbounded() Boundary { return Boundary{} }

// Bounded reports whether the boundary carries a pixel value.
func (b Boundary) Bounded() bool { return b.set }

// Value returns the pixel value and whether the boundary is bounded.
// For unbounded boundaries the value is 0 and ok is false.
func (b Boundary) Value() (px float64, ok bool) { return b.px, b.set }

// String renders the boundary for logs and CLI output, e.g. "767.98px".
// Unbounded boundaries render as "none".
func (b Boundary) String() string {
	if !b.set {
		return "none"
	}
	return strconv.FormatFloat(b.px, 'f', -1, 64) + "px"
}

// Range is the inclusive viewport-width window in which a conditional style
// block applies. Either side may be unbounded: a fully unbounded range
// matches every viewport width.
//
// Ranges are comparable values; two ranges derived from the same table with
// the same inputs are identical.
type Range struct {
	Min Boundary // Lower edge (inclusive), or unbounded
	Max Boundary // Upper edge (inclusive), or unbounded
}

// Contains reports whether a viewport width in CSS pixels falls inside the
// range. Unbounded sides match everything on that side.
func (r Range) Contains(px float64) bool {
	if min, ok := r.Min.Value(); ok && px < min {
		return false
	}
	if max, ok := r.Max.Value(); ok && px > max {
		return false
	}
	return true
}

// Unbounded reports whether neither side of the range carries a value,
// i.e. the range matches every viewport width.
func (r Range) Unbounded() bool { return !r.Min.Bounded() && !r.Max.Bounded() }

// String renders the range for logs and CLI output, e.g. "[576px, 991.98px]".
func (r Range) String() string {
	return "[" + r.Min.String() + ", " + r.Max.String() + "]"
}
