package mediaquery

import (
	"strconv"

	"github.com/matzehuels/viewport/pkg/breakpoint"
)

// FormatPx renders a pixel quantity the way stylesheets expect it: the
// shortest decimal form that round-trips, with a px suffix. FormatPx(767.98)
// is "767.98px", FormatPx(768) is "768px".
func FormatPx(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

// MinWidth renders a lower boundary as a media feature expression,
// e.g. "(min-width: 576px)". Unbounded boundaries render as the empty
// string: no constraint, no expression.
func MinWidth(b breakpoint.Boundary) string {
	px, ok := b.Value()
	if !ok {
		return ""
	}
	return "(min-width: " + FormatPx(px) + ")"
}

// MaxWidth renders an upper boundary as a media feature expression,
// e.g. "(max-width: 767.98px)". Unbounded boundaries render as the empty
// string.
func MaxWidth(b breakpoint.Boundary) string {
	px, ok := b.Value()
	if !ok {
		return ""
	}
	return "(max-width: " + FormatPx(px) + ")"
}

// Expr renders a range as the media feature expressions joined with " and ".
// A fully unbounded range renders as the empty string, meaning the caller's
// rules apply unconditionally.
func Expr(r breakpoint.Range) string {
	min := MinWidth(r.Min)
	max := MaxWidth(r.Max)
	switch {
	case min == "":
		return max
	case max == "":
		return min
	default:
		return min + " and " + max
	}
}

// Media renders a range as a full media-query prelude, e.g.
// "@media (min-width: 576px) and (max-width: 991.98px)". A fully unbounded
// range renders as the empty string.
func Media(r breakpoint.Range) string {
	expr := Expr(r)
	if expr == "" {
		return ""
	}
	return "@media " + expr
}
