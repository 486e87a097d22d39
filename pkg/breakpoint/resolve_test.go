package breakpoint

import (
	"math"
	"testing"

	"github.com/matzehuels/viewport/pkg/errors"
)

func TestNext(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want string
	}{
		{"xs", "sm"},
		{"sm", "md"},
		{"md", "lg"},
		{"lg", "xl"},
		{"xl", "xxl"},
		{"xxl", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.Next(tt.name)
			if err != nil {
				t.Fatalf("Next(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Next(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestMinBoundary(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want Boundary
	}{
		{"xs", Unbounded()},
		{"sm", Px(576)},
		{"md", Px(768)},
		{"lg", Px(992)},
		{"xl", Px(1200)},
		{"xxl", Px(1400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.MinBoundary(tt.name)
			if err != nil {
				t.Fatalf("MinBoundary(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("MinBoundary(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMaxBoundary(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want Boundary
	}{
		{"xs", Unbounded()},
		{"sm", Px(575.98)},
		{"md", Px(767.98)},
		{"lg", Px(991.98)},
		{"xl", Px(1199.98)},
		{"xxl", Unbounded()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.MaxBoundary(tt.name)
			if err != nil {
				t.Fatalf("MaxBoundary(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("MaxBoundary(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRangeUp(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want Range
	}{
		{"xs", Range{Min: Unbounded(), Max: Unbounded()}},
		{"md", Range{Min: Px(768), Max: Unbounded()}},
		{"xxl", Range{Min: Px(1400), Max: Unbounded()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.RangeUp(tt.name)
			if err != nil {
				t.Fatalf("RangeUp(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("RangeUp(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRangeDown(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want Range
	}{
		{"xs", Range{Min: Unbounded(), Max: Unbounded()}},
		{"md", Range{Min: Unbounded(), Max: Px(767.98)}},
		{"xxl", Range{Min: Unbounded(), Max: Unbounded()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.RangeDown(tt.name)
			if err != nil {
				t.Fatalf("RangeDown(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("RangeDown(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRangeBetween(t *testing.T) {
	tab := Default()

	tests := []struct {
		name         string
		lower, upper string
		want         Range
	}{
		{"BothBounded", "sm", "lg", Range{Min: Px(576), Max: Px(991.98)}},
		{"AdjacentTiers", "md", "lg", Range{Min: Px(768), Max: Px(991.98)}},
		{"UpperUnboundedDegradesUp", "md", "xxl", Range{Min: Px(768), Max: Unbounded()}},
		{"LowerUnboundedDegradesDown", "xs", "lg", Range{Min: Unbounded(), Max: Px(991.98)}},
		{"BothUnbounded", "xs", "xxl", Range{Min: Unbounded(), Max: Unbounded()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.RangeBetween(tt.lower, tt.upper)
			if err != nil {
				t.Fatalf("RangeBetween(%q, %q): %v", tt.lower, tt.upper, err)
			}
			if got != tt.want {
				t.Errorf("RangeBetween(%q, %q) = %v, want %v", tt.lower, tt.upper, got, tt.want)
			}
		})
	}
}

func TestRangeOnly(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want Range
	}{
		{"xs", Range{Min: Unbounded(), Max: Px(575.98)}},
		{"sm", Range{Min: Px(576), Max: Px(767.98)}},
		{"md", Range{Min: Px(768), Max: Px(991.98)}},
		{"lg", Range{Min: Px(992), Max: Px(1199.98)}},
		{"xl", Range{Min: Px(1200), Max: Unbounded()}},
		{"xxl", Range{Min: Px(1400), Max: Unbounded()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.RangeOnly(tt.name)
			if err != nil {
				t.Fatalf("RangeOnly(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("RangeOnly(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	t.Run("LargestEqualsRangeUp", func(t *testing.T) {
		only, err := tab.RangeOnly("xxl")
		if err != nil {
			t.Fatalf("RangeOnly(xxl): %v", err)
		}
		up, err := tab.RangeUp("xxl")
		if err != nil {
			t.Fatalf("RangeUp(xxl): %v", err)
		}
		if only != up {
			t.Errorf("RangeOnly(xxl) = %v, RangeUp(xxl) = %v, want equal", only, up)
		}
	})
}

func TestOnlyRangeCoverage(t *testing.T) {
	tab := Default()

	countMatches := func(w float64) int {
		matches := 0
		for _, name := range tab.Names() {
			r, err := tab.RangeOnly(name)
			if err != nil {
				t.Fatalf("RangeOnly(%q): %v", name, err)
			}
			if r.Contains(w) {
				matches++
			}
		}
		return matches
	}

	// Below the largest tier, representative widths land in exactly one
	// tier's only-range.
	for _, w := range []float64{0, 100, 575.97, 576, 767.98, 768, 991, 992, 1199.98, 1200, 1399} {
		if got := countMatches(w); got != 1 {
			t.Errorf("width %v matched %d only-ranges, want 1", w, got)
		}
	}

	// The largest tier has no upper boundary, so the range between xl
	// and xxl degrades to xl-and-up. Widths in the xxl band therefore
	// match the top two only-ranges.
	for _, w := range []float64{1400, 2560} {
		if got := countMatches(w); got != 2 {
			t.Errorf("width %v matched %d only-ranges, want 2", w, got)
		}
	}

	// Widths inside the sub-pixel epsilon gap match no tier. This is the
	// documented cost of keeping adjacent ranges from double-matching.
	for _, w := range []float64{575.99, 767.99, 991.99, 1199.99} {
		if got := countMatches(w); got != 0 {
			t.Errorf("gap width %v matched %d only-ranges, want 0", w, got)
		}
	}

	// The top epsilon gap sits inside the degraded xl-and-up range.
	if got := countMatches(1399.99); got != 1 {
		t.Errorf("width 1399.99 matched %d only-ranges, want 1", got)
	}
}

func TestUnknownName(t *testing.T) {
	tab := Default()

	ops := map[string]func() error{
		"Next":              func() error { _, err := tab.Next("huge"); return err },
		"MinBoundary":       func() error { _, err := tab.MinBoundary("huge"); return err },
		"MaxBoundary":       func() error { _, err := tab.MaxBoundary("huge"); return err },
		"RangeUp":           func() error { _, err := tab.RangeUp("huge"); return err },
		"RangeDown":         func() error { _, err := tab.RangeDown("huge"); return err },
		"RangeBetweenLower": func() error { _, err := tab.RangeBetween("huge", "md"); return err },
		"RangeBetweenUpper": func() error { _, err := tab.RangeBetween("md", "huge"); return err },
		"RangeOnly":         func() error { _, err := tab.RangeOnly("huge"); return err },
		"Infix":             func() error { _, err := tab.Infix("huge"); return err },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			if err == nil {
				t.Fatal("no error for unknown name")
			}
			if !errors.IsUnknownBreakpoint(err) {
				t.Errorf("error = %v, want UnknownBreakpointError", err)
			}
			if code := errors.GetCode(err); code != errors.ErrCodeUnknownBreakpoint {
				t.Errorf("code = %v, want %v", code, errors.ErrCodeUnknownBreakpoint)
			}
		})
	}

	t.Run("CarriesKnownNames", func(t *testing.T) {
		_, err := tab.Next("huge")
		ube, ok := err.(*errors.UnknownBreakpointError)
		if !ok {
			t.Fatalf("error = %T, want *UnknownBreakpointError", err)
		}
		if ube.Name != "huge" {
			t.Errorf("Name = %q, want huge", ube.Name)
		}
		if len(ube.Known) != tab.Len() {
			t.Errorf("Known has %d names, want %d", len(ube.Known), tab.Len())
		}
	})
}

func TestIdempotence(t *testing.T) {
	tab := Default()

	for i := 0; i < 3; i++ {
		r1, err1 := tab.RangeBetween("sm", "lg")
		r2, err2 := tab.RangeBetween("sm", "lg")
		if err1 != nil || err2 != nil {
			t.Fatalf("RangeBetween: %v, %v", err1, err2)
		}
		if r1 != r2 {
			t.Errorf("repeated call differs: %v vs %v", r1, r2)
		}
	}
}

func TestCustomEpsilon(t *testing.T) {
	tab, err := New(DefaultEntries(), WithEpsilon(0.5))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := tab.MaxBoundary("md")
	if err != nil {
		t.Fatalf("MaxBoundary(md): %v", err)
	}
	if want := Px(767.5); got != want {
		t.Errorf("MaxBoundary(md) = %v, want %v", got, want)
	}
}

func TestSingleTierTable(t *testing.T) {
	tab, err := New([]Entry{{Name: "all", MinWidth: 0}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	next, err := tab.Next("all")
	if err != nil || next != "" {
		t.Errorf("Next(all) = %q, %v, want empty, nil", next, err)
	}

	for opName, op := range map[string]func(string) (Range, error){
		"RangeUp":   tab.RangeUp,
		"RangeDown": tab.RangeDown,
		"RangeOnly": tab.RangeOnly,
	} {
		r, err := op("all")
		if err != nil {
			t.Fatalf("%s(all): %v", opName, err)
		}
		if !r.Unbounded() {
			t.Errorf("%s(all) = %v, want fully unbounded", opName, r)
		}
	}
}

func TestCustomTable(t *testing.T) {
	tab, err := New([]Entry{
		{Name: "phone", MinWidth: 0},
		{Name: "tablet", MinWidth: 600},
		{Name: "desktop", MinWidth: 1024},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// The tier above tablet is the largest, so tablet's only-range has no
	// upper bound; the epsilon shows up in tablet's down-range instead.
	only, err := tab.RangeOnly("tablet")
	if err != nil {
		t.Fatalf("RangeOnly(tablet): %v", err)
	}
	if want := (Range{Min: Px(600), Max: Unbounded()}); only != want {
		t.Errorf("RangeOnly(tablet) = %v, want %v", only, want)
	}

	down, err := tab.RangeDown("tablet")
	if err != nil {
		t.Fatalf("RangeDown(tablet): %v", err)
	}
	if want := (Range{Min: Unbounded(), Max: Px(599.98)}); down != want {
		t.Errorf("RangeDown(tablet) = %v, want %v", down, want)
	}

	// Names from the default table must not leak into custom tables.
	if _, err := tab.RangeUp("md"); !errors.IsUnknownBreakpoint(err) {
		t.Errorf("RangeUp(md) error = %v, want UnknownBreakpointError", err)
	}
}

func TestTierFor(t *testing.T) {
	tab := Default()

	tests := []struct {
		name  string
		width float64
		want  string
	}{
		{"Zero", 0, "xs"},
		{"Negative", -10, "xs"},
		{"JustBelowSm", 575.99, "xs"},
		{"AtSm", 576, "sm"},
		{"Mid", 800, "md"},
		{"AtLg", 992, "lg"},
		{"JustBelowXl", 1199.5, "lg"},
		{"Huge", 99999, "xxl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tab.TierFor(tt.width)
			if err != nil {
				t.Fatalf("TierFor(%v): %v", tt.width, err)
			}
			if e.Name != tt.want {
				t.Errorf("TierFor(%v) = %q, want %q", tt.width, e.Name, tt.want)
			}
		})
	}

	t.Run("NaN", func(t *testing.T) {
		_, err := tab.TierFor(math.NaN())
		if !errors.Is(err, errors.ErrCodeInvalidWidth) {
			t.Errorf("TierFor(NaN) error = %v, want INVALID_WIDTH", err)
		}
	})

	t.Run("Inf", func(t *testing.T) {
		_, err := tab.TierFor(math.Inf(1))
		if !errors.Is(err, errors.ErrCodeInvalidWidth) {
			t.Errorf("TierFor(+Inf) error = %v, want INVALID_WIDTH", err)
		}
	})
}

func TestTierForAgreesWithRangeOnly(t *testing.T) {
	tab := Default()
	widths := []float64{0, 320, 576, 700, 768, 992, 1200, 1400, 3840}

	for _, w := range widths {
		e, err := tab.TierFor(w)
		if err != nil {
			t.Fatalf("TierFor(%v): %v", w, err)
		}
		r, err := tab.RangeOnly(e.Name)
		if err != nil {
			t.Fatalf("RangeOnly(%q): %v", e.Name, err)
		}
		if !r.Contains(w) {
			t.Errorf("TierFor(%v) = %q but RangeOnly(%q) = %v does not contain it", w, e.Name, e.Name, r)
		}
	}
}

func TestInfix(t *testing.T) {
	tab := Default()

	tests := []struct {
		name string
		want string
	}{
		{"xs", ""},
		{"sm", "-sm"},
		{"md", "-md"},
		{"xxl", "-xxl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tab.Infix(tt.name)
			if err != nil {
				t.Fatalf("Infix(%q): %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("Infix(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
