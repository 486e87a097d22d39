package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/viewport/pkg/errors"
)

func TestTierCommandWidth(t *testing.T) {
	tests := []struct {
		name  string
		width string
		want  string
	}{
		{"mid band", "800", "md"},
		{"zero width", "0", "xs"},
		{"exact boundary", "768", "md"},
		{"just below boundary", "767.9", "sm"},
		{"above largest", "2560", "xxl"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, "tier", "--width", tt.width)
			if err != nil {
				t.Fatalf("tier --width %s failed: %v", tt.width, err)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("tier output missing %q:\n%s", tt.want, out)
			}
		})
	}
}

func TestTierCommandWidthDefinitionFile(t *testing.T) {
	path := writeDefinition(t, sampleDefinition)

	out, err := execute(t, "tier", "--width", "700", "-c", path)
	if err != nil {
		t.Fatalf("tier --width 700 -c failed: %v", err)
	}
	if !strings.Contains(out, "tablet") {
		t.Errorf("tier output missing %q:\n%s", "tablet", out)
	}
}

// Without --width the command measures the terminal. Test writers are not
// terminals, so the fallback column count applies.
func TestTierCommandTerminalFallback(t *testing.T) {
	out, err := execute(t, "tier")
	if err != nil {
		t.Fatalf("tier failed: %v", err)
	}

	for _, s := range []string{"80", "standard"} {
		if !strings.Contains(out, s) {
			t.Errorf("tier output missing %q:\n%s", s, out)
		}
	}
}

func TestTierCommandInvalidWidth(t *testing.T) {
	_, err := execute(t, "tier", "--width", "NaN")
	if err == nil {
		t.Fatal("tier --width NaN should fail")
	}
	if !errors.Is(err, errors.ErrCodeInvalidWidth) {
		t.Errorf("error = %v, want code %s", err, errors.ErrCodeInvalidWidth)
	}
}
