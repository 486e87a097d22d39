package cli

import (
	"strings"
	"testing"
)

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	// All six default tiers with their boundaries
	want := []string{
		"Tier", "Min", "Max", "Only",
		"xs", "sm", "md", "lg", "xl", "xxl",
		"576px", "768px", "992px", "1200px", "1400px",
		"767.98px",
	}
	for _, s := range want {
		if !strings.Contains(out, s) {
			t.Errorf("list output missing %q:\n%s", s, out)
		}
	}

	// The largest tier has no upper boundary
	if !strings.Contains(out, "none") {
		t.Errorf("list output should render the unbounded boundary as none:\n%s", out)
	}
}

func TestListCommandDefinitionFile(t *testing.T) {
	path := writeDefinition(t, sampleDefinition)

	out, err := execute(t, "list", "-c", path)
	if err != nil {
		t.Fatalf("list -c failed: %v", err)
	}

	want := []string{"phone", "tablet", "desktop", "600px", "1024px", "599.95px"}
	for _, s := range want {
		if !strings.Contains(out, s) {
			t.Errorf("list output missing %q:\n%s", s, out)
		}
	}
}

func TestListCommandMissingDefinition(t *testing.T) {
	if _, err := execute(t, "list", "-c", "does-not-exist.toml"); err == nil {
		t.Fatal("list with a missing definition file should fail")
	}
}
