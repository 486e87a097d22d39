package breakpoint

import (
	"testing"

	"github.com/matzehuels/viewport/pkg/errors"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name     string
		entries  []Entry
		opts     []Option
		wantCode errors.Code
	}{
		{
			name:    "Valid",
			entries: DefaultEntries(),
		},
		{
			name:    "ValidSingleTier",
			entries: []Entry{{Name: "all", MinWidth: 0}},
		},
		{
			name: "ValidCustomEpsilon",
			entries: []Entry{
				{Name: "phone", MinWidth: 0},
				{Name: "desktop", MinWidth: 1024},
			},
			opts: []Option{WithEpsilon(0.5)},
		},
		{
			name:     "Empty",
			entries:  nil,
			wantCode: errors.ErrCodeInvalidTable,
		},
		{
			name: "DuplicateName",
			entries: []Entry{
				{Name: "sm", MinWidth: 0},
				{Name: "sm", MinWidth: 576},
			},
			wantCode: errors.ErrCodeInvalidTable,
		},
		{
			name: "FirstNotZero",
			entries: []Entry{
				{Name: "sm", MinWidth: 576},
				{Name: "md", MinWidth: 768},
			},
			wantCode: errors.ErrCodeInvalidTable,
		},
		{
			name: "NotAscending",
			entries: []Entry{
				{Name: "xs", MinWidth: 0},
				{Name: "md", MinWidth: 768},
				{Name: "sm", MinWidth: 576},
			},
			wantCode: errors.ErrCodeInvalidTable,
		},
		{
			name: "EqualWidths",
			entries: []Entry{
				{Name: "xs", MinWidth: 0},
				{Name: "a", MinWidth: 576},
				{Name: "b", MinWidth: 576},
			},
			wantCode: errors.ErrCodeInvalidTable,
		},
		{
			name: "EmptyName",
			entries: []Entry{
				{Name: "", MinWidth: 0},
			},
			wantCode: errors.ErrCodeInvalidName,
		},
		{
			name: "BadName",
			entries: []Entry{
				{Name: "xs", MinWidth: 0},
				{Name: "2xl", MinWidth: 576},
			},
			wantCode: errors.ErrCodeInvalidName,
		},
		{
			name: "NegativeWidth",
			entries: []Entry{
				{Name: "xs", MinWidth: 0},
				{Name: "sub", MinWidth: -5},
			},
			wantCode: errors.ErrCodeInvalidWidth,
		},
		{
			name:     "ZeroEpsilon",
			entries:  DefaultEntries(),
			opts:     []Option{WithEpsilon(0)},
			wantCode: errors.ErrCodeInvalidTable,
		},
		{
			name:     "EpsilonAboveOne",
			entries:  DefaultEntries(),
			opts:     []Option{WithEpsilon(2)},
			wantCode: errors.ErrCodeInvalidTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tab, err := New(tt.entries, tt.opts...)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("New: %v", err)
				}
				if tab.Len() != len(tt.entries) {
					t.Errorf("Len() = %d, want %d", tab.Len(), len(tt.entries))
				}
				return
			}
			if err == nil {
				t.Fatal("New succeeded, want error")
			}
			if got := errors.GetCode(err); got != tt.wantCode {
				t.Errorf("error code = %v, want %v (err: %v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestMustNewPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew did not panic on invalid entries")
		}
	}()
	MustNew([]Entry{{Name: "sm", MinWidth: 576}})
}

func TestDefaultTable(t *testing.T) {
	tab := Default()

	want := []Entry{
		{Name: "xs", MinWidth: 0},
		{Name: "sm", MinWidth: 576},
		{Name: "md", MinWidth: 768},
		{Name: "lg", MinWidth: 992},
		{Name: "xl", MinWidth: 1200},
		{Name: "xxl", MinWidth: 1400},
	}

	if tab.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", tab.Len(), len(want))
	}
	for i, e := range tab.Entries() {
		if e != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, e, want[i])
		}
	}
	if tab.Epsilon() != DefaultEpsilon {
		t.Errorf("Epsilon() = %v, want %v", tab.Epsilon(), DefaultEpsilon)
	}
	if Default() != tab {
		t.Error("Default() returned a different instance on second call")
	}
}

func TestAccessorsCopy(t *testing.T) {
	entries := DefaultEntries()
	tab, err := New(entries)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Mutating the input after construction must not affect the table.
	entries[0].Name = "mutated"
	if _, ok := tab.Lookup("xs"); !ok {
		t.Error("table shares memory with caller's entries slice")
	}

	// Mutating returned copies must not affect the table either.
	tab.Entries()[1].MinWidth = 9999
	tab.Names()[1] = "mutated"
	if e, _ := tab.Lookup("sm"); e.MinWidth != 576 {
		t.Errorf("sm MinWidth = %v after mutating copy, want 576", e.MinWidth)
	}
}

func TestLookup(t *testing.T) {
	tab := Default()

	e, ok := tab.Lookup("md")
	if !ok {
		t.Fatal("Lookup(md) not found")
	}
	if e.Name != "md" || e.MinWidth != 768 {
		t.Errorf("Lookup(md) = %+v, want {md 768}", e)
	}

	if _, ok := tab.Lookup("huge"); ok {
		t.Error("Lookup(huge) found, want missing")
	}
	if tab.Contains("huge") {
		t.Error("Contains(huge) = true, want false")
	}
	if !tab.Contains("xxl") {
		t.Error("Contains(xxl) = false, want true")
	}
}

func TestNames(t *testing.T) {
	got := Default().Names()
	want := []string{"xs", "sm", "md", "lg", "xl", "xxl"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
