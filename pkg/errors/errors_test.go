package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidTable, "test message: %s", "value")

	if err.Code != ErrCodeInvalidTable {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidTable)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_TABLE: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidDefinition, cause, "failed to decode")

	if err.Code != ErrCodeInvalidDefinition {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidDefinition)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidTable, "test"),
			code:     ErrCodeInvalidTable,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidTable, "test"),
			code:     ErrCodeInvalidFormat,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeInvalidDefinition, New(ErrCodeInvalidTable, "inner"), "outer"),
			code:     ErrCodeInvalidDefinition,
			expected: true,
		},
		{
			name:     "code-bearing error type",
			err:      &UnknownBreakpointError{Name: "huge"},
			code:     ErrCodeUnknownBreakpoint,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidTable,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidTable,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidWidth, "test"),
			expected: ErrCodeInvalidWidth,
		},
		{
			name:     "code-bearing error type",
			err:      &UnknownBreakpointError{Name: "huge"},
			expected: ErrCodeUnknownBreakpoint,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidTable, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUnknownBreakpointError(t *testing.T) {
	t.Run("with known names", func(t *testing.T) {
		err := &UnknownBreakpointError{Name: "huge", Known: []string{"xs", "sm", "md"}}
		expected := `unknown breakpoint "huge" (known: xs, sm, md)`
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("without known names", func(t *testing.T) {
		err := &UnknownBreakpointError{Name: "huge"}
		expected := `unknown breakpoint "huge"`
		if err.Error() != expected {
			t.Errorf("Error() = %v, want %v", err.Error(), expected)
		}
	})

	t.Run("code method", func(t *testing.T) {
		err := &UnknownBreakpointError{Name: "huge"}
		if err.Code() != ErrCodeUnknownBreakpoint {
			t.Errorf("Code() = %v, want %v", err.Code(), ErrCodeUnknownBreakpoint)
		}
	})

	t.Run("detected through wrapping", func(t *testing.T) {
		inner := &UnknownBreakpointError{Name: "huge"}
		err := Wrap(ErrCodeInvalidDefinition, inner, "resolving bounds")
		if !IsUnknownBreakpoint(err) {
			t.Error("IsUnknownBreakpoint() = false, want true")
		}
	})

	t.Run("not unknown breakpoint", func(t *testing.T) {
		if IsUnknownBreakpoint(errors.New("plain")) {
			t.Error("IsUnknownBreakpoint(plain) = true, want false")
		}
	})
}
