package errors

import (
	"math"
	"regexp"
	"unicode"
)

// nameRegex matches valid breakpoint names. Names must be usable as CSS
// identifiers (custom property segments, SCSS map keys), so they start
// with a letter and continue with letters, digits, hyphens or underscores.
var nameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidateName validates a breakpoint name for safety and correctness.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 64 characters
//   - Must match ^[A-Za-z][A-Za-z0-9_-]*$ so the name survives embedding
//     in CSS custom properties, SCSS maps and shell completion
func ValidateName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidName, "breakpoint name cannot be empty")
	}

	if len(name) > 64 {
		return New(ErrCodeInvalidName, "breakpoint name too long (max 64 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidName, "breakpoint name contains invalid control characters")
		}
	}

	if !nameRegex.MatchString(name) {
		return New(ErrCodeInvalidName, "invalid breakpoint name: %q", name)
	}

	return nil
}

// ValidateWidth validates a minimum viewport width in CSS pixels.
//
// Validation rules:
//   - Must be a finite number (no NaN or infinities)
//   - Must be non-negative
//   - Must stay below an arbitrary but generous ceiling of 10^6 px,
//     which rejects accidental unit confusion (e.g. micrometers)
func ValidateWidth(px float64) error {
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return New(ErrCodeInvalidWidth, "width must be a finite number")
	}

	if px < 0 {
		return New(ErrCodeInvalidWidth, "width cannot be negative: %g", px)
	}

	const maxWidth = 1e6
	if px > maxWidth {
		return New(ErrCodeInvalidWidth, "width too large (max %g): %g", maxWidth, px)
	}

	return nil
}

// prefixRegex matches valid CSS custom-property prefixes. A prefix is a
// plain identifier; the writers add the leading dashes themselves.
var prefixRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// ValidatePrefix validates a CSS custom-property prefix such as "bp" in
// --bp-md. An empty prefix is valid and means no prefix.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return nil
	}

	if len(prefix) > 64 {
		return New(ErrCodeInvalidName, "prefix too long (max 64 characters)")
	}

	if !prefixRegex.MatchString(prefix) {
		return New(ErrCodeInvalidName, "invalid prefix: %q", prefix)
	}

	return nil
}

// ValidateEpsilon validates the subtractive epsilon used to derive
// exclusive upper bounds from the next tier's minimum width.
//
// Validation rules:
//   - Must be a finite number
//   - Must be strictly positive; a zero epsilon would make adjacent
//     ranges overlap at their shared edge
//   - Must be at most 1 so the derived maximum stays inside the tier
func ValidateEpsilon(eps float64) error {
	if math.IsNaN(eps) || math.IsInf(eps, 0) {
		return New(ErrCodeInvalidTable, "epsilon must be a finite number")
	}

	if eps <= 0 {
		return New(ErrCodeInvalidTable, "epsilon must be positive: %g", eps)
	}

	if eps > 1 {
		return New(ErrCodeInvalidTable, "epsilon too large (max 1): %g", eps)
	}

	return nil
}
