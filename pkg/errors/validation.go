package errors

import (
	"math"
	"strings"
	"unicode"
)

// MaxInputLength bounds the number of positions a single record may contain.
// Layout and rendering are linear, but SVG output grows with every position
// and the HTTP service accepts untrusted input.
const MaxInputLength = 100_000

// ValidateCanvasHeight checks that a canvas height in pixels is usable.
func ValidateCanvasHeight(h int) error {
	if h <= 0 {
		return New(ErrCodeInvalidInput, "canvas height must be positive, got %d", h)
	}
	if h > 20_000 {
		return New(ErrCodeInvalidInput, "canvas height too large (max 20000), got %d", h)
	}
	return nil
}

// ValidateRadius checks that a bubble radius is a finite positive number.
func ValidateRadius(r float64) error {
	if math.IsNaN(r) || math.IsInf(r, 0) || r <= 0 {
		return New(ErrCodeInvalidInput, "bubble radius must be a positive finite number, got %v", r)
	}
	return nil
}

// ValidateAngle checks that a rotation angle is finite.
func ValidateAngle(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return New(ErrCodeInvalidInput, "angle must be finite, got %v", deg)
	}
	return nil
}

// ValidateInputLength rejects records longer than MaxInputLength positions.
func ValidateInputLength(n int) error {
	if n > MaxInputLength {
		return New(ErrCodeInvalidInput, "input too long (max %d positions), got %d", MaxInputLength, n)
	}
	return nil
}

// ValidateOutputPath validates a file path used for the optional output write.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Must not end with a path separator
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "output path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidInput, "output path must name a file, not a directory")
	}

	return nil
}
