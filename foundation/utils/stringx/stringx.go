// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the string helpers used across the Parser-Latex
//              foundation: blank/empty checks for input validation,
//              Unicode-safe truncation for log output, and padding for
//              column-aligned console rendering.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core utilities

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsNotEmpty returns true if the string is not empty.
// Convenience function that's the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
// This is more comprehensive than IsEmpty and commonly needed in validation.
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
// Convenience function that's the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Truncate truncates a string to the specified rune length, adding an
// ellipsis if truncated. The function is Unicode-aware and will not break
// multi-byte characters. If the string fits, it is returned unchanged.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}

	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		// Ellipsis alone would not fit, return a bare cut.
		return string([]rune(s)[:maxLen])
	}

	contentLen := maxLen - ellipsisLen
	return string([]rune(s)[:contentLen]) + ellipsis
}

// PadRight pads the string s to the specified width with the given pad
// character. If the string is already at least width runes long, it is
// returned unchanged.
func PadRight(s string, width int, pad rune) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(width * utf8.UTFMax)
	builder.WriteString(s)
	for i := 0; i < width-runeCount; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// FirstNonBlank returns the first non-blank string from the provided
// strings. Useful for resolving a value from a chain of fallbacks.
func FirstNonBlank(candidates ...string) string {
	for _, s := range candidates {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// FromBlankDefault returns the string if not blank, otherwise the default.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}
