// File: stringx.go
// Title: Core String Utility Functions
// Description: Rune-aware helpers shared by the text engine: blank checks,
//              length and substring by code point, padding, reversal and
//              line splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-16 v0.2.0: Length/Substring by rune, truncation moved to truncate.go,
//                      interning replaced by the memo table

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty is the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return len(s) > 0
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// Length returns the number of code points in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// Substring returns up to length code points of s starting at start.
// A negative start counts from the end of the string, a negative length
// takes everything up to the end. Out of range positions are clamped.
func Substring(s string, start, length int) string {
	runes := []rune(s)
	n := len(runes)
	if start < 0 {
		start += n
		if start < 0 {
			start = 0
		}
	}
	if start >= n {
		return ""
	}
	end := n
	if length >= 0 && start+length < n {
		end = start + length
	}
	return string(runes[start:end])
}

// runePrefix returns the first n code points of s.
func runePrefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// runeSuffix returns the last n code points of s.
func runeSuffix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	end := len(s)
	for i := 0; i < n && end > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:end])
		end -= size
	}
	return s[end:]
}

// Reverse reverses a string by code point.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ContainsIgnoreCase returns true if substr is within s, ignoring case.
func ContainsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// PadLeft pads s on the left with pad until it is width code points long.
func PadLeft(s string, width int, pad rune) string {
	missing := width - Length(s)
	if missing <= 0 {
		return s
	}
	return strings.Repeat(string(pad), missing) + s
}

// PadRight pads s on the right with pad until it is width code points long.
func PadRight(s string, width int, pad rune) string {
	missing := width - Length(s)
	if missing <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), missing)
}

// Center centers s within width code points. An odd remainder goes to the right.
func Center(s string, width int, pad rune) string {
	missing := width - Length(s)
	if missing <= 0 {
		return s
	}
	left := missing / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), missing-left)
}

// SplitLines splits on \n, \r\n and \r.
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// FirstNonEmpty returns the first non-empty argument.
func FirstNonEmpty(values ...string) string {
	for _, s := range values {
		if IsNotEmpty(s) {
			return s
		}
	}
	return ""
}

// FirstNonBlank returns the first argument that is not blank.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// ValidateLength checks that s has between minLen and maxLen code points.
// A bound of 0 or less is not checked.
func ValidateLength(s string, minLen, maxLen int) error {
	length := Length(s)
	if minLen > 0 && length < minLen {
		return errors.OutOfRange(errors.ModuleStringx, "validate_length", length, minLen, maxLen)
	}
	if maxLen > 0 && length > maxLen {
		return errors.OutOfRange(errors.ModuleStringx, "validate_length", length, minLen, maxLen)
	}
	return nil
}
