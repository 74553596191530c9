// File: case.go
// Title: String Case Conversion Utilities
// Description: Converts identifiers and phrases between snake_case, kebab-case,
//              camelCase, PascalCase and Title Case. Results are memoized.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-16 v0.2.0: Memoized conversions, x/text title casing, shared splitters

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToSnakeCase converts a string to snake_case.
// Example: "MyVariableName" -> "my_variable_name"
func ToSnakeCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return snakeMemo.lookup(s, func(s string) string { return delimit(s, '_') })
}

// ToKebabCase converts a string to kebab-case.
// Example: "MyVariableName" -> "my-variable-name"
func ToKebabCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return kebabMemo.lookup(s, func(s string) string { return delimit(s, '-') })
}

// ToCamelCase converts a string to camelCase.
// Example: "my_variable_name" -> "myVariableName"
func ToCamelCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return camelMemo.lookup(s, func(s string) string { return joinWords(s, false) })
}

// ToPascalCase converts a string to PascalCase.
// Example: "my_variable_name" -> "MyVariableName"
func ToPascalCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return pascalMemo.lookup(s, func(s string) string { return joinWords(s, true) })
}

// ToTitleCase capitalizes the first letter of every word and lowercases the rest.
// Example: "hello WORLD" -> "Hello World"
func ToTitleCase(s string) string {
	if IsEmpty(s) {
		return s
	}
	return titleMemo.lookup(s, titleWord)
}

// titleWord uses a fresh caser per call; cases.Caser keeps state.
func titleWord(s string) string {
	return cases.Title(language.Und).String(strings.ToLower(s))
}

func isWordSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// delimit lowercases s and inserts sep before an upper-case letter that
// follows a non upper-case one. Existing separators collapse into one sep.
func delimit(s string, sep rune) string {
	var b strings.Builder
	b.Grow(len(s) + 4)

	var prev, last rune
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && !unicode.IsUpper(prev) && last != sep {
				b.WriteRune(sep)
			}
			b.WriteRune(unicode.ToLower(r))
			last = unicode.ToLower(r)
		case isWordSeparator(r):
			if last != sep {
				b.WriteRune(sep)
				last = sep
			}
		default:
			b.WriteRune(r)
			last = r
		}
		prev = r
	}
	return b.String()
}

// joinWords concatenates the words of s, capitalizing each one. The first
// word stays lower case unless upperFirst is set. A string without
// separators only has its first letter adjusted.
func joinWords(s string, upperFirst bool) string {
	if !strings.ContainsFunc(s, isWordSeparator) {
		first, size := utf8.DecodeRuneInString(s)
		if upperFirst {
			return string(unicode.ToUpper(first)) + s[size:]
		}
		return string(unicode.ToLower(first)) + s[size:]
	}

	words := strings.FieldsFunc(s, isWordSeparator)
	if len(words) == 0 {
		return s
	}

	var b strings.Builder
	for i, word := range words {
		if i == 0 && !upperFirst {
			b.WriteString(strings.ToLower(word))
			continue
		}
		b.WriteString(titleWord(word))
	}
	return b.String()
}
