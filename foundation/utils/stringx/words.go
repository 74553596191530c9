// File: words.go
// Title: Word Level Helpers
// Description: Display-width limiting, word-count limiting, URL slugs and
//              bracket-aware tokenizing.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Limit cuts value to limit terminal columns, trims trailing whitespace
// and appends end. Wide characters count as two columns.
func Limit(value string, limit int, end string) string {
	if runewidth.StringWidth(value) <= limit {
		return value
	}
	return strings.TrimRightFunc(runewidth.Truncate(value, limit, ""), unicode.IsSpace) + end
}

// Words keeps the first n words of value and appends end when more
// words followed.
func Words(value string, n int, end string) string {
	if n <= 0 {
		return value
	}

	count := 0
	inWord := false
	for i, r := range value {
		switch {
		case unicode.IsSpace(r):
			inWord = false
		case !inWord:
			if count == n {
				return strings.TrimRightFunc(value[:i], unicode.IsSpace) + end
			}
			inWord = true
			count++
		}
	}
	return value
}

// Slug builds a lower-case URL slug from title using separator ("-" when empty).
// Letters and digits of any script are kept.
func Slug(title, separator string) string {
	if separator == "" {
		separator = "-"
	}
	flip := "-"
	if separator == "-" {
		flip = "_"
	}

	sep := classEscape(separator)
	title = regexp.MustCompile(`[`+classEscape(flip)+`]+`).ReplaceAllLiteralString(title, separator)
	title = regexp.MustCompile(`[^`+sep+`\pL\pN\s]+`).ReplaceAllLiteralString(strings.ToLower(title), "")
	title = regexp.MustCompile(`[`+sep+`\s]+`).ReplaceAllLiteralString(title, separator)

	return strings.Trim(title, separator)
}

// classEscape renders every rune of s as an escaped member of a character class.
func classEscape(s string) string {
	var b strings.Builder
	for _, r := range s {
		fmt.Fprintf(&b, `\x{%x}`, r)
	}
	return b.String()
}

// Tokenize splits data on separator, ignoring separators between leftBound
// and rightBound. Tokens are trimmed. Equal bounds act as quotes.
//
//	Tokenize("a, f(b, c), d", ",", "(", ")") // ["a", "f(b, c)", "d"]
func Tokenize(data, separator, leftBound, rightBound string) []string {
	if data == "" || separator == "" {
		return nil
	}

	var (
		results []string
		buf     strings.Builder
		depth   int
		quoted  bool
	)
	markers := []string{separator, leftBound, rightBound}

	offset := 0
	for offset <= len(data) {
		at, marker := -1, ""
		for _, m := range markers {
			if m == "" {
				continue
			}
			if i := strings.Index(data[offset:], m); i >= 0 && (at < 0 || offset+i < at) {
				at, marker = offset+i, m
			}
		}
		if at < 0 {
			results = append(results, buf.String()+data[offset:])
			break
		}

		buf.WriteString(data[offset:at])
		if depth == 0 && marker == separator {
			results = append(results, buf.String())
			buf.Reset()
		} else {
			buf.WriteString(marker)
		}

		switch {
		case leftBound == rightBound && marker == leftBound:
			if quoted {
				depth--
			} else {
				depth++
			}
			quoted = !quoted
		case marker == leftBound:
			depth++
		case marker == rightBound:
			depth--
		}
		offset = at + len(marker)
	}

	for i := range results {
		results[i] = strings.TrimSpace(results[i])
	}
	return results
}
