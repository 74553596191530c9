// File: excerpt.go
// Title: Excerpt Extraction
// Description: Cuts a window of context around the first case-insensitive
//              occurrence of a phrase.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/search"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Excerpt returns radius code points of context on each side of the centre
// of the first occurrence of phrase. The window always contains the whole
// phrase. The ellipsis is added only on sides where text was cut off.
// When phrase is empty or absent the text is truncated to 2*radius instead.
func Excerpt(text, phrase string, radius int, ellipsis string) (string, error) {
	if radius < 0 {
		return "", errors.StringxInvalidInput("excerpt", radius, "non-negative radius")
	}

	start, end := -1, -1
	if phrase != "" {
		start, end = search.New(language.Und, search.IgnoreCase).IndexString(text, phrase)
	}
	if start < 0 {
		if radius == 0 {
			return text, nil
		}
		return Truncate(text, 2*radius, TruncateOptions{Ellipsis: ellipsis, Exact: true})
	}

	textLen := Length(text)
	pos := utf8.RuneCountInString(text[:start])
	phraseLen := utf8.RuneCountInString(text[start:end])
	half := phraseLen / 2

	from := max(min(pos+half-radius, pos), 0)
	to := min(max(pos+(phraseLen-half)+radius, pos+phraseLen), textLen)

	excerpt := Substring(text, from, to-from)
	if from > 0 {
		excerpt = ellipsis + excerpt
	}
	if to < textLen {
		excerpt += ellipsis
	}
	return excerpt, nil
}
