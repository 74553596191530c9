// File: highlight.go
// Title: Phrase Highlighting
// Description: Wraps every case-insensitive occurrence of one or more
//              phrases in a format string. In markup mode only text between
//              tags is touched.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: $1 followed by name characters keeps its meaning

package stringx

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultHighlightFormat wraps the match ($1) in a highlight span.
const DefaultHighlightFormat = `<span class="highlight">$1</span>`

// HighlightOptions controls Highlight.
type HighlightOptions struct {
	Format string // Replacement; $1 is the matched text
	HTML   bool   // Leave tags untouched
}

// DefaultHighlightOptions returns the span format on plain text.
func DefaultHighlightOptions() HighlightOptions {
	return HighlightOptions{Format: DefaultHighlightFormat}
}

// dollarOne matches a literal "$$" or a bare "$1" reference
var dollarOne = regexp.MustCompile(`\$\$|\$1`)

// highlightTemplate braces every bare $1 so text right after it, as in
// "$1s", is not read as part of the group name.
func highlightTemplate(format string) string {
	return dollarOne.ReplaceAllStringFunc(format, func(m string) string {
		if m == "$$" {
			return m
		}
		return "${1}"
	})
}

// Highlight wraps each occurrence of any of phrases in opts.Format.
// Longer phrases win where phrases overlap.
func Highlight(text string, phrases []string, opts HighlightOptions) string {
	quoted := make([]string, 0, len(phrases))
	for _, p := range phrases {
		if p != "" {
			quoted = append(quoted, regexp.QuoteMeta(p))
		}
	}
	if len(quoted) == 0 {
		return text
	}
	sort.SliceStable(quoted, func(i, j int) bool { return len(quoted[i]) > len(quoted[j]) })

	format := highlightTemplate(FirstNonEmpty(opts.Format, DefaultHighlightFormat))
	pattern := regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)`)

	if !opts.HTML {
		return pattern.ReplaceAllString(text, format)
	}

	var b strings.Builder
	for _, seg := range splitMarkup(text) {
		if seg.isTag {
			b.WriteString(seg.raw)
			continue
		}
		b.WriteString(pattern.ReplaceAllString(seg.raw, format))
	}
	return b.String()
}
