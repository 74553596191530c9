// File: truncate.go
// Title: Text Truncation
// Description: Shortens plain text or markup to a maximum visible length,
//              appending an ellipsis and re-closing tags left open by the cut.
//              Tail cuts from the front instead.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Unicode-aware Truncate in stringx.go
// - 2026-10-16 v0.2.0: Options, word boundaries, markup mode and Tail
// - 2026-10-16 v0.2.1: Markup mode drops an ellipsis longer than the limit

package stringx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// DefaultEllipsis is appended (or prepended) to shortened text.
const DefaultEllipsis = "..."

// TruncateOptions controls Truncate and Tail.
type TruncateOptions struct {
	Ellipsis string // Marker for the removed part
	Exact    bool   // false: never cut inside a word
	HTML     bool   // Treat the input as markup
}

// DefaultTruncateOptions returns "..." with exact cuts on plain text.
func DefaultTruncateOptions() TruncateOptions {
	return TruncateOptions{Ellipsis: DefaultEllipsis, Exact: true}
}

// Truncate shortens text to maxLength code points including the ellipsis.
//
// With Exact unset the cut moves back to the last space; when that leaves
// nothing the first maxLength code points are kept instead. In HTML mode
// only visible text counts, entities count as one character, and every tag
// still open at the cut is closed after the ellipsis.
func Truncate(text string, maxLength int, opts TruncateOptions) (string, error) {
	if maxLength <= 0 {
		return "", errors.StringxInvalidInput("truncate", maxLength, "length greater than zero")
	}
	if opts.HTML {
		return truncateMarkup(text, maxLength, opts), nil
	}
	if Length(text) <= maxLength {
		return text, nil
	}

	ellipsisLen := Length(opts.Ellipsis)
	if ellipsisLen >= maxLength {
		return runePrefix(text, maxLength), nil
	}

	kept := runePrefix(text, maxLength-ellipsisLen)
	if !opts.Exact {
		if i := strings.LastIndexByte(kept, ' '); i >= 0 {
			kept = kept[:i]
		} else {
			kept = ""
		}
		if kept == "" {
			kept = runePrefix(text, maxLength)
		}
	}
	return kept + opts.Ellipsis, nil
}

// Tail shortens text from the front, keeping the last maxLength code points
// including the leading ellipsis. With Exact unset the cut advances to the
// next space. Markup is not supported.
func Tail(text string, maxLength int, opts TruncateOptions) (string, error) {
	if opts.HTML {
		return "", errors.StringxUnsupportedMode("tail", "html")
	}
	if maxLength <= 0 {
		return "", errors.StringxInvalidInput("tail", maxLength, "length greater than zero")
	}
	if Length(text) <= maxLength {
		return text, nil
	}

	ellipsisLen := Length(opts.Ellipsis)
	if ellipsisLen >= maxLength {
		return runeSuffix(text, maxLength), nil
	}

	kept := runeSuffix(text, maxLength-ellipsisLen)
	if !opts.Exact {
		if i := strings.IndexByte(kept, ' '); i >= 0 {
			kept = strings.TrimSpace(kept[i:])
		} else {
			kept = ""
		}
	}
	return opts.Ellipsis + kept, nil
}

func truncateMarkup(text string, maxLength int, opts TruncateOptions) string {
	segs := splitMarkup(text)
	visible := 0
	for _, seg := range segs {
		if !seg.isTag {
			visible += textUnits(seg.raw)
		}
	}
	if visible <= maxLength {
		return text
	}

	// an ellipsis that does not fit leaves a bare cut, as in plain mode
	ellipsis := opts.Ellipsis
	budget := maxLength - VisibleLength(ellipsis)
	if budget <= 0 {
		ellipsis, budget = "", maxLength
	}

	var b strings.Builder
	var open []segment
	used := 0
	for _, seg := range segs {
		if seg.isTag {
			b.WriteString(seg.raw)
			open = trackTag(open, seg)
			continue
		}
		n := textUnits(seg.raw)
		if used+n > budget {
			b.WriteString(cutUnits(seg.raw, budget-used))
			break
		}
		b.WriteString(seg.raw)
		used += n
		if used >= budget {
			break
		}
	}

	kept := b.String()
	if !opts.Exact && ellipsis != "" {
		if prefix, ok := backOffToSpace(kept); ok {
			kept = prefix
			open = nil
			for _, seg := range splitMarkup(kept) {
				if seg.isTag {
					open = trackTag(open, seg)
				}
			}
		}
	}

	return kept + ellipsis + closers(open)
}

// backOffToSpace cuts markup at the last space that sits in a text run.
func backOffToSpace(markup string) (string, bool) {
	segs := splitMarkup(markup)
	offset := len(markup)
	for i := len(segs) - 1; i >= 0; i-- {
		offset -= len(segs[i].raw)
		if segs[i].isTag {
			continue
		}
		if j := strings.LastIndexByte(segs[i].raw, ' '); j >= 0 {
			return markup[:offset+j], true
		}
	}
	return markup, false
}
