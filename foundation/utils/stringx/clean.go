// File: clean.go
// Title: Placeholder Cleanup
// Description: Removes placeholders that Insert left unreplaced, together
//              with the "and"/"or" glue around them or the markup attribute
//              that only holds placeholders.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Leftovers found through Format; empty Before rejected

package stringx

import (
	"regexp"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// CleanMethod selects how CleanInsert finds leftovers.
type CleanMethod string

const (
	CleanText CleanMethod = "text"
	CleanHTML CleanMethod = "html"
)

const (
	defaultCleanWord = `[\w,.]+`
	defaultCleanGap  = `\s*(?:(?:and|or)\s*)?`
)

// CleanOptions controls CleanInsert. Empty fields take the defaults.
type CleanOptions struct {
	Method      CleanMethod // text (default) or html
	Word        string      // Pattern for a placeholder name
	Gap         string      // Pattern for the glue next to a placeholder (text)
	Replacement string      // Inserted where something was removed
	SkipText    bool        // html: do not run the text pass afterwards
}

// CleanInsert strips leftover placeholders from s according to opts.Clean.
// A nil Clean returns s unchanged.
func CleanInsert(s string, opts PlaceholderOptions) (string, error) {
	c := opts.Clean
	if c == nil {
		return s, nil
	}

	placeholder, err := leftoverExpr(FirstNonEmpty(c.Word, defaultCleanWord), opts)
	if err != nil {
		return "", err
	}

	switch c.Method {
	case CleanHTML:
		expr := `(?i)\s*[a-z]+="(?:` + placeholder + `\s*)+"`
		re, err := regexp.Compile(expr)
		if err != nil {
			return "", errors.StringxInvalidPattern("clean_insert", expr, err)
		}
		s = re.ReplaceAllString(s, c.Replacement)
		if c.SkipText {
			return s, nil
		}
		text := *c
		text.Method = CleanText
		opts.Clean = &text
		return CleanInsert(s, opts)

	case CleanText, "":
		gap := FirstNonEmpty(c.Gap, defaultCleanGap)
		expr := `(` + placeholder + gap + `|` + gap + placeholder + `)`
		re, err := regexp.Compile(expr)
		if err != nil {
			return "", errors.StringxInvalidPattern("clean_insert", expr, err)
		}
		return re.ReplaceAllString(s, c.Replacement), nil

	default:
		return "", errors.StringxInvalidInput("clean_insert", string(c.Method), "text or html")
	}
}

// leftoverExpr matches any placeholder whose name fits word. A Format
// takes precedence over Before/After; without either a bare word pattern
// would match ordinary text, so that is rejected.
func leftoverExpr(word string, opts PlaceholderOptions) (string, error) {
	if opts.Format != "" {
		if !strings.Contains(opts.Format, "%s") {
			return "", errors.StringxInvalidInput("clean_insert", opts.Format, "format containing %s")
		}
		return "(?:" + strings.ReplaceAll(opts.Format, "%s", "(?:"+word+")") + ")", nil
	}
	if opts.Before == "" {
		return "", errors.StringxInvalidInput("clean_insert", opts, "a Before marker or a Format pattern")
	}
	return regexp.QuoteMeta(opts.Before) + "(?:" + word + ")" + regexp.QuoteMeta(opts.After), nil
}
