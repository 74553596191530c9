// File: wrap.go
// Title: Word Wrapping
// Description: Greedy word wrap and hard wrap of plain text by code point
//              width, with optional indentation and block re-flow of the
//              indented part.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation of Wrap, WrapBlock and WordWrap

package stringx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// DefaultWrapWidth is the line width used when none is configured.
const DefaultWrapWidth = 72

// WrapOptions controls Wrap and WrapBlock.
type WrapOptions struct {
	Width    int    // Maximum line width in code points
	WordWrap bool   // Break at spaces only; false cuts every Width code points
	Indent   string // Prefix for lines at or after IndentAt
	IndentAt int    // Index of the first indented line
}

// DefaultWrapOptions returns width 72, word wrapping and no indent.
func DefaultWrapOptions() WrapOptions {
	return WrapOptions{Width: DefaultWrapWidth, WordWrap: true}
}

// Wrap breaks every paragraph of text into lines of at most Width code
// points. In word mode a word longer than Width stays on its own line.
func Wrap(text string, opts WrapOptions) (string, error) {
	if opts.Width <= 0 {
		return "", errors.StringxInvalidInput("wrap", opts.Width, "width greater than zero")
	}
	if text == "" {
		return "", nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if opts.WordWrap {
			lines = append(lines, wrapWords([]rune(paragraph), opts.Width)...)
		} else {
			lines = append(lines, wrapHard([]rune(paragraph), opts.Width)...)
		}
	}

	if opts.Indent != "" {
		for i := max(opts.IndentAt, 0); i < len(lines); i++ {
			lines[i] = opts.Indent + lines[i]
		}
	}
	return strings.Join(lines, "\n"), nil
}

// WrapBlock wraps text like Wrap, then re-flows the indented lines so
// the indent counts toward the width and every continuation line is indented.
func WrapBlock(text string, opts WrapOptions) (string, error) {
	wrapped, err := Wrap(text, opts)
	if err != nil || opts.Indent == "" {
		return wrapped, err
	}

	lines := strings.Split(wrapped, "\n")
	from := max(opts.IndentAt, 0)
	if len(lines) < 2 || from >= len(lines) {
		return wrapped, nil
	}

	indentLen := Length(opts.Indent)
	parts := make([]string, 0, len(lines)-from)
	for _, line := range lines[from:] {
		parts = append(parts, strings.TrimPrefix(line, opts.Indent))
	}

	inner := opts
	inner.Width -= indentLen
	inner.IndentAt = 0
	rewrapped, err := Wrap(strings.Join(parts, " "), inner)
	if err != nil {
		return "", err
	}

	kept := append(lines[:from:from], strings.Split(rewrapped, "\n")...)
	return strings.Join(kept, "\n"), nil
}

// WordWrap wraps text at width using word mode. A width of zero or less
// falls back to DefaultWrapWidth.
func WordWrap(text string, width int) string {
	opts := DefaultWrapOptions()
	if width > 0 {
		opts.Width = width
	}
	wrapped, _ := Wrap(text, opts)
	return wrapped
}

func wrapHard(runes []rune, width int) []string {
	if len(runes) == 0 {
		return []string{""}
	}
	lines := make([]string, 0, len(runes)/width+1)
	for len(runes) > width {
		lines = append(lines, string(runes[:width]))
		runes = runes[width:]
	}
	return append(lines, string(runes))
}

func wrapWords(runes []rune, width int) []string {
	if len(runes) <= width {
		return []string{string(runes)}
	}

	var lines []string
	for len(runes) > width {
		cut := width
		if runes[width] != ' ' {
			cut = lastSpace(runes[:width])
			if cut <= 0 {
				next := indexSpace(runes[width:])
				if next < 0 {
					break
				}
				cut = width + next
			}
		}
		lines = append(lines, string(trimRightSpaces(runes[:cut])))
		runes = trimLeftSpaces(runes[cut:])
	}
	if len(runes) > 0 {
		lines = append(lines, string(runes))
	}
	return lines
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == ' ' {
			return i
		}
	}
	return -1
}

func indexSpace(runes []rune) int {
	for i, r := range runes {
		if r == ' ' {
			return i
		}
	}
	return -1
}

func trimRightSpaces(runes []rune) []rune {
	end := len(runes)
	for end > 0 && runes[end-1] == ' ' {
		end--
	}
	return runes[:end]
}

func trimLeftSpaces(runes []rune) []rune {
	start := 0
	for start < len(runes) && runes[start] == ' ' {
		start++
	}
	return runes[start:]
}
