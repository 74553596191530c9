// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx is the textkit text engine: wrapping,
//              truncation, excerpts and placeholder substitution over
//              Unicode text, plus the helpers they share.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-16 v0.3.0: Rewritten for the text engine

// Package stringx provides the text engine used by textkit.
//
// Overview
//
// Every function is a pure transform: the result depends only on the input
// text and the options passed in. Lengths, widths and offsets are counted in
// code points, never bytes, so multi-byte text is never split inside a
// character.
//
// The engine has three groups:
//
//   - Wrapping: Wrap, WrapBlock and WordWrap (wrap.go)
//   - Truncation: Truncate, Tail and Excerpt (truncate.go, excerpt.go),
//     with markup awareness from html.go
//   - Placeholders: Insert and CleanInsert (insert.go, clean.go)
//
// Around them sit Highlight, Limit, Words, Slug, Tokenize, the case
// conversions, random strings and UUIDs.
//
// Wrapping
//
//	out, err := stringx.Wrap("The quick brown fox jumps", stringx.WrapOptions{Width: 10, WordWrap: true})
//	// "The quick\nbrown fox\njumps"
//
// In word mode a word is never broken; a word longer than the width sits
// alone on its line. WrapBlock re-flows everything from IndentAt on so that
// the indent counts toward the width.
//
// Truncation
//
//	opts := stringx.DefaultTruncateOptions()
//	opts.HTML = true
//	out, err := stringx.Truncate("<p>Hello <b>World</b></p>", 8, opts)
//	// "<p>Hello...</p>"
//
// In markup mode only text between tags counts, an entity such as &amp;
// counts as one character and is never cut, and all tags left open by the
// cut are closed in reverse order. Void elements (br, img, ...) and
// self-closing tags are never closed.
//
// Placeholders
//
//	out, err := stringx.Insert(":name is :age years old.",
//	    map[string]any{"name": "Bob", "age": 65}, stringx.DefaultPlaceholderOptions())
//	// "Bob is 65 years old."
//
// Named placeholders are replaced longest name first, through intermediate
// hash tokens, so a value that looks like a placeholder is never expanded.
// A slice fills "?" markers in order. CleanInsert removes what was left over.
//
// Errors
//
// Invalid arguments such as a width of zero return a *error.Error from
// foundation/core/error with code INVALID_INPUT, INVALID_PATTERN or
// VALUE_OUT_OF_RANGE, tagged with module "stringx" and the operation name.
// A phrase or placeholder that is not found is not an error.
//
// Thread Safety
//
// All exported functions may be called concurrently. The case conversions
// remember results in bounded tables guarded by sync.RWMutex; ResetCaches
// empties them. Random strings use crypto/rand.
package stringx
