// File: html.go
// Title: Markup Tokenizer
// Description: Splits markup into tag and text segments, measures visible
//              text with entities counted as one character, and strips tags
//              and links.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package stringx

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	tagPattern    = regexp.MustCompile(`(?s)<!--.*?-->|<![^<>]*>|<(/?)([A-Za-z][A-Za-z0-9:-]*)[^<>]*>`)
	entityPattern = regexp.MustCompile(`(?i)^(?:&[0-9a-z]{2,8};|&#[0-9]{1,7};|&#x[0-9a-f]{1,6};)`)
	linkOpen      = regexp.MustCompile(`(?im)<a\s+[^>]+>`)
	linkClose     = regexp.MustCompile(`(?im)</a>`)
)

// voidTags never receive a closing tag.
var voidTags = map[string]bool{
	"img": true, "br": true, "input": true, "hr": true, "area": true,
	"base": true, "basefont": true, "col": true, "frame": true,
	"isindex": true, "link": true, "meta": true, "param": true,
}

type segment struct {
	raw     string
	isTag   bool
	name    string // lower-case tag name, empty for comments and text
	closing bool
}

// opens reports whether the segment pushes onto the open-tag stack.
func (s segment) opens() bool {
	return s.isTag && s.name != "" && !s.closing && !voidTags[s.name] &&
		!strings.HasSuffix(s.raw, "/>")
}

// splitMarkup cuts s into alternating text and tag segments. A '<' that
// does not start a well-formed tag is kept as text.
func splitMarkup(s string) []segment {
	var segs []segment
	last := 0
	for _, m := range tagPattern.FindAllStringSubmatchIndex(s, -1) {
		if m[0] > last {
			segs = append(segs, segment{raw: s[last:m[0]]})
		}
		seg := segment{raw: s[m[0]:m[1]], isTag: true}
		if m[4] >= 0 {
			seg.closing = m[3] > m[2]
			seg.name = strings.ToLower(s[m[4]:m[5]])
		}
		segs = append(segs, seg)
		last = m[1]
	}
	if last < len(s) {
		segs = append(segs, segment{raw: s[last:]})
	}
	return segs
}

// trackTag updates the open-tag stack for a tag segment. A closing tag
// removes the most recent matching open tag.
func trackTag(open []segment, seg segment) []segment {
	if seg.opens() {
		return append(open, seg)
	}
	if seg.isTag && seg.closing {
		for i := len(open) - 1; i >= 0; i-- {
			if open[i].name == seg.name {
				return append(open[:i:i], open[i+1:]...)
			}
		}
	}
	return open
}

// closers renders closing tags for open in reverse order.
func closers(open []segment) string {
	var b strings.Builder
	for i := len(open) - 1; i >= 0; i-- {
		b.WriteString("</")
		b.WriteString(open[i].name)
		b.WriteString(">")
	}
	return b.String()
}

// textUnits counts the visible characters of a text run.
func textUnits(s string) int {
	n := 0
	for i := 0; i < len(s); {
		i += unitSize(s[i:])
		n++
	}
	return n
}

// cutUnits returns the prefix of a text run holding n visible characters.
// Entities are never split.
func cutUnits(s string, n int) string {
	i := 0
	for ; n > 0 && i < len(s); n-- {
		i += unitSize(s[i:])
	}
	return s[:i]
}

func unitSize(s string) int {
	if s[0] == '&' {
		if loc := entityPattern.FindStringIndex(s); loc != nil {
			return loc[1]
		}
	}
	_, size := utf8.DecodeRuneInString(s)
	return size
}

// VisibleLength returns the length of the text in markup with tags removed
// and every entity counted as one character.
func VisibleLength(markup string) int {
	n := 0
	for _, seg := range splitMarkup(markup) {
		if !seg.isTag {
			n += textUnits(seg.raw)
		}
	}
	return n
}

// StripTags removes all tags and comments from s.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// StripLinks removes anchor tags from s and keeps their content.
func StripLinks(s string) string {
	return linkOpen.ReplaceAllString(linkClose.ReplaceAllString(s, ""), "")
}
