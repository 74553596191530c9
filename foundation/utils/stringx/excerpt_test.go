// File: excerpt_test.go
// Title: Unit Tests for Excerpt
// Description: Window placement, clipping markers and fallbacks of Excerpt.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test implementation

package stringx

import (
	"testing"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func TestExcerpt(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		phrase   string
		radius   int
		expected string
	}{
		{"clipped both sides", "The quick brown fox jumps over the lazy dog", "brown", 5, "...ck brown fo..."},
		{"case insensitive", "The quick BROWN fox", "brown", 3, "... BROWN ..."},
		{"phrase at start", "brown fox jumps", "brown", 5, "brown fo..."},
		{"phrase at end", "the lazy dog", "dog", 4, "...zy dog"},
		{"zero radius keeps phrase", "The quick brown fox", "quick", 0, "...quick..."},
		{"window covers everything", "small text", "text", 50, "small text"},
		{"unicode", "Grüße aus Köln", "köln", 3, "... Köln"},
		{"not found truncates", "The quick brown fox", "cat", 5, "The qui..."},
		{"empty phrase truncates", "The quick brown fox", "", 5, "The qui..."},
		{"not found with zero radius", "The quick brown fox", "cat", 0, "The quick brown fox"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Excerpt(tt.text, tt.phrase, tt.radius, "...")
			if err != nil {
				t.Fatalf("Excerpt() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("Excerpt(%q, %q, %d) = %q; want %q", tt.text, tt.phrase, tt.radius, result, tt.expected)
			}
		})
	}
}

func TestExcerptNegativeRadius(t *testing.T) {
	_, err := Excerpt("text", "t", -1, "...")
	if !tkerror.HasCode(err, tkerror.CodeInvalidInput) {
		t.Errorf("Excerpt() error = %v; want invalid input", err)
	}
}
