// File: insert_test.go
// Title: Unit Tests for Placeholder Substitution
// Description: Named, positional and indexed substitution, escaping, custom
//              formats, rejected inputs and the cleanup pass.
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
	"time"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

func TestInsert(t *testing.T) {
	defaults := DefaultPlaceholderOptions()
	braces := PlaceholderOptions{Before: "{", After: "}", Escape: `\`}
	dollar := PlaceholderOptions{Format: `\$\{%s\}`}

	tests := []struct {
		name     string
		template string
		data     any
		opts     PlaceholderOptions
		expected string
	}{
		{"named", ":name is :age years old.", map[string]any{"name": "Bob", "age": 65}, defaults, "Bob is 65 years old."},
		{"string map", "Hi :who", map[string]string{"who": "there"}, defaults, "Hi there"},
		{"value looks like placeholder", ":a and :b", map[string]string{"a": ":b", "b": "B"}, defaults, ":b and B"},
		{"longer name first", ":name2 vs :name", map[string]string{"name": "A", "name2": "B"}, defaults, "B vs A"},
		{"escaped placeholder", `\:name is :name`, map[string]string{"name": "Bob"}, defaults, ":name is Bob"},
		{"missing key left alone", ":name and :other", map[string]string{"name": "Bob"}, defaults, "Bob and :other"},
		{"nested value renders empty", "[:a]", map[string]any{"a": []int{1, 2}}, defaults, "[]"},
		{"nil value renders empty", "[:a]", map[string]any{"a": nil}, defaults, "[]"},
		{"positional", "? is ? years", []any{"Bob", 65}, defaults, "Bob is 65 years"},
		{"positional runs out", "? and ? and ?", []string{"a"}, defaults, "a and ? and ?"},
		{"positional value not rescanned", "?-?", []string{"?", "x"}, defaults, "?-x"},
		{"list by index", ":0 likes :1", []string{"Ann", "Ben"}, defaults, "Ann likes Ben"},
		{"index ten before one", ":10 :1", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, defaults, "10 1"},
		{"scalar", "Hello :0", "World", defaults, "Hello World"},
		{"scalar positional", "Hi ?", 5, defaults, "Hi 5"},
		{"stringer", "took ?", time.Second, defaults, "took 1s"},
		{"nil data", "Hi :name", nil, defaults, "Hi :name"},
		{"empty map", "Hi :name", map[string]string{}, defaults, "Hi :name"},
		{"before and after", "Hello {name}!", map[string]string{"name": "Bob"}, braces, "Hello Bob!"},
		{"custom format", "Hello ${name}", map[string]string{"name": "Bob"}, dollar, "Hello Bob"},
		{"custom format keeps escape", `\${name}`, map[string]string{"name": "Bob"}, dollar, `\Bob`},
		{"format matching digits", "<10> <11> <1>", []string{"v0", "v1", "v2", "v3", "v4", "v5", "v6", "v7", "v8", "v9", "v10", "v11"}, PlaceholderOptions{Format: "%s"}, "<v10> <v11> <v1>"},
		{"digit values not rescanned", "1 2", []string{"x", "2", "y"}, PlaceholderOptions{Format: "%s"}, "2 y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Insert(tt.template, tt.data, tt.opts)
			if err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("Insert(%q) = %q; want %q", tt.template, result, tt.expected)
			}
		})
	}
}

func TestInsertErrors(t *testing.T) {
	tests := []struct {
		name string
		data any
		opts PlaceholderOptions
		code tkerror.Code
	}{
		{"struct data", struct{ Name string }{"x"}, DefaultPlaceholderOptions(), tkerror.CodeInvalidInput},
		{"int keys", map[int]string{1: "x"}, DefaultPlaceholderOptions(), tkerror.CodeInvalidInput},
		{"no marker", map[string]string{"a": "b"}, PlaceholderOptions{}, tkerror.CodeInvalidInput},
		{"format without verb", map[string]string{"a": "b"}, PlaceholderOptions{Format: "<>"}, tkerror.CodeInvalidInput},
		{"broken format", map[string]string{"a": "b"}, PlaceholderOptions{Format: "(%s"}, tkerror.CodeInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Insert(":a", tt.data, tt.opts)
			if err == nil {
				t.Fatal("Insert() returned no error")
			}
			if !tkerror.HasCode(err, tt.code) {
				t.Errorf("Insert() error code = %v; want %v", tkerror.GetCode(err), tt.code)
			}
		})
	}
}

func TestInsertWithClean(t *testing.T) {
	opts := DefaultPlaceholderOptions()
	opts.Clean = &CleanOptions{Method: CleanText}

	result, err := Insert("My name is :name and I am :age years old.", map[string]string{"name": "Bob"}, opts)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if expected := "My name is Bob and I am years old."; result != expected {
		t.Errorf("Insert() = %q; want %q", result, expected)
	}
}

func TestInsertWithCleanFormat(t *testing.T) {
	opts := PlaceholderOptions{Format: `\{%s\}`, Clean: &CleanOptions{}}

	result, err := Insert("Hi {name}, {x}", map[string]string{"name": "Bob"}, opts)
	if err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	// the space in front of the leftover is glue and goes with it
	if expected := "Hi Bob,"; result != expected {
		t.Errorf("Insert() = %q; want %q", result, expected)
	}
}

func TestCleanInsert(t *testing.T) {
	text := DefaultPlaceholderOptions()
	text.Clean = &CleanOptions{Method: CleanText}

	html := DefaultPlaceholderOptions()
	html.Clean = &CleanOptions{Method: CleanHTML}

	htmlOnly := DefaultPlaceholderOptions()
	htmlOnly.Clean = &CleanOptions{Method: CleanHTML, SkipText: true}

	replaced := DefaultPlaceholderOptions()
	replaced.Clean = &CleanOptions{Replacement: "_"}

	braces := PlaceholderOptions{Format: `\{%s\}`, Clean: &CleanOptions{}}
	bracesHTML := PlaceholderOptions{Format: `\{%s\}`, Clean: &CleanOptions{Method: CleanHTML}}

	tests := []struct {
		name     string
		input    string
		opts     PlaceholderOptions
		expected string
	}{
		{"disabled", "Hello :name", DefaultPlaceholderOptions(), "Hello :name"},
		{"text glue removed", "Hello :name and :other", text, "Hello"},
		{"text leading placeholder", ":greeting or hello", text, "hello"},
		{"text nothing left over", "Hello Bob", text, "Hello Bob"},
		{"default method is text", "a :b c", replaced, "a_ c"},
		{"html attributes", `<img src=":src" alt=":alt" class="photo">`, html, `<img class="photo">`},
		{"html cascades into text", `<p title=":t">Hi :name</p>`, html, `<p>Hi</p>`},
		{"html without text pass", `<p title=":t">Hi :name</p>`, htmlOnly, `<p>Hi :name</p>`},
		{"format leftovers", "Hello {name} and {other} world", braces, "Hello world"},
		{"format leaves plain words", "Hello Bob", braces, "Hello Bob"},
		{"format html attribute", `<a href="{url}">{label}</a>`, bracesHTML, `<a></a>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CleanInsert(tt.input, tt.opts)
			if err != nil {
				t.Fatalf("CleanInsert() error = %v", err)
			}
			if result != tt.expected {
				t.Errorf("CleanInsert(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestCleanInsertNeedsMarker(t *testing.T) {
	tests := []struct {
		name string
		opts PlaceholderOptions
	}{
		{"no before no format", PlaceholderOptions{Clean: &CleanOptions{}}},
		{"format without verb", PlaceholderOptions{Format: "<>", Clean: &CleanOptions{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CleanInsert("Hello :name and :other world", tt.opts)
			if !tkerror.HasCode(err, tkerror.CodeInvalidInput) {
				t.Errorf("CleanInsert() = %q, %v; want invalid input", result, err)
			}
		})
	}
}

func TestCleanInsertUnknownMethod(t *testing.T) {
	opts := DefaultPlaceholderOptions()
	opts.Clean = &CleanOptions{Method: "pdf"}

	_, err := CleanInsert("x", opts)
	if !tkerror.HasCode(err, tkerror.CodeInvalidInput) {
		t.Errorf("CleanInsert() error = %v; want invalid input", err)
	}
}
