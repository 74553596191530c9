// File: random_test.go
// Title: Random Token, UUID and Comparison Tests
// Description: Character set, length and uniqueness checks for the random
//              helpers plus the constant-time comparison.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation for random generation
// - 2026-10-16 v0.2.0: Tokens, UUID and Equals only

package stringx

import (
	"regexp"
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		charset string
		allowed string
		want    int
	}{
		{"default charset", 12, "", Alphanumeric, 12},
		{"hex", 32, "0123456789abcdef", "0123456789abcdef", 32},
		{"single character", 4, "x", "x", 4},
		{"zero length", 0, "abc", "", 0},
		{"negative length", -3, "abc", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RandomString(tt.length, tt.charset)
			if err != nil {
				t.Fatalf("RandomString() error = %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("RandomString() = %q; want length %d", got, tt.want)
			}
			for _, r := range got {
				if !strings.ContainsRune(tt.allowed, r) {
					t.Errorf("RandomString() produced %q outside %q", r, tt.allowed)
				}
			}
		})
	}

	if got, _ := RandomString(4, "x"); got != "xxxx" {
		t.Errorf("RandomString(4, \"x\") = %q", got)
	}
}

func TestRandomStringUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		token, err := RandomString(16, "")
		if err != nil {
			t.Fatal(err)
		}
		if seen[token] {
			t.Fatalf("RandomString() repeated %q after %d draws", token, i)
		}
		seen[token] = true
	}
}

func TestUUID(t *testing.T) {
	pattern := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		id := UUID()
		if !pattern.MatchString(id) {
			t.Fatalf("UUID() = %q; not a version 4 UUID", id)
		}
		if seen[id] {
			t.Fatalf("UUID() repeated %q", id)
		}
		seen[id] = true
	}
}

func TestEquals(t *testing.T) {
	cases := map[[2]string]bool{
		{"secret", "secret"}: true,
		{"secret", "Secret"}: false,
		{"secret", "sec"}:    false,
		{"", ""}:             true,
		{"päss", "päss"}:     true,
	}
	for in, want := range cases {
		if got := Equals(in[0], in[1]); got != want {
			t.Errorf("Equals(%q, %q) = %v; want %v", in[0], in[1], got, want)
		}
	}
}

func BenchmarkRandomString(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = RandomString(16, Alphanumeric)
	}
}
