// File: case_test.go
// Title: Unit Tests for Case Conversion
// Description: Table tests for snake, kebab, camel, Pascal and title case,
//              round trips between them and the memo tables behind them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-16 v0.2.0: Memo table tests, collapsed separators

package stringx

import (
	"fmt"
	"sync"
	"testing"
)

func TestCaseConversions(t *testing.T) {
	converters := []struct {
		name  string
		fn    func(string) string
		cases [][2]string // input, want
	}{
		{"snake", ToSnakeCase, [][2]string{
			{"", ""}, {"hello", "hello"}, {"helloWorld", "hello_world"}, {"HelloWorld", "hello_world"},
			{"hello world", "hello_world"}, {"hello-world", "hello_world"}, {"hello world-test", "hello_world_test"},
			{"hello_world", "hello_world"}, {"HTTPServer", "httpserver"}, {"A", "a"},
			{"version2API", "version2_api"}, {"hello__world", "hello_world"}, {"hello___world", "hello_world"},
			{"Hello World", "hello_world"}, {"helloWörld", "hello_wörld"},
		}},
		{"kebab", ToKebabCase, [][2]string{
			{"", ""}, {"hello", "hello"}, {"helloWorld", "hello-world"}, {"HelloWorld", "hello-world"},
			{"hello_world", "hello-world"}, {"hello world", "hello-world"}, {"hello world_test", "hello-world-test"},
			{"hello-world", "hello-world"}, {"HTTPServer", "httpserver"}, {"A", "a"},
			{"version2API", "version2-api"}, {"hello--world", "hello-world"}, {"helloWörld", "hello-wörld"},
		}},
		{"camel", ToCamelCase, [][2]string{
			{"", ""}, {"hello", "hello"}, {"hello_world", "helloWorld"}, {"hello-world", "helloWorld"},
			{"hello world", "helloWorld"}, {"hello_world-test case", "helloWorldTestCase"},
			{"helloWorld", "helloWorld"}, {"HelloWorld", "helloWorld"}, {"a", "a"}, {"a_b_c", "aBC"},
			{"version_2_api", "version2Api"}, {"hello_wörld", "helloWörld"}, {"hello___world", "helloWorld"},
		}},
		{"pascal", ToPascalCase, [][2]string{
			{"", ""}, {"hello", "Hello"}, {"hello_world", "HelloWorld"}, {"hello-world", "HelloWorld"},
			{"hello world", "HelloWorld"}, {"hello_world-test case", "HelloWorldTestCase"},
			{"HelloWorld", "HelloWorld"}, {"helloWorld", "HelloWorld"}, {"a", "A"}, {"a_b_c", "ABC"},
			{"version_2_api", "Version2Api"}, {"hello_wörld", "HelloWörld"}, {"hello___world", "HelloWorld"},
		}},
		{"title", ToTitleCase, [][2]string{
			{"", ""}, {"hello", "Hello"}, {"hello world", "Hello World"}, {"Hello World", "Hello World"},
			{"HELLO WORLD", "Hello World"}, {"heLLo WoRLd", "Hello World"}, {"hello, world!", "Hello, World!"},
			{"version 2 api", "Version 2 Api"}, {"hello wörld", "Hello Wörld"}, {"a", "A"},
		}},
	}

	for _, conv := range converters {
		t.Run(conv.name, func(t *testing.T) {
			for _, c := range conv.cases {
				if got := conv.fn(c[0]); got != c[1] {
					t.Errorf("%s(%q) = %q; want %q", conv.name, c[0], got, c[1])
				}
			}
		})
	}
}

// snake and kebab output must survive a trip through camel/Pascal case
func TestCaseConversionRoundTrip(t *testing.T) {
	for _, input := range []string{"hello_world", "helloWorld", "HelloWorld", "hello-world", "hello world"} {
		if snake := ToSnakeCase(input); ToSnakeCase(ToCamelCase(snake)) != snake {
			t.Errorf("snake round trip of %q lost information", input)
		}
		if kebab := ToKebabCase(input); ToKebabCase(ToPascalCase(kebab)) != kebab {
			t.Errorf("kebab round trip of %q lost information", input)
		}
	}
}

func TestMemoTable(t *testing.T) {
	m := newMemoTable(4)
	calls := 0
	upper := func(s string) string {
		calls++
		return s + "!"
	}

	if got := m.lookup("a", upper); got != "a!" {
		t.Fatalf("lookup() = %q; want %q", got, "a!")
	}
	m.lookup("a", upper)
	if calls != 1 {
		t.Errorf("compute called %d times; want 1", calls)
	}

	for i := 0; i < 10; i++ {
		m.lookup(fmt.Sprint(i), upper)
	}
	if n := m.len(); n > 4 {
		t.Errorf("memo table grew to %d entries; limit is 4", n)
	}

	m.reset()
	if n := m.len(); n != 0 {
		t.Errorf("len() after reset = %d; want 0", n)
	}
}

func TestCaseConversionCached(t *testing.T) {
	ResetCaches()
	if CacheSize() != 0 {
		t.Fatalf("CacheSize() after reset = %d; want 0", CacheSize())
	}

	first := ToSnakeCase("SomeIdentifier")
	second := ToSnakeCase("SomeIdentifier")
	if first != second || first != "some_identifier" {
		t.Errorf("ToSnakeCase() = %q then %q; want %q", first, second, "some_identifier")
	}
	if CacheSize() != 1 {
		t.Errorf("CacheSize() = %d; want 1", CacheSize())
	}
}

func TestCaseConversionConcurrent(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				input := fmt.Sprintf("%s_%s", words[n%len(words)], words[j%len(words)])
				if got := ToSnakeCase(ToPascalCase(input)); got != input {
					t.Errorf("round trip of %q = %q", input, got)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
