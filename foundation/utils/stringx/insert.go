// File: insert.go
// Title: Placeholder Substitution
// Description: Replaces named (":name") or positional ("?") placeholders in
//              a template. All placeholders are found in a single scan so a
//              value is never matched as another placeholder.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
// - 2026-10-16 v0.1.1: Single-scan substitution replaces hash tokens

package stringx

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// PlaceholderOptions controls Insert and CleanInsert.
type PlaceholderOptions struct {
	Before string        // Marker in front of a placeholder name
	After  string        // Marker after a placeholder name
	Escape string        // Prefix that protects a literal Before
	Format string        // Regular expression with %s for the quoted name; overrides Before/After/Escape
	Clean  *CleanOptions // Remove leftover placeholders afterwards; nil disables
}

// DefaultPlaceholderOptions returns ":name" placeholders escaped by a backslash.
func DefaultPlaceholderOptions() PlaceholderOptions {
	return PlaceholderOptions{Before: ":", Escape: `\`}
}

type placeholderData struct {
	keys   []string
	values map[string]string
	list   []string
	named  bool
}

func (d placeholderData) empty() bool {
	return len(d.keys) == 0 && len(d.list) == 0
}

// Insert substitutes data into template.
//
// data may be nil, a map with string keys, a slice, or a single scalar
// treated as a one-element slice. A slice fills "?" markers left to right
// when the template has any; otherwise its elements are addressed by index
// (":0", ":1", ...). Nested slices and maps render as the empty string.
func Insert(template string, data any, opts PlaceholderOptions) (string, error) {
	if opts.Before == "" && opts.Format == "" {
		return "", errors.StringxInvalidInput("insert", opts, "a Before marker or a Format pattern")
	}

	d, err := collectPlaceholderData(data)
	if err != nil {
		return "", err
	}

	result := template
	switch {
	case d.empty():
	case !d.named && strings.Contains(template, "?"):
		result = fillPositional(template, d.list)
	default:
		if !d.named {
			d = indexKeys(d.list)
		}
		if result, err = replaceNamed(template, d, opts); err != nil {
			return "", err
		}
	}

	if opts.Clean == nil {
		return result, nil
	}
	return CleanInsert(result, opts)
}

func collectPlaceholderData(data any) (placeholderData, error) {
	if data == nil {
		return placeholderData{}, nil
	}
	if s, ok := data.(fmt.Stringer); ok {
		return placeholderData{list: []string{s.String()}}, nil
	}

	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return placeholderData{}, errors.StringxInvalidInput("insert", v.Type().String(), "map with string keys")
		}
		d := placeholderData{named: true, values: make(map[string]string, v.Len())}
		iter := v.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			d.keys = append(d.keys, key)
			d.values[key] = placeholderValue(iter.Value())
		}
		return d, nil
	case reflect.Slice, reflect.Array:
		d := placeholderData{list: make([]string, v.Len())}
		for i := range d.list {
			d.list[i] = placeholderValue(v.Index(i))
		}
		return d, nil
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return placeholderData{list: []string{fmt.Sprint(data)}}, nil
	default:
		return placeholderData{}, errors.StringxInvalidInput("insert", v.Type().String(), "map, slice or scalar values")
	}
}

func placeholderValue(v reflect.Value) string {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Invalid, reflect.Map, reflect.Slice, reflect.Array:
		return ""
	}
	return fmt.Sprint(v.Interface())
}

func indexKeys(list []string) placeholderData {
	d := placeholderData{named: true, values: make(map[string]string, len(list))}
	for i, value := range list {
		key := strconv.Itoa(i)
		d.keys = append(d.keys, key)
		d.values[key] = value
	}
	return d
}

// fillPositional replaces each "?" with the next value. Values are not
// rescanned and surplus markers stay in place.
func fillPositional(template string, values []string) string {
	var b strings.Builder
	next := 0
	for _, r := range template {
		if r == '?' && next < len(values) {
			b.WriteString(values[next])
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// replaceNamed finds every placeholder in one scan of template, so a
// substituted value is never searched again. Longer keys are tried first:
// ":name2" is never read as ":name" followed by "2".
func replaceNamed(template string, d placeholderData, opts PlaceholderOptions) (string, error) {
	keys := append([]string(nil), d.keys...)
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] > keys[j]
	})

	whole := make([]*regexp.Regexp, len(keys))
	alternatives := make([]string, len(keys))
	for i, key := range keys {
		expr, err := placeholderExpr(key, opts)
		if err != nil {
			return "", err
		}
		alternatives[i] = "(?:" + expr + ")"
		whole[i] = regexp.MustCompile("^(?:" + expr + ")$")
	}
	scan := regexp.MustCompile(strings.Join(alternatives, "|"))

	escape := opts.Escape
	if opts.Format != "" {
		escape = ""
	}
	unescape := func(text string) string {
		if escape == "" {
			return text
		}
		return strings.ReplaceAll(text, escape+opts.Before, opts.Before)
	}

	var b strings.Builder
	last := 0
	for _, m := range scan.FindAllStringIndex(template, -1) {
		if escape != "" && strings.HasSuffix(template[:m[0]], escape) {
			continue
		}
		match := template[m[0]:m[1]]
		for i, re := range whole {
			if re.MatchString(match) {
				b.WriteString(unescape(template[last:m[0]]))
				b.WriteString(d.values[keys[i]])
				last = m[1]
				break
			}
		}
	}
	b.WriteString(unescape(template[last:]))
	return b.String(), nil
}

// placeholderExpr is the regular expression matching the placeholder for key
func placeholderExpr(key string, opts PlaceholderOptions) (string, error) {
	if opts.Format == "" {
		return regexp.QuoteMeta(opts.Before + key + opts.After), nil
	}
	if !strings.Contains(opts.Format, "%s") {
		return "", errors.StringxInvalidInput("insert", opts.Format, "format containing %s")
	}
	expr := strings.ReplaceAll(opts.Format, "%s", regexp.QuoteMeta(key))
	if _, err := regexp.Compile(expr); err != nil {
		return "", errors.StringxInvalidPattern("insert", expr, err)
	}
	return expr, nil
}
