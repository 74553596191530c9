package registry

import (
	"strconv"
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// Args are the named parameters of a call, e.g. from --arg width=20
type Args map[string]string

// ParseArgs turns key=value pairs into Args. Keys keep their case so they
// can name placeholders; later pairs win.
func ParseArgs(pairs []string) (Args, error) {
	args := make(Args, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.InvalidInput(errors.ModuleRegistry, "parse_args", pair, "key=value")
		}
		args[key] = value
	}
	return args, nil
}

// Has reports whether key was given
func (a Args) Has(key string) bool {
	_, ok := a[key]
	return ok
}

// String returns the value of key or def
func (a Args) String(key, def string) string {
	if value, ok := a[key]; ok {
		return value
	}
	return def
}

// Int returns key parsed as an integer, or def when key is absent
func (a Args) Int(key string, def int) (int, error) {
	value, ok := a[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, errors.InvalidInput(errors.ModuleRegistry, "args", value, "integer for "+key)
	}
	return n, nil
}

// Bool returns key parsed as a boolean, or def when key is absent
func (a Args) Bool(key string, def bool) (bool, error) {
	value, ok := a[key]
	if !ok {
		return def, nil
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return false, errors.InvalidInput(errors.ModuleRegistry, "args", value, "boolean for "+key)
	}
	return b, nil
}

// List splits key on commas, dropping empty entries
func (a Args) List(key string) []string {
	value, ok := a[key]
	if !ok {
		return nil
	}
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Without returns a copy of a with the given keys removed
func (a Args) Without(keys ...string) Args {
	result := make(Args, len(a))
	for k, v := range a {
		result[k] = v
	}
	for _, k := range keys {
		delete(result, k)
	}
	return result
}
