// File: config.go
// Title: Core Configuration Management Implementation
// Description: Loads TOML or YAML configuration files into a nested map and
//              exposes typed, dot-notation getters. Environment variables
//              with the configured prefix override file values.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-16 v0.2.0: Standard error builders, dropped tracing ids and lookup caches,
//   GetStringMap and GetDuration
// - 2026-10-16 v0.2.1: FormatAuto is the zero Format

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/core/log"
)

// Format is the syntax of a configuration file
type Format int

const (
	FormatAuto Format = iota // detect from the file extension
	FormatTOML
	FormatYAML
)

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

var formatNames = map[Format]string{FormatTOML: "toml", FormatYAML: "yaml", FormatAuto: "auto"}

// Config holds parsed configuration data. Reads and reloads may run concurrently.
type Config struct {
	mu        sync.RWMutex
	data      map[string]interface{}
	filePath  string
	format    Format
	envPrefix string
	defaults  map[string]interface{}
	handlers  []ChangeHandler
	logger    *log.Logger

	watch *watchState
}

// ChangeHandler is called after the watched file was reloaded
type ChangeHandler func(oldConfig, newConfig *Config)

// LoadOptions controls LoadWithOptions
type LoadOptions struct {
	Format    Format                 // File format (default: detect from extension)
	EnvPrefix string                 // Environment variable prefix, TEXTKIT -> TEXTKIT_WRAP_WIDTH
	Defaults  map[string]interface{} // Values used where the file is silent
	Watch     bool                   // Reload on file changes
	Logger    *log.Logger            // Receives load and reload events
}

// Load reads filePath, picking the format from its extension
func Load(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{Format: FormatAuto})
}

// LoadWithOptions reads and parses filePath. An empty path is a validation
// error, an unreadable file a MISSING_CONFIG error.
func LoadWithOptions(filePath string, options LoadOptions) (*Config, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.ValidationFailed(errors.ModuleConfig, "path", filePath, "cannot be empty")
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.ConfigLoadFailed(filePath, err)
	}

	data, err := parseContent(content, format)
	if err != nil {
		return nil, tkerror.Wrap(err, "failed to parse config file").
			WithDetail("path", filePath)
	}

	logger := options.Logger
	if logger == nil {
		logger = log.Discard()
	}

	cfg := &Config{
		data:      mergeDefaults(data, options.Defaults),
		filePath:  filePath,
		format:    format,
		envPrefix: options.EnvPrefix,
		defaults:  options.Defaults,
		logger:    logger.WithName("config"),
	}
	cfg.logger.Info("configuration loaded", log.Fields{"path": filePath, "format": format.String()})

	if options.Watch {
		if err := cfg.startWatching(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// LoadFromString parses configuration content. FormatAuto is treated as TOML.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	data, err := parseContent([]byte(content), format)
	if err != nil {
		return nil, err
	}

	return &Config{data: data, format: format, logger: log.Discard()}, nil
}

// New returns an empty configuration that only reads defaults and environment
func New(envPrefix string, defaults map[string]interface{}) *Config {
	return &Config{
		data:      mergeDefaults(nil, defaults),
		format:    FormatAuto,
		envPrefix: envPrefix,
		defaults:  defaults,
		logger:    log.Discard(),
	}
}

func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

func parseContent(content []byte, format Format) (map[string]interface{}, error) {
	data := make(map[string]interface{})

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(content, &data); err != nil {
			return nil, errors.InvalidFormat(errors.ModuleConfig, "parse", format.String(), "valid TOML", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(content, &data); err != nil {
			return nil, errors.InvalidFormat(errors.ModuleConfig, "parse", format.String(), "valid YAML", err)
		}
		if data == nil {
			data = make(map[string]interface{})
		}
	default:
		return nil, errors.InvalidInput(errors.ModuleConfig, "parse", format.String(), "toml or yaml")
	}

	return data, nil
}

// mergeDefaults deep-merges defaults underneath data. Keys use dot notation
// or nested maps.
func mergeDefaults(data, defaults map[string]interface{}) map[string]interface{} {
	result := deepCopyMap(data)
	for key, value := range defaults {
		if _, exists := lookup(result, strings.Split(key, ".")); !exists {
			setNested(result, key, value)
		}
	}
	return result
}

func lookup(data map[string]interface{}, keys []string) (interface{}, bool) {
	current := data
	for i, k := range keys {
		value, ok := current[k]
		if !ok {
			return nil, false
		}
		if i == len(keys)-1 {
			return value, true
		}
		next, ok := value.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

func setNested(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data
	for _, k := range keys[:len(keys)-1] {
		next, ok := current[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			current[k] = next
		}
		current = next
	}
	current[keys[len(keys)-1]] = value
}

func deepCopyMap(src map[string]interface{}) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		switch val := v.(type) {
		case map[string]interface{}:
			dst[k] = deepCopyMap(val)
		case []interface{}:
			dst[k] = append([]interface{}(nil), val...)
		default:
			dst[k] = v
		}
	}
	return dst
}

// envKey converts wrap.width to WRAP_WIDTH, prefixed when a prefix is set
func (c *Config) envKey(key string) string {
	envKey := strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	if c.envPrefix != "" {
		envKey = strings.ToUpper(c.envPrefix) + "_" + envKey
	}
	return envKey
}

// value returns the effective raw value for key: environment first, then file data
func (c *Config) value(key string) (interface{}, bool) {
	if c.envPrefix != "" {
		if env, ok := os.LookupEnv(c.envKey(key)); ok {
			return env, true
		}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return lookup(c.data, strings.Split(key, "."))
}

// GetString formats non-string values with %v
func (c *Config) GetString(key string, defaultValue ...string) string {
	value, ok := c.value(key)
	if !ok || value == nil {
		return first(defaultValue, "")
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", value)
}

// GetInt falls back to the default when the value is not a whole number
func (c *Config) GetInt(key string, defaultValue ...int) int {
	value, ok := c.value(key)
	if !ok {
		return first(defaultValue, 0)
	}
	if n, ok := toInt(value); ok {
		return n
	}
	return first(defaultValue, 0)
}

// toInt accepts what the TOML and YAML decoders produce plus env strings
func toInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return i, true
		}
	}
	return 0, false
}

// GetDuration returns a duration. Strings use time.ParseDuration syntax
// ("90s", "5m"); plain numbers are seconds.
func (c *Config) GetDuration(key string, defaultValue ...time.Duration) time.Duration {
	value, ok := c.value(key)
	if !ok {
		return first(defaultValue, 0)
	}
	if d, ok := toDuration(value); ok {
		return d
	}
	return first(defaultValue, 0)
}

func toDuration(value interface{}) (time.Duration, bool) {
	if s, ok := value.(string); ok {
		s = strings.TrimSpace(s)
		if d, err := time.ParseDuration(s); err == nil {
			return d, true
		}
		value = s
	}
	if n, ok := toInt(value); ok {
		return time.Duration(n) * time.Second, true
	}
	return 0, false
}

// GetBool accepts booleans and strconv.ParseBool strings
func (c *Config) GetBool(key string, defaultValue ...bool) bool {
	value, ok := c.value(key)
	if !ok {
		return first(defaultValue, false)
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			return b
		}
	}
	return first(defaultValue, false)
}

// GetStringSlice reads a list; a string value is split on commas
func (c *Config) GetStringSlice(key string, defaultValue ...[]string) []string {
	value, ok := c.value(key)
	if !ok {
		return first(defaultValue, nil)
	}
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...)
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			result[i] = fmt.Sprintf("%v", item)
		}
		return result
	case string:
		parts := strings.Split(v, ",")
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		return parts
	}
	return first(defaultValue, nil)
}

// GetStringMap returns a table of strings such as [macros]. Non-string
// values are formatted with %v; nested tables are skipped.
func (c *Config) GetStringMap(key string) map[string]string {
	value, ok := c.value(key)
	if !ok {
		return nil
	}
	table, ok := value.(map[string]interface{})
	if !ok {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]string, len(table))
	for k, v := range table {
		if _, nested := v.(map[string]interface{}); nested {
			continue
		}
		if s, ok := v.(string); ok {
			result[k] = s
			continue
		}
		result[k] = fmt.Sprintf("%v", v)
	}
	return result
}

func first[T any](values []T, fallback T) T {
	if len(values) > 0 {
		return values[0]
	}
	return fallback
}

// Has reports whether key is set in the file, the defaults or the environment
func (c *Config) Has(key string) bool {
	_, ok := c.value(key)
	return ok
}

// Set changes key in memory only
func (c *Config) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	setNested(c.data, key, value)
}

// GetAll returns a copy of the merged data
func (c *Config) GetAll() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return deepCopyMap(c.data)
}

// Keys returns every leaf key in dot notation, sorted
func (c *Config) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var keys []string
	var walk func(prefix string, m map[string]interface{})
	walk = func(prefix string, m map[string]interface{}) {
		for k, v := range m {
			full := k
			if prefix != "" {
				full = prefix + "." + k
			}
			if nested, ok := v.(map[string]interface{}); ok {
				walk(full, nested)
				continue
			}
			keys = append(keys, full)
		}
	}
	walk("", c.data)
	sort.Strings(keys)
	return keys
}

// FilePath is empty for configurations not read from a file
func (c *Config) FilePath() string {
	return c.filePath
}

func (c *Config) Format() Format {
	return c.format
}

// OnChange registers a handler called after each successful reload
func (c *Config) OnChange(handler ChangeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// String summarizes the configuration without its values
func (c *Config) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	parts := []string{"format: " + c.format.String()}
	if c.filePath != "" {
		parts = append(parts, "path: "+c.filePath)
	}
	if c.envPrefix != "" {
		parts = append(parts, "envPrefix: "+c.envPrefix)
	}
	if c.watch != nil {
		parts = append(parts, "watching: true")
	}
	parts = append(parts, fmt.Sprintf("keys: %d", len(c.data)))
	return "Config{" + strings.Join(parts, ", ") + "}"
}
