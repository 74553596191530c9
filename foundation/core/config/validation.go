// File: validation.go
// Title: Configuration Validation
// Description: Rule based validation of configuration values: presence,
//              type, numeric bounds, allowed values and patterns.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with validation rules and struct binding
// - 2026-10-16 v0.2.0: OneOf rule, results as structured errors, struct binding removed

package config

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // Key must be present
	Type     string   // "string", "int", "bool", "duration" or "[]string"
	Min      *int     // Inclusive lower bound for ints
	Max      *int     // Inclusive upper bound for ints
	OneOf    []string // Allowed values for strings, compared case-insensitively
	Pattern  string   // Regular expression strings must match
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool             `json:"valid"`
	Errors []*tkerror.Error `json:"errors,omitempty"`
}

// Err returns the first validation error, or nil when the result is valid
func (r *ValidationResult) Err() error {
	if r.Valid || len(r.Errors) == 0 {
		return nil
	}
	return r.Errors[0]
}

// IntPtr is a helper for building Min and Max bounds
func IntPtr(v int) *int {
	return &v
}

// Validate checks every rule in key order and collects all failures
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) *tkerror.Error {
	value, ok := c.value(key)
	if !ok {
		if rule.Required {
			return errors.ConfigInvalid(key, nil, "required value is missing")
		}
		return nil
	}

	switch rule.Type {
	case "", "string":
	case "int":
		n, isInt := toInt(value)
		if !isInt {
			return errors.ConfigInvalid(key, value, "expected an integer")
		}
		if rule.Min != nil && n < *rule.Min {
			return errors.ConfigInvalid(key, value, fmt.Sprintf("must be at least %d", *rule.Min))
		}
		if rule.Max != nil && n > *rule.Max {
			return errors.ConfigInvalid(key, value, fmt.Sprintf("must be at most %d", *rule.Max))
		}
		return nil
	case "bool":
		if _, isBool := value.(bool); isBool {
			return nil
		}
		if s, isString := value.(string); isString {
			if _, err := strconv.ParseBool(strings.TrimSpace(s)); err == nil {
				return nil
			}
		}
		return errors.ConfigInvalid(key, value, "expected a boolean")
	case "duration":
		if _, isDuration := toDuration(value); !isDuration {
			return errors.ConfigInvalid(key, value, "expected a duration such as 90s or 5m")
		}
		return nil
	case "[]string":
		switch value.(type) {
		case []interface{}, []string, string:
			return nil
		}
		return errors.ConfigInvalid(key, value, "expected a list of strings")
	default:
		return errors.ConfigInvalid(key, value, "unknown rule type "+rule.Type)
	}

	s, isString := value.(string)
	if !isString {
		return errors.ConfigInvalid(key, value, "expected a string")
	}

	if len(rule.OneOf) > 0 {
		allowed := false
		for _, candidate := range rule.OneOf {
			if strings.EqualFold(strings.TrimSpace(s), candidate) {
				allowed = true
				break
			}
		}
		if !allowed {
			return errors.ConfigInvalid(key, value, "must be one of "+strings.Join(rule.OneOf, ", "))
		}
	}

	if rule.Pattern != "" {
		re, err := regexp.Compile(rule.Pattern)
		if err != nil {
			return errors.ConfigInvalid(key, rule.Pattern, "invalid pattern: "+err.Error())
		}
		if !re.MatchString(s) {
			return errors.ConfigInvalid(key, value, "does not match "+rule.Pattern)
		}
	}
	return nil
}
