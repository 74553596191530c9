// File: entry.go
// Title: Log Entry Structure
// Description: A single log record and the Fields map attached to it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-16 v0.2.0: Removed request/user correlation, sorted field keys

package log

import (
	"sort"
	"time"
)

// Entry is one record handed to a Formatter
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string        // Name of the emitting logger, see WithName
	Fields    Fields
	Error     error
	Duration  time.Duration // Set by timers
}

// Fields are structured key/value pairs, e.g. log.Fields{"width": 72}
type Fields map[string]interface{}

// Merge returns a new Fields holding f and other; other wins on conflicts
func (f Fields) Merge(other Fields) Fields {
	merged := make(Fields, len(f)+len(other))
	for _, src := range []Fields{f, other} {
		for k, v := range src {
			merged[k] = v
		}
	}
	return merged
}

// Keys returns the field names sorted, so formatters print a stable order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry stamps a record with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{Timestamp: time.Now(), Level: level, Message: message, Fields: Fields{}}
}
