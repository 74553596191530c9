// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output. textkit logs operations at
//              debug, configuration events at info and failures at warn or error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-16 v0.2.0: Dropped the fatal level, the CLI exits through cobra

package log

import (
	"strings"
)

// Level orders entries by importance; entries below a logger's minimum
// level are dropped.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelAudit // written whatever the minimum
)

var levelNames = [...]struct{ long, short, color string }{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

// spellings accepted by ParseLevel besides the long and short names
var levelSynonyms = map[string]Level{
	"information": LevelInfo,
	"warning":     LevelWarn,
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString is the three letter tag of the text formats
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color is the ANSI escape that starts a console line of this level
func (l Level) Color() string {
	if !l.valid() {
		return "\033[0m"
	}
	return levelNames[l].color
}

// ShouldLog reports whether l passes a logger set to minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel reads a level name in any case. Unknown names yield LevelInfo
// and a *ParseError.
func ParseLevel(name string) (Level, error) {
	wanted := strings.ToLower(strings.TrimSpace(name))
	for l, names := range levelNames {
		if wanted == names.long || wanted == strings.ToLower(names.short) {
			return Level(l), nil
		}
	}
	if l, ok := levelSynonyms[wanted]; ok {
		return l, nil
	}
	return LevelInfo, &ParseError{Input: name, Type: "level"}
}

// ParseError reports a level or format name that is not known
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is used when nothing is configured
func DefaultLevel() Level {
	return LevelWarn
}
