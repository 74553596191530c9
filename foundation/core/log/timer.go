// File: timer.go
// Title: Performance Timer
// Description: Measures how long an operation takes and logs the result with
//              the duration attached to the entry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation of performance timers
// - 2026-10-16 v0.2.0: Reduced to Stop/StopWithError, duration carried on the entry

package log

import (
	"time"
)

// Timer logs how long an operation took once it is stopped. A Timer is
// meant for one goroutine.
type Timer struct {
	logger *Logger
	name   string
	start  time.Time
	extra  Fields
	level  Level
	done   bool
}

// NewTimer starts a timer for name. A nil logger only measures.
func NewTimer(logger *Logger, name string) *Timer {
	return &Timer{logger: logger, name: name, start: time.Now(), extra: Fields{}, level: LevelDebug}
}

// WithLevel changes the level of the success entry
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField attaches key to the entry written on stop
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.extra[key] = value
	return t
}

// Elapsed is the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<name> completed" and returns the elapsed time. Only the
// first call logs; later calls return 0.
func (t *Timer) Stop() time.Duration {
	return t.finish(nil)
}

// StopWithError logs "<name> failed" at warn level or above when err is
// set, otherwise it behaves like Stop.
func (t *Timer) StopWithError(err error) time.Duration {
	return t.finish(err)
}

func (t *Timer) finish(err error) time.Duration {
	if t.done {
		return 0
	}
	t.done = true
	took := t.Elapsed()
	if t.logger == nil {
		return took
	}

	level, suffix := t.level, " completed"
	if err != nil {
		suffix = " failed"
		if level < LevelWarn {
			level = LevelWarn
		}
	}
	t.logger.log(level, t.name+suffix, err, took, []Fields{t.extra.Merge(Fields{"operation": t.name})})
	return took
}
