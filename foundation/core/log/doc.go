// Package log provides the structured logger used by textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Leveled logging with persistent fields, named child loggers,
//              JSON/text/console/logfmt output and severity-aware logging of
//              textkit errors. Loggers are safe for concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: Synchronous writer, stderr default
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON})
//	reg := logger.WithName("registry")
//	reg.Debug("operation registered", log.Fields{"name": "wrap"})
//
//	timer := logger.StartTimer("truncate")
//	out, err := stringx.Truncate(text, 80, opts)
//	timer.StopWithError(err)
package log
