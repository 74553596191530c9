// Package errors provides the standardized error constructors shared by all
// textkit packages.
//
// Package: errors
// Title: textkit Error Standards
// Description: Every error raised by textkit is a *error.Error whose details
//              carry the module and the operation that failed. Constructors
//              here pick a matching code and severity so that callers can
//              switch on codes and the CLI can map them to exit statuses.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-16 v0.2.0: textkit modules and codes
//
// Usage:
//
//	if width <= 0 {
//		return "", errors.StringxInvalidInput("Wrap", width, "positive width")
//	}
//
//	if errors.IsModuleError(err, errors.ModuleStringx) {
//		op := errors.ExtractOperation(err)
//		...
//	}
package errors
