// Package error provides the structured error type used throughout textkit.
//
// Package: error
// Title: textkit Error Handling
// Description: Errors carry a code, a severity, free-form details, the
//              operation that failed and a captured stack trace. They stay
//              compatible with the standard errors package through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-16 v0.2.0: Trimmed to the fields textkit uses, errors.As based lookups
//
// Usage:
//
//	import tkerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := tkerror.New("width must be positive").
//		WithCode(tkerror.CodeInvalidInput).
//		WithOperation("Wrap").
//		WithDetail("width", 0)
//
//	if tkerror.HasCode(err, tkerror.CodeInvalidInput) {
//		os.Exit(tkerror.GetCode(err).ExitCode())
//	}
package error
