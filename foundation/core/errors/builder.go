// File: builder.go
// Title: Standardized Error Construction
// Description: Fluent builder and the standard constructors every textkit
//              package uses instead of fmt.Errorf or errors.New.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: Enhanced OutOfRange function with "validation failed:" prefix
// - 2026-10-16 v0.2.0: Typed codes, Duplicate and stringx/config shortcuts

package errors

import (
	"fmt"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// ErrorBuilder assembles a *tkerror.Error step by step. Module and
// operation end up in the details so callers can filter on them later.
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  tkerror.Severity
	code      tkerror.Code
}

// NewErrorBuilder starts an error for module with medium severity
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{module: module, details: map[string]interface{}{}, severity: tkerror.SeverityMedium}
}

func (b *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	b.operation = operation
	return b
}

func (b *ErrorBuilder) Message(message string) *ErrorBuilder {
	b.message = message
	return b
}

func (b *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	return b.Message(fmt.Sprintf(format, args...))
}

func (b *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	b.cause = cause
	return b
}

func (b *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	b.details[key] = value
	return b
}

func (b *ErrorBuilder) Details(details map[string]interface{}) *ErrorBuilder {
	for key, value := range details {
		b.Detail(key, value)
	}
	return b
}

func (b *ErrorBuilder) Severity(severity tkerror.Severity) *ErrorBuilder {
	b.severity = severity
	return b
}

func (b *ErrorBuilder) Code(code tkerror.Code) *ErrorBuilder {
	b.code = code
	return b
}

// Build creates the error. Without a code, defaultCode picks one from
// module and operation; without a message, "<module>.<operation> failed"
// is used.
func (b *ErrorBuilder) Build() *tkerror.Error {
	code := b.code
	if code == "" {
		code = defaultCode(b.module, b.operation)
	}

	message := b.message
	switch {
	case message != "":
	case b.operation != "":
		message = b.module + "." + b.operation + " failed"
	default:
		message = b.module + " operation failed"
	}

	b.details["module"] = b.module
	if b.operation != "" {
		b.details["operation"] = b.operation
	}

	err := tkerror.New(message)
	if b.cause != nil {
		err = tkerror.Wrap(b.cause, message)
	}
	return err.WithCode(code).WithOperation(b.operation).WithDetails(b.details).WithSeverity(b.severity)
}

// standard starts the builder shared by the constructors below
func standard(module, operation string, code tkerror.Code, severity tkerror.Severity) *ErrorBuilder {
	return NewErrorBuilder(module).Operation(operation).Code(code).Severity(severity)
}

// InvalidInput reports input that does not meet expected
func InvalidInput(module, operation string, input interface{}, expected string) *tkerror.Error {
	return standard(module, operation, tkerror.CodeInvalidInput, tkerror.SeverityLow).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// InvalidFormat reports input that could not be parsed; cause is the parser error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string, cause error) *tkerror.Error {
	return standard(module, operation, tkerror.CodeInvalidFormat, tkerror.SeverityLow).
		Messagef("%s.%s: cannot parse input as %s", module, operation, expectedFormat).
		Cause(cause).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationFailed wraps an unexpected failure; the code follows defaultCode
func OperationFailed(module, operation string, cause error) *tkerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Severity(tkerror.SeverityHigh).
		Cause(cause).
		Build()
}

func ValidationFailed(module, field string, value interface{}, reason string) *tkerror.Error {
	return standard(module, "validate_"+field, tkerror.CodeValidationFailed, tkerror.SeverityLow).
		Messagef("%s is invalid: %s", field, reason).
		Details(map[string]interface{}{"field": field, "value": value, "reason": reason}).
		Build()
}

// OutOfRange reports a value outside [min, max]
func OutOfRange(module, operation string, value, min, max interface{}) *tkerror.Error {
	return standard(module, operation, tkerror.CodeValueOutOfRange, tkerror.SeverityLow).
		Messagef("validation failed: %s.%s wants a value between %v and %v, got %v", module, operation, min, max, value).
		Details(map[string]interface{}{"value": value, "min": min, "max": max}).
		Build()
}

func NotFound(module, operation string, identifier interface{}) *tkerror.Error {
	return standard(module, operation, tkerror.CodeNotFound, tkerror.SeverityLow).
		Messagef("%v not found in %s", identifier, module).
		Detail("identifier", identifier).
		Build()
}

func Duplicate(module, operation string, identifier interface{}) *tkerror.Error {
	return standard(module, operation, tkerror.CodeDuplicateEntry, tkerror.SeverityHigh).
		Messagef("%s already has %v", module, identifier).
		Detail("identifier", identifier).
		Build()
}

// Shortcuts for the text engine

func StringxInvalidInput(operation string, input interface{}, expected string) *tkerror.Error {
	return InvalidInput(ModuleStringx, operation, input, expected)
}

func StringxInvalidPattern(operation, pattern string, cause error) *tkerror.Error {
	return InvalidFormat(ModuleStringx, operation, pattern, "regular expression", cause).
		WithCode(tkerror.CodeInvalidPattern)
}

func StringxUnsupportedMode(operation, mode string) *tkerror.Error {
	return standard(ModuleStringx, operation, tkerror.CodeUnsupportedMode, tkerror.SeverityLow).
		Messagef("%s has no %s mode", operation, mode).
		Detail("mode", mode).
		Build()
}

// Shortcuts for configuration

func ConfigLoadFailed(path string, cause error) *tkerror.Error {
	return standard(ModuleConfig, "load", tkerror.CodeMissingConfig, tkerror.SeverityHigh).
		Messagef("cannot load config %s", path).
		Cause(cause).
		Detail("path", path).
		Build()
}

func ConfigInvalid(key string, value interface{}, reason string) *tkerror.Error {
	return standard(ModuleConfig, "validate", tkerror.CodeInvalidConfig, tkerror.SeverityHigh).
		Messagef("config %s: %s", key, reason).
		Details(map[string]interface{}{"key": key, "value": value}).
		Build()
}
