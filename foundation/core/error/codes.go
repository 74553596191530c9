// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across textkit. Codes classify
//              failures of the text engine, the operation registry and the
//              configuration layer, and map onto CLI exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-16 v0.2.0: Reduced to textkit codes, exit code mapping replaces HTTP status

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeDuplicateEntry   Code = "DUPLICATE_ENTRY"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Text engine
	CodeInvalidTemplate Code = "INVALID_TEMPLATE"
	CodeInvalidPattern  Code = "INVALID_PATTERN"
	CodeUnsupportedMode Code = "UNSUPPORTED_MODE"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeDuplicateEntry, CodeInvalidOperation,
		CodeInvalidTemplate, CodeInvalidPattern, CodeUnsupportedMode,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidTemplate, CodeInvalidPattern, CodeUnsupportedMode:
		return "text"
	case CodeNotFound, CodeDuplicateEntry, CodeInvalidOperation:
		return "registry"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit status the CLI uses for this code.
// Usage errors exit with 2, configuration errors with 3, everything else with 1.
func (c Code) ExitCode() int {
	switch c {
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength, CodeInvalidTemplate, CodeInvalidPattern,
		CodeUnsupportedMode, CodeNotFound:
		return 2
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return 3
	default:
		return 1
	}
}
