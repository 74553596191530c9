// File: standards.go
// Title: Error Standards for textkit
// Description: Module identifiers and the default code assigned to each
//              module operation, plus helpers that read module and operation
//              back out of a standardized error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2025-01-25 v0.1.1: Fixed import and type reference issues
// - 2026-10-16 v0.2.0: textkit modules, typed codes, chain-aware lookups

package errors

import (
	"errors"
	"strings"

	tkerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx  = "stringx"
	ModuleConfig   = "config"
	ModuleLog      = "log"
	ModuleRegistry = "registry"
	ModuleSettings = "settings"
	ModuleCLI      = "cli"
)

// defaultCode picks a code for a module operation when the caller did not set one
func defaultCode(module, operation string) tkerror.Code {
	op := strings.ToLower(operation)
	switch module {
	case ModuleStringx:
		switch {
		case strings.Contains(op, "format"), strings.Contains(op, "pattern"):
			return tkerror.CodeInvalidPattern
		case strings.Contains(op, "insert"), strings.Contains(op, "template"):
			return tkerror.CodeInvalidTemplate
		case strings.Contains(op, "length"):
			return tkerror.CodeInvalidLength
		default:
			return tkerror.CodeInvalidInput
		}
	case ModuleConfig, ModuleSettings:
		switch {
		case strings.Contains(op, "load"), strings.Contains(op, "read"):
			return tkerror.CodeMissingConfig
		case strings.Contains(op, "validat"):
			return tkerror.CodeInvalidConfig
		default:
			return tkerror.CodeConfigError
		}
	case ModuleRegistry:
		switch {
		case strings.Contains(op, "register"):
			return tkerror.CodeDuplicateEntry
		case strings.Contains(op, "call"), strings.Contains(op, "get"):
			return tkerror.CodeNotFound
		default:
			return tkerror.CodeInvalidOperation
		}
	default:
		return tkerror.CodeUnknown
	}
}

func moduleDetails(err error) map[string]interface{} {
	var e *tkerror.Error
	if errors.As(err, &e) {
		return e.Details()
	}
	return nil
}

// ExtractDetails returns the details of the outermost structured error in err's chain
func ExtractDetails(err error) map[string]interface{} {
	return moduleDetails(err)
}

// ExtractModule extracts the module name from a standardized error
func ExtractModule(err error) string {
	module, _ := moduleDetails(err)["module"].(string)
	return module
}

// ExtractOperation extracts the operation name from a standardized error
func ExtractOperation(err error) string {
	operation, _ := moduleDetails(err)["operation"].(string)
	return operation
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return err != nil && ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return IsModuleError(err, module) && ExtractOperation(err) == operation
}
