// File: severity.go
// Title: Error Severity Levels
// Description: Severity of an error, derived from its code unless set
//              explicitly. The logger reports it next to the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-16 v0.2.0: Severity mapping for textkit codes

package error

// Severity ranks how serious an error is
type Severity int

const (
	SeverityLow      Severity = iota // bad caller input: negative width, malformed template
	SeverityMedium                   // failure the caller can usually work around
	SeverityHigh                     // broken configuration or registry state
	SeverityCritical                 // internal invariant violated
)

var severityNames = [...]string{"low", "medium", "high", "critical"}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return "unknown"
	}
	return severityNames[s]
}

// GetSeverityFromCode picks the default severity for code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeDuplicateEntry:
		return SeverityHigh
	}
	if code.ExitCode() == 2 {
		return SeverityLow
	}
	return SeverityMedium
}
