// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. A rejected formula is routine
//              (low severity) while losing the history database is not,
//              and the logger maps severity to its levels accordingly.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: rejected formula line, invalid user input, missing optional fields
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: degraded performance, a single history record failing to persist
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: history database connection issues, gateway failing to start
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: data corruption, complete service outage
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// Priority returns a priority value for sorting (higher number = higher priority)
func (s Severity) Priority() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeServiceUnavailable, CodeEnvironmentError:
		return SeverityCritical

	// High severity errors
	case CodeStorageError, CodeConnectionFailed, CodeServiceInitialization:
		return SeverityHigh

	// Medium severity errors
	case CodeNetworkError, CodeConstraintViolation, CodeTimeout,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors: routine per-line rejections and input validation
	case CodeInvalidInput, CodeNotFound, CodeAlphabet, CodeSyntax,
		CodeTrailingInput, CodeFormulaShape,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
