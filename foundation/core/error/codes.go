// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the Parser-Latex toolkit. These codes
//              enable structured error handling, API response formatting,
//              and per-stage failure reporting in the formula front end.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the Parser-Latex toolkit
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Formula front end
	CodeAlphabet      Code = "ALPHABET"
	CodeSyntax        Code = "SYNTAX"
	CodeTrailingInput Code = "TRAILING_INPUT"
	CodeFormulaShape  Code = "FORMULA_SHAPE"

	// Storage
	CodeStorageError        Code = "STORAGE_ERROR"
	CodeConnectionFailed    Code = "CONNECTION_FAILED"
	CodeConstraintViolation Code = "CONSTRAINT_VIOLATION"

	// Service and network
	CodeServiceUnavailable    Code = "SERVICE_UNAVAILABLE"
	CodeNetworkError          Code = "NETWORK_ERROR"
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeInvalidLength    Code = "INVALID_LENGTH"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeAlphabet, CodeSyntax, CodeTrailingInput, CodeFormulaShape,
		CodeStorageError, CodeConnectionFailed, CodeConstraintViolation,
		CodeServiceUnavailable, CodeNetworkError, CodeServiceInitialization,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeAlphabet, CodeSyntax, CodeTrailingInput, CodeFormulaShape:
		return "formula"
	case CodeStorageError, CodeConnectionFailed, CodeConstraintViolation:
		return "storage"
	case CodeServiceUnavailable, CodeNetworkError, CodeServiceInitialization:
		return "service"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return "validation"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return 404
	case CodeInvalidInput, CodeAlphabet, CodeSyntax, CodeTrailingInput, CodeFormulaShape,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeInvalidLength:
		return 400
	case CodeTimeout:
		return 408
	case CodeServiceUnavailable, CodeStorageError, CodeConnectionFailed:
		return 503
	default:
		return 500
	}
}
