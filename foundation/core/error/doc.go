// Package error provides comprehensive error handling capabilities for the Parser-Latex toolkit.
//
// Package: error
// Title: Parser-Latex Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, stack traces, and integration
//              with logging. It provides the foundation for consistent error
//              handling across the formula front end, the history store, and the
//              gateway service.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent API responses
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - JSON marshalling for structured logging
//
// Usage:
//   import "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/error"
//
//   // Create a new error with context
//   err := error.New("character not in alphabet").
//     WithCode(error.CodeAlphabet).
//     WithDetail("character", "#").
//     WithDetail("position", 5)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "formula rejected").
//     WithOperation("parse")
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeAlphabet) {
//     // Handle scan failures specifically
//   }
package error
