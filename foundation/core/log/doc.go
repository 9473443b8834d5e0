// Package log provides structured logging capabilities for Parser-Latex.
//
// Package: log
// Title: Parser-Latex Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels,
//              and tight integration with the Parser-Latex error handling
//              system. It supports performance timing for parse operations
//              and audit trails for service requests.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with request IDs and custom fields
// - Integration with the Parser-Latex error system for automatic error logging
// - Performance metrics and timing measurements for scanner and parser runs
// - Audit trail capabilities for gateway requests
//
// Usage:
//
//	import "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/log"
//
//	// Create a logger with context
//	logger := log.New().
//	  WithLevel(log.LevelInfo).
//	  WithFormat(log.FormatJSON).
//	  WithField("service", "gateway").
//	  WithRequestID("req-123")
//
//	// Log messages with different levels
//	logger.Info("formula parsed", log.Field("formula", `(\neg (1))`))
//	logger.Error("parse failed", log.Err(err))
//	logger.Debug("scanning input", log.Fields{
//	  "input_length": 42,
//	  "position":     7,
//	})
//
//	// Log performance metrics
//	timer := logger.StartTimer("parse_formula")
//	// ... run the parser
//	timer.Stop()
//
//	// Audit logging for service requests
//	logger.Audit("parse request served", log.Fields{
//	  "remote":  "10.0.0.5",
//	  "success": true,
//	})
package log
