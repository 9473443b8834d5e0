// File: timer.go
// Title: Performance Timer for Structured Logging
// Description: Provides performance measurement utilities that integrate
//              with the logging system for automatic duration tracking
//              of parse operations and service calls.
// Author: Bruno Miglioretto
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-24
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation with timer functionality

package log

import (
	"time"
)

// Timer represents a performance measurement timer
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new performance timer
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for timer completion messages
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the timer's log entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// WithFields adds multiple fields to the timer's log entry
func (t *Timer) WithFields(fields Fields) *Timer {
	for k, v := range fields {
		t.fields[k] = v
	}
	return t
}

// Elapsed returns the time elapsed since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	t.stopped = true
	elapsed := time.Since(t.startTime)

	// Create fields with duration information
	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["duration"] = elapsed.String()

	// Log the completion
	message := t.operation + " completed"
	t.logger.log(t.level, message, nil, fields)

	return elapsed
}

// StopWithError stops the timer and logs with an error
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	t.stopped = true
	elapsed := time.Since(t.startTime)

	// Create fields with duration information
	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["duration"] = elapsed.String()
	fields["success"] = false

	// Log the completion with error
	message := t.operation + " failed"
	t.logger.ErrorWithErr(message, err, fields)

	return elapsed
}

// StopWithResult stops the timer and logs with a result status
func (t *Timer) StopWithResult(success bool, result string) time.Duration {
	if t.stopped {
		return 0
	}

	t.stopped = true
	elapsed := time.Since(t.startTime)

	// Create fields with duration information
	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["duration_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["duration"] = elapsed.String()
	fields["success"] = success
	if result != "" {
		fields["result"] = result
	}

	// Choose message and level based on success
	var message string
	level := t.level
	if success {
		message = t.operation + " completed successfully"
	} else {
		message = t.operation + " completed with issues"
		if level < LevelWarn {
			level = LevelWarn
		}
	}

	t.logger.log(level, message, nil, fields)

	return elapsed
}

// Checkpoint logs an intermediate time measurement without stopping the timer
func (t *Timer) Checkpoint(name string) time.Duration {
	elapsed := time.Since(t.startTime)

	// Checkpoints on a stopped timer are silent
	if t.stopped {
		return elapsed
	}

	fields := t.fields.Clone()
	fields["operation"] = t.operation
	fields["checkpoint"] = name
	fields["elapsed_ms"] = float64(elapsed.Nanoseconds()) / 1e6
	fields["elapsed"] = elapsed.String()

	message := t.operation + " checkpoint: " + name
	t.logger.log(t.level, message, nil, fields)

	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Reset restarts the timer with the current time
func (t *Timer) Reset() {
	t.startTime = time.Now()
	t.stopped = false
}

// StartTime returns when the timer was started
func (t *Timer) StartTime() time.Time {
	return t.startTime
}
