package logging

import (
	"io"
	"os"

	latexlog "github.com/BrunoMiglioretto/Parser-Latex/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Component name, attached to every entry
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format
	Format string // "json", "text" or "console" (default: json)

	// Output destination (default: stdout)
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a new Foundation logger from the given configuration
func NewLogger(cfg LoggerConfig) *latexlog.Logger {
	level := parseLevel(cfg.Level)

	var output io.Writer = os.Stdout
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format := latexlog.FormatJSON
	switch cfg.Format {
	case "text":
		format = latexlog.FormatText
	case "console":
		format = latexlog.FormatConsole
	}

	return latexlog.NewWithConfig(latexlog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: true,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *latexlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to latexlog.Level
func parseLevel(level string) latexlog.Level {
	switch level {
	case "trace":
		return latexlog.LevelTrace
	case "debug":
		return latexlog.LevelDebug
	case "info":
		return latexlog.LevelInfo
	case "warn", "warning":
		return latexlog.LevelWarn
	case "error":
		return latexlog.LevelError
	case "fatal":
		return latexlog.LevelFatal
	default:
		return latexlog.LevelInfo
	}
}

// Logger wraps the Foundation logger with key-value pair logging methods.
type Logger struct {
	*latexlog.Logger
	name string
}

// New creates a new named logger writing JSON to stdout
func New(name string) *Logger {
	return &Logger{
		Logger: NewSimpleLogger(name),
		name:   name,
	}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	latexLevel := latexlog.LevelInfo
	switch level {
	case LevelDebug:
		latexLevel = latexlog.LevelDebug
	case LevelInfo:
		latexLevel = latexlog.LevelInfo
	case LevelWarn:
		latexLevel = latexlog.LevelWarn
	case LevelError:
		latexLevel = latexlog.LevelError
	}

	return &Logger{
		Logger: l.Logger.WithLevel(latexLevel),
		name:   l.name,
	}
}

// Debug logs a debug message with key-value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key-value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key-value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key-value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// toFields converts key-value pairs to latexlog.Fields
func toFields(keysAndValues ...interface{}) latexlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(latexlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
