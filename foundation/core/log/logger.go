// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the main Logger type that provides structured logging
//              with contextual information, two output formats, and
//              integration with the foundation error system.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-18 v0.2.0: LogError follows wrapped errors; async mode removed

package log

import (
	"io"
	"os"
	"sync"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

// Logger represents a structured logger with contextual information.
// With* methods return modified copies; the receiver is never changed.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	name      string

	// Context fields that are added to all log entries
	contextFields Fields
	requestID     string

	mutex *sync.Mutex
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates a new logger writing JSON at info level to stderr
func New() *Logger {
	return &Logger{
		level:         DefaultLevel(),
		formatter:     NewJSONFormatter(),
		output:        os.Stderr,
		contextFields: make(Fields),
		mutex:         &sync.Mutex{},
	}
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	logger := New()
	logger.level = config.Level
	logger.formatter = GetFormatter(config.Format)
	logger.name = config.Name
	if config.Output != nil {
		logger.output = config.Output
	}
	return logger
}

// Discard returns a logger that drops every entry
func Discard() *Logger {
	return New().WithOutput(io.Discard).WithLevel(LevelFatal + 1)
}

// WithLevel sets the minimum log level
func (l *Logger) WithLevel(level Level) *Logger {
	clone := l.clone()
	clone.level = level
	return clone
}

// WithFormat sets the log format
func (l *Logger) WithFormat(format Format) *Logger {
	clone := l.clone()
	clone.formatter = GetFormatter(format)
	return clone
}

// WithFormatter sets a custom formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	clone := l.clone()
	clone.formatter = formatter
	return clone
}

// WithOutput sets the output destination
func (l *Logger) WithOutput(output io.Writer) *Logger {
	clone := l.clone()
	clone.output = output
	clone.mutex = &sync.Mutex{}
	return clone
}

// WithName sets the logger name
func (l *Logger) WithName(name string) *Logger {
	clone := l.clone()
	clone.name = name
	return clone
}

// WithField adds a persistent field to all log entries
func (l *Logger) WithField(key string, value interface{}) *Logger {
	clone := l.clone()
	clone.contextFields[key] = value
	return clone
}

// WithFields adds persistent fields to all log entries
func (l *Logger) WithFields(fields Fields) *Logger {
	clone := l.clone()
	for k, v := range fields {
		clone.contextFields[k] = v
	}
	return clone
}

// WithRequestID sets the request ID context
func (l *Logger) WithRequestID(requestID string) *Logger {
	clone := l.clone()
	clone.requestID = requestID
	return clone
}

// Trace logs a trace level message
func (l *Logger) Trace(message string, fields ...Fields) {
	l.log(LevelTrace, message, nil, fields...)
}

// Debug logs a debug level message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.log(LevelDebug, message, nil, fields...)
}

// Info logs an info level message
func (l *Logger) Info(message string, fields ...Fields) {
	l.log(LevelInfo, message, nil, fields...)
}

// Warn logs a warning level message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.log(LevelWarn, message, nil, fields...)
}

// Error logs an error level message
func (l *Logger) Error(message string, fields ...Fields) {
	l.log(LevelError, message, nil, fields...)
}

// ErrorWithErr logs an error with an error object
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields...)
}

// LogError logs err with its code, severity and details as fields. The level
// follows the severity: low is info, medium is warn, and severities that
// should alert are error with an error_alert field.
// Errors that are not foundation errors are logged at error level.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	flErr, ok := flerror.As(err)
	if !ok {
		l.log(LevelError, err.Error(), nil, fields...)
		return
	}

	errFields := Fields{
		"error_code":     flErr.Code().String(),
		"error_category": flErr.Code().Category(),
		"error_severity": flErr.Severity().String(),
	}
	if op := flErr.Operation(); op != "" {
		errFields["error_operation"] = op
	}
	for k, v := range flErr.Details() {
		errFields["error_"+k] = v
	}

	level := LevelWarn
	switch severity := flErr.Severity(); {
	case severity.ShouldAlert():
		level = LevelError
		errFields["error_alert"] = true
	case severity == flerror.SeverityLow:
		level = LevelInfo
	}
	fields = append([]Fields{errFields}, fields...)

	logger := l
	if l.requestID == "" && flErr.RequestID() != "" {
		logger = l.WithRequestID(flErr.RequestID())
	}
	logger.log(level, err.Error(), nil, fields...)
}

// StartTimer creates and starts a new performance timer
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled returns true if the given level is enabled
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// GetLevel returns the current log level
func (l *Logger) GetLevel() Level {
	return l.level
}

// RequestID returns the request ID attached to this logger
func (l *Logger) RequestID() string {
	return l.requestID
}

// log is the internal logging method
func (l *Logger) log(level Level, message string, err error, fields ...Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err

	for k, v := range l.contextFields {
		entry.Fields[k] = v
	}
	for _, fieldSet := range fields {
		entry.WithFields(fieldSet)
	}

	l.write(entry)
}

// emit writes a prepared entry, adding the logger's context
func (l *Logger) emit(entry *Entry) {
	if !entry.Level.ShouldLog(l.level) {
		return
	}

	entry.Logger = l.name
	entry.RequestID = l.requestID
	for k, v := range l.contextFields {
		if _, ok := entry.Fields[k]; !ok {
			entry.Fields[k] = v
		}
	}

	l.write(entry)
}

// write formats entry and writes it as one call so concurrent loggers sharing
// an output do not interleave lines
func (l *Logger) write(entry *Entry) {
	formatted, err := l.formatter.Format(entry)
	if err != nil {
		return
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()
	_, _ = l.output.Write(formatted)
}

// clone creates a copy of the logger for immutable operations. The copy
// shares the output lock with the original.
func (l *Logger) clone() *Logger {
	return &Logger{
		level:         l.level,
		formatter:     l.formatter,
		output:        l.output,
		name:          l.name,
		contextFields: l.contextFields.Clone(),
		requestID:     l.requestID,
		mutex:         l.mutex,
	}
}
