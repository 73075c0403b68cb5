package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across logbox.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldOperation = "operation"

	// Files and paths
	FieldFile   = "file"
	FieldLine   = "line"
	FieldOutput = "output"

	// Record accounting
	FieldRecords  = "records"
	FieldWritten  = "written"
	FieldDropped  = "dropped"
	FieldFailures = "failures"
	FieldCount    = "count"

	// Timing
	FieldDurationMS = "duration_ms"

	// Errors
	FieldError = "error"

	// Object store
	FieldBucket  = "bucket"
	FieldObject  = "object"
	FieldPattern = "pattern"
	FieldSize    = "size"
)

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	log := logger.ComponentLogger("fetch")
//	log.Infow("download complete", logger.FieldBucket, bucket)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
// Use for sub-operations that need extra context fields.
//
// Example:
//
//	fileLogger := logger.ChildLogger(baseLogger, logger.FieldFile, path)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
