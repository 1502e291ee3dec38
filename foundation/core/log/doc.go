// Package log provides structured logging for faultlab.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON and text output,
//              persistent context fields and request IDs, and integration
//              with the foundation error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-18 v0.2.0: Trimmed to the json and text formats used by the CLI
//
// Usage:
//
//	logger := log.New().
//	  WithLevel(log.LevelDebug).
//	  WithFormat(log.FormatText).
//	  WithRequestID(requestID)
//
//	logger.Debug("invoking operation", log.Field("operation", "divide-numbers"))
//
//	// Level follows the error severity, details become error_* fields
//	logger.LogError(err)
//
//	timer := logger.StartTimer("check")
//	defer timer.Stop()
package log
