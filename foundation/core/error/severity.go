// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses severity to
//              pick the level an error is reported at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for the operation failure codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input: null arguments, malformed text,
	// missing keys, indexes outside a sequence
	SeverityLow Severity = iota

	// SeverityMedium indicates a call that was well-formed but could not be
	// carried out, such as a violated precondition or an unrepresentable result
	SeverityMedium

	// SeverityHigh indicates a failure of the tool itself (configuration, internal)
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
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

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeNullInput, CodeInvalidArgument, CodeIndexOutOfRange,
		CodeInvalidFormat, CodeKeyNotFound, CodeInvalidInput, CodeNotFound:
		return SeverityLow

	case CodeInvalidState, CodeArithmeticOverflow, CodeDivisionByZero:
		return SeverityMedium

	case CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh

	default:
		return SeverityMedium
	}
}
