// File: utils.go
// Title: Shared Error Construction Utilities
// Description: Provides the builders every faultlab package uses to report a
//              failure. There is one builder per failure kind, so an operation
//              never has to pick a code by hand.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2026-10-18 v0.2.0: One builder per failure kind

package errors

import (
	"fmt"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  *flerror.Severity
	code      flerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		details: make(map[string]interface{}),
		code:    flerror.CodeUnknown,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity overrides the severity derived from the code
func (eb *ErrorBuilder) Severity(severity flerror.Severity) *ErrorBuilder {
	eb.severity = &severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code flerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *flerror.Error {
	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *flerror.Error
	if eb.cause != nil {
		err = flerror.Wrap(eb.cause, eb.message)
	} else {
		err = flerror.New(eb.message)
	}

	severity := flerror.GetSeverityFromCode(eb.code)
	if eb.severity != nil {
		severity = *eb.severity
	}

	return err.
		WithCode(eb.code).
		WithSeverity(severity).
		WithOperation(eb.operation).
		WithDetails(eb.details)
}

// =============================================================================
// ONE BUILDER PER FAILURE KIND
// =============================================================================

// NullInput reports that a required input named param is absent
func NullInput(module, operation, param string) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("value cannot be null (parameter '%s')", param).
		Code(flerror.CodeNullInput).
		Detail("parameter", param).
		Build()
}

// InvalidArgument reports a value outside the domain described by constraint
func InvalidArgument(module, operation, param string, value interface{}, constraint string) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid argument '%s' = %v: %s", param, value, constraint).
		Code(flerror.CodeInvalidArgument).
		Detail("parameter", param).
		Detail("value", value).
		Detail("constraint", constraint).
		Build()
}

// IndexOutOfRange reports an index outside [0, length)
func IndexOutOfRange(module, operation string, index, length int) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("index %d out of range [0, %d)", index, length).
		Code(flerror.CodeIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Build()
}

// InvalidState reports an operation invoked while its precondition is false
func InvalidState(module, operation, reason string) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(reason).
		Code(flerror.CodeInvalidState).
		Detail("reason", reason).
		Build()
}

// InvalidFormat reports input text that does not match expectedFormat
func InvalidFormat(module, operation string, input interface{}, expectedFormat string, cause error) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("input %q is not a valid %s", fmt.Sprint(input), expectedFormat).
		Cause(cause).
		Code(flerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// KeyNotFound reports a key that is absent from a mapping
func KeyNotFound(module, operation string, key interface{}) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("key '%v' not found", key).
		Code(flerror.CodeKeyNotFound).
		Detail("key", key).
		Build()
}

// Overflow reports an exact result that does not fit the target type
func Overflow(module, operation, targetType string, operands ...interface{}) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("arithmetic operation resulted in an overflow of %s", targetType).
		Code(flerror.CodeArithmeticOverflow).
		Detail("type", targetType).
		Detail("operands", operands).
		Build()
}

// DivisionByZero reports an attempt to divide by zero
func DivisionByZero(module, operation string, dividend interface{}) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message("attempted to divide by zero").
		Code(flerror.CodeDivisionByZero).
		Detail("dividend", dividend).
		Build()
}

// =============================================================================
// GENERIC BUILDERS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(flerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// NotFound creates a standardized not found error
func NotFound(module, operation string, identifier interface{}) *flerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found in %s", identifier, module).
		Code(flerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}
