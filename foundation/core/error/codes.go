// File: codes.go
// Title: Error Code Definitions
// Description: Defines the closed set of error codes used by faultlab. Every
//              failure a catalog operation can report maps to exactly one code,
//              and each code knows its category, HTTP status and gRPC code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Replaced platform codes with the operation failure taxonomy,
//                       added gRPC code mapping

package error

import (
	"google.golang.org/grpc/codes"
)

// Code represents a structured error code for categorizing errors
type Code string

// Operation failure codes. A catalog operation reports one of these.
const (
	CodeNullInput          Code = "NULL_INPUT"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeIndexOutOfRange    Code = "INDEX_OUT_OF_RANGE"
	CodeInvalidState       Code = "INVALID_STATE"
	CodeInvalidFormat      Code = "INVALID_FORMAT"
	CodeKeyNotFound        Code = "KEY_NOT_FOUND"
	CodeArithmeticOverflow Code = "ARITHMETIC_OVERFLOW"
	CodeDivisionByZero     Code = "DIVISION_BY_ZERO"
)

// Generic and configuration codes used outside the operations themselves
const (
	CodeUnknown       Code = "UNKNOWN"
	CodeInternal      Code = "INTERNAL"
	CodeInvalidInput  Code = "INVALID_INPUT"
	CodeNotFound      Code = "NOT_FOUND"
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// OperationCodes returns the failure codes an operation may report, in
// declaration order.
func OperationCodes() []Code {
	return []Code{
		CodeNullInput,
		CodeInvalidArgument,
		CodeIndexOutOfRange,
		CodeInvalidState,
		CodeInvalidFormat,
		CodeKeyNotFound,
		CodeArithmeticOverflow,
		CodeDivisionByZero,
	}
}

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeNullInput, CodeInvalidArgument, CodeIndexOutOfRange, CodeInvalidState,
		CodeInvalidFormat, CodeKeyNotFound, CodeArithmeticOverflow, CodeDivisionByZero,
		CodeUnknown, CodeInternal, CodeInvalidInput, CodeNotFound,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNullInput, CodeInvalidArgument, CodeInvalidFormat, CodeInvalidInput:
		return "argument"
	case CodeIndexOutOfRange, CodeKeyNotFound, CodeNotFound:
		return "lookup"
	case CodeInvalidState:
		return "state"
	case CodeArithmeticOverflow, CodeDivisionByZero:
		return "arithmetic"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// HTTPStatus returns the appropriate HTTP status code for this error code
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNullInput, CodeInvalidArgument, CodeIndexOutOfRange, CodeInvalidFormat, CodeInvalidInput:
		return 400
	case CodeKeyNotFound, CodeNotFound:
		return 404
	case CodeInvalidState:
		return 409
	case CodeArithmeticOverflow, CodeDivisionByZero:
		return 422
	default:
		return 500
	}
}

// GRPCCode returns the gRPC status code for this error code
func (c Code) GRPCCode() codes.Code {
	switch c {
	case CodeNullInput, CodeInvalidArgument, CodeInvalidFormat, CodeInvalidInput, CodeDivisionByZero:
		return codes.InvalidArgument
	case CodeIndexOutOfRange, CodeArithmeticOverflow:
		return codes.OutOfRange
	case CodeKeyNotFound, CodeNotFound:
		return codes.NotFound
	case CodeInvalidState:
		return codes.FailedPrecondition
	case CodeUnknown:
		return codes.Unknown
	default:
		return codes.Internal
	}
}
