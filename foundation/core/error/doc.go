// Package error provides structured error handling for faultlab.
//
// Package: error
// Title: faultlab Error Handling Framework
// Description: This package implements the structured Error type every faultlab
//              package returns. An Error carries exactly one Code out of a small,
//              closed taxonomy, a severity derived from that code, free-form
//              details, and a stack trace for debugging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Operation failure taxonomy, sentinels, gRPC mapping
//
// Failure taxonomy:
//   NULL_INPUT          a required input is absent
//   INVALID_ARGUMENT    a numeric argument is outside its valid domain
//   INDEX_OUT_OF_RANGE  a sequence index is negative or >= length
//   INVALID_STATE       an operation was invoked while a precondition is false
//   INVALID_FORMAT      text cannot be parsed into the target numeric type
//   KEY_NOT_FOUND       a lookup key is absent from a mapping
//   ARITHMETIC_OVERFLOW an exact integer result exceeds the representable range
//   DIVISION_BY_ZERO    the divisor of an integer division is zero
//
// Usage:
//   import flerror "github.com/msto63/faultlab/foundation/core/error"
//
//   err := flerror.New("key 'Maria' not found").
//     WithCode(flerror.CodeKeyNotFound).
//     WithDetail("key", "Maria")
//
//   if errors.Is(err, flerror.ErrKeyNotFound) {
//     // handle missing key
//   }
//
//   // gRPC-aware callers can use status.Code(err) directly
package error
