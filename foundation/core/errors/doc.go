// Package errors provides the standard error construction API for all faultlab
// foundation packages.
//
// Package: errors
// Title: Standard Error Handling API for faultlab Foundation
// Description: One builder per failure kind, plus helpers to recover the module
//              and operation an error came from. Builders record "module" and
//              "operation" details and derive the severity from the code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-18 v0.2.0: Builders aligned with the operation failure taxonomy
//
// # Usage
//
//	func At[T any](s []T, index int) (T, error) {
//		var zero T
//		if index < 0 || index >= len(s) {
//			return zero, errors.IndexOutOfRange(errors.ModuleSlicex, "at", index, len(s))
//		}
//		return s[index], nil
//	}
//
// Inspecting an error:
//
//	if errors.Kind(err) == flerror.CodeKeyNotFound {
//		// ...
//	}
//	module := errors.ExtractModule(err)
//	operation := errors.ExtractOperation(err)
package errors
