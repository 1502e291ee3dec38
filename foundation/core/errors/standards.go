// File: standards.go
// Title: Error Standards for faultlab Foundation
// Description: Module identifiers and error analysis helpers shared by every
//              faultlab package, so errors can be traced back to the module and
//              operation that produced them.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-18 v0.2.0: Module set reduced to the faultlab packages, Kind helper

package errors

import (
	flerror "github.com/msto63/faultlab/foundation/core/error"
)

// Module identifiers recorded in the "module" detail of every error
const (
	ModuleStringx = "stringx"
	ModuleMathx   = "mathx"
	ModuleMapx    = "mapx"
	ModuleSlicex  = "slicex"
	ModuleCatalog = "catalog"
	ModuleCases   = "cases"
	ModuleConfig  = "config"
)

// ExtractDetails extracts all details from a faultlab error
func ExtractDetails(err error) map[string]interface{} {
	if flErr, ok := flerror.As(err); ok {
		return flErr.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// Kind returns the failure code of err, or CodeUnknown for foreign errors.
func Kind(err error) flerror.Code {
	return flerror.GetCode(err)
}
