// File: common.go
// Title: Validation Framework Utilities
// Description: Helpers shared by validators built on the framework.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework utilities
// - 2026-10-18 v0.2.0: Added Required, kept IsNilOrEmpty

package validation

import (
	"reflect"
	"strings"
)

// IsNilOrEmpty checks if a value is nil or considered empty based on its
// type. Strings made of whitespace only count as empty.
func IsNilOrEmpty(value interface{}) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strings.TrimSpace(rv.String()) == ""
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Required returns a validator that fails with CodeRequired when the value
// extracted by get is nil or empty
func Required(field string, get func(value interface{}) interface{}) ValidatorFunc {
	return func(value interface{}) ValidationResult {
		if IsNilOrEmpty(get(value)) {
			return NewFieldError(CodeRequired, field, field+" is required", nil)
		}
		return NewValidationResult()
	}
}
