// File: validation_test.go
// Title: Core Validation Framework Tests
// Description: Tests for validation results, chains and helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18

package validation

import (
	"strings"
	"testing"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

type record struct {
	Name string
	Tags []string
}

func nameOf(v interface{}) interface{} { return v.(record).Name }
func tagsOf(v interface{}) interface{} { return v.(record).Tags }

func TestValidationResult(t *testing.T) {
	t.Run("NewValidationResult creates valid result", func(t *testing.T) {
		result := NewValidationResult()
		if !result.Valid {
			t.Error("Expected valid result")
		}
		if len(result.Errors) != 0 {
			t.Error("Expected no errors")
		}
		if result.ToError() != nil {
			t.Error("Expected no error from a valid result")
		}
	})

	t.Run("NewValidationError creates invalid result", func(t *testing.T) {
		result := NewValidationError(CodeRequired, "value required")
		if result.Valid {
			t.Error("Expected invalid result")
		}
		if result.Errors[0].Code != CodeRequired {
			t.Errorf("Expected code %s, got %s", CodeRequired, result.Errors[0].Code)
		}
	})

	t.Run("AddError keeps order", func(t *testing.T) {
		result := NewValidationResult()
		result.AddError(CodeRequired, "first error")
		result.AddFieldError(CodeFormat, "field", "second error", 42)

		if result.Valid {
			t.Error("Expected invalid result after adding errors")
		}
		if got := result.FirstError().Message; got != "first error" {
			t.Errorf("FirstError() = %q", got)
		}
		if got := strings.Join(result.ErrorCodes(), ","); got != CodeRequired+","+CodeFormat {
			t.Errorf("ErrorCodes() = %q", got)
		}
		if !result.HasError(CodeFormat) || result.HasError(CodeConflict) {
			t.Error("HasError reported the wrong codes")
		}
	})
}

func TestToError(t *testing.T) {
	result := NewFieldError(CodeUnknown, "want_error", "unknown error code KABOOM", "KABOOM")
	result.AddError(CodeConflict, "want and want_error are mutually exclusive")
	result.WithContext("case_index", 3)

	err := result.ToError()
	if err == nil {
		t.Fatal("Expected an error")
	}
	if err.Code() != flerror.CodeInvalidInput {
		t.Errorf("Code() = %s, want %s", err.Code(), flerror.CodeInvalidInput)
	}
	if err.Error() != "unknown error code KABOOM; want and want_error are mutually exclusive" {
		t.Errorf("Error() = %q", err.Error())
	}

	details := err.Details()
	if details["validation_code"] != CodeUnknown {
		t.Errorf("validation_code = %v", details["validation_code"])
	}
	if details["field"] != "want_error" || details["value"] != "KABOOM" {
		t.Errorf("field/value details = %v/%v", details["field"], details["value"])
	}
	if details["total_errors"] != 2 || details["case_index"] != 3 {
		t.Errorf("details = %v", details)
	}
}

func TestValidatorChain(t *testing.T) {
	chain := NewValidatorChain("record").
		AddFunc(Required("name", nameOf)).
		AddFunc(Required("tags", tagsOf))

	if chain.Name() != "record" || chain.String() != "ValidatorChain{name: record, validators: 2}" {
		t.Errorf("chain = %s", chain)
	}

	t.Run("valid value", func(t *testing.T) {
		result := chain.Validate(record{Name: "a", Tags: []string{"x"}})
		if !result.Valid {
			t.Errorf("Expected valid result, got %s", result)
		}
	})

	t.Run("collects all errors", func(t *testing.T) {
		result := chain.Validate(record{Name: "  "})
		if len(result.Errors) != 2 {
			t.Fatalf("Expected 2 errors, got %d", len(result.Errors))
		}
		if result.Errors[0].Field != "name" || result.Errors[1].Field != "tags" {
			t.Errorf("Unexpected fields: %v", result.Errors)
		}
		if result.Context["validator_chain"] != "record" {
			t.Errorf("Expected chain name in context, got %v", result.Context)
		}
	})
}

func TestIsNilOrEmpty(t *testing.T) {
	var nilPtr *string
	text := "x"

	tests := []struct {
		name  string
		value interface{}
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"blank string", " \t", true},
		{"string", "a", false},
		{"empty slice", []int{}, true},
		{"slice", []int{1}, false},
		{"empty map", map[string]int{}, true},
		{"nil pointer", nilPtr, true},
		{"pointer", &text, false},
		{"zero int", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNilOrEmpty(tt.value); got != tt.want {
				t.Errorf("IsNilOrEmpty(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
