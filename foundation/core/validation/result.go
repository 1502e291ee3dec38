// File: result.go
// Title: Validation Results and Interfaces
// Description: Defines the Validator interface and the result types shared by
//              all validators. Results collect every failure and convert to a
//              single INVALID_INPUT error for callers that need an error value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-18 v0.2.0: Reduced to structural codes, ToError reports INVALID_INPUT

package validation

import (
	"fmt"
	"strings"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

// Validation failure codes
const (
	CodeRequired = "VALIDATION_REQUIRED" // Field is required but missing
	CodeConflict = "VALIDATION_CONFLICT" // Fields that exclude each other are both set
	CodeUnknown  = "VALIDATION_UNKNOWN"  // Value is not one of the known values
	CodeFormat   = "VALIDATION_FORMAT"   // Value has the wrong shape
)

// Validator defines the interface for all validation functions
type Validator interface {
	Validate(value interface{}) ValidationResult
}

// ValidatorFunc is a function type that implements the Validator interface
type ValidatorFunc func(value interface{}) ValidationResult

// Validate implements the Validator interface for ValidatorFunc
func (f ValidatorFunc) Validate(value interface{}) ValidationResult {
	return f(value)
}

// ValidationResult represents the result of a validation operation
type ValidationResult struct {
	Valid   bool                   `json:"valid"`
	Errors  []ValidationError      `json:"errors,omitempty"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// ValidationError represents a single validation failure
type ValidationError struct {
	Code    string      `json:"code"`
	Field   string      `json:"field,omitempty"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// NewValidationResult creates a successful validation result
func NewValidationResult() ValidationResult {
	return ValidationResult{Valid: true}
}

// NewValidationError creates a failed validation result with a single error
func NewValidationError(code, message string) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Message: message}},
	}
}

// NewFieldError creates a failed validation result for a specific field
func NewFieldError(code, field, message string, value interface{}) ValidationResult {
	return ValidationResult{
		Valid:  false,
		Errors: []ValidationError{{Code: code, Field: field, Message: message, Value: value}},
	}
}

// AddError adds an error to an existing validation result
func (r *ValidationResult) AddError(code, message string) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Message: message})
	return r
}

// AddFieldError adds a field-specific error to the validation result
func (r *ValidationResult) AddFieldError(code, field, message string, value interface{}) *ValidationResult {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Code: code, Field: field, Message: message, Value: value})
	return r
}

// WithContext adds context information to the validation result
func (r *ValidationResult) WithContext(key string, value interface{}) *ValidationResult {
	if r.Context == nil {
		r.Context = make(map[string]interface{})
	}
	r.Context[key] = value
	return r
}

// FirstError returns the first validation error, or nil if validation passed
func (r ValidationResult) FirstError() *ValidationError {
	if len(r.Errors) == 0 {
		return nil
	}
	return &r.Errors[0]
}

// ErrorMessages returns all error messages in order
func (r ValidationResult) ErrorMessages() []string {
	messages := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		messages[i] = err.Message
	}
	return messages
}

// ErrorCodes returns all error codes in order
func (r ValidationResult) ErrorCodes() []string {
	codes := make([]string, len(r.Errors))
	for i, err := range r.Errors {
		codes[i] = err.Code
	}
	return codes
}

// HasError checks if the result contains a specific error code
func (r ValidationResult) HasError(code string) bool {
	for _, err := range r.Errors {
		if err.Code == code {
			return true
		}
	}
	return false
}

// ToError converts the result to an INVALID_INPUT error, or nil when valid.
// The message joins all failure messages; the first failure's code, field
// and value become details.
func (r ValidationResult) ToError() *flerror.Error {
	if r.Valid {
		return nil
	}
	if len(r.Errors) == 0 {
		return flerror.New("validation failed").WithCode(flerror.CodeInvalidInput)
	}

	first := r.Errors[0]
	err := flerror.New(strings.Join(r.ErrorMessages(), "; ")).
		WithCode(flerror.CodeInvalidInput).
		WithDetail("validation_code", first.Code)
	if first.Field != "" {
		err.WithDetail("field", first.Field)
	}
	if first.Value != nil {
		err.WithDetail("value", first.Value)
	}
	if len(r.Errors) > 1 {
		err.WithDetail("total_errors", len(r.Errors))
	}
	for key, value := range r.Context {
		err.WithDetail(key, value)
	}
	return err
}

// String returns a human-readable representation of the validation result
func (r ValidationResult) String() string {
	if r.Valid {
		return "ValidationResult{valid: true}"
	}

	parts := []string{"ValidationResult{valid: false", fmt.Sprintf("errors: %d", len(r.Errors))}
	if first := r.FirstError(); first != nil {
		parts = append(parts, fmt.Sprintf("first: %s", first.Message))
		if first.Field != "" {
			parts = append(parts, fmt.Sprintf("field: %s", first.Field))
		}
	}
	return strings.Join(parts, ", ") + "}"
}

// Combine merges multiple validation results into a single result
func Combine(results ...ValidationResult) ValidationResult {
	combined := NewValidationResult()
	for _, result := range results {
		if !result.Valid {
			combined.Valid = false
			combined.Errors = append(combined.Errors, result.Errors...)
		}
		for key, value := range result.Context {
			combined.WithContext(key, value)
		}
	}
	return combined
}
