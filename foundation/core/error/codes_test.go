// File: codes_test.go
// Title: Error Code Tests
// Description: Tests for error code functionality including validation,
//              categorization, HTTP status and gRPC code mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package error

import (
	"testing"

	"google.golang.org/grpc/codes"
)

func TestCodeIsValid(t *testing.T) {
	tests := []struct {
		name string
		code Code
		want bool
	}{
		{"operation code", CodeKeyNotFound, true},
		{"config code", CodeInvalidConfig, true},
		{"unknown code", Code("NOT_A_CODE"), false},
		{"empty code", Code(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.code.IsValid(); got != tt.want {
				t.Errorf("Code.IsValid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOperationCodesAreValid(t *testing.T) {
	seen := make(map[Code]bool)
	for _, code := range OperationCodes() {
		if !code.IsValid() {
			t.Errorf("operation code %s is not valid", code)
		}
		if seen[code] {
			t.Errorf("operation code %s listed twice", code)
		}
		seen[code] = true
	}
	if len(seen) != 8 {
		t.Errorf("len(OperationCodes()) = %d, want 8", len(seen))
	}
}

func TestCodeMappings(t *testing.T) {
	tests := []struct {
		code     Code
		category string
		http     int
		grpc     codes.Code
	}{
		{CodeNullInput, "argument", 400, codes.InvalidArgument},
		{CodeInvalidArgument, "argument", 400, codes.InvalidArgument},
		{CodeIndexOutOfRange, "lookup", 400, codes.OutOfRange},
		{CodeInvalidState, "state", 409, codes.FailedPrecondition},
		{CodeInvalidFormat, "argument", 400, codes.InvalidArgument},
		{CodeKeyNotFound, "lookup", 404, codes.NotFound},
		{CodeArithmeticOverflow, "arithmetic", 422, codes.OutOfRange},
		{CodeDivisionByZero, "arithmetic", 422, codes.InvalidArgument},
		{CodeConfigError, "configuration", 500, codes.Internal},
		{CodeUnknown, "generic", 500, codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := tt.code.Category(); got != tt.category {
				t.Errorf("Category() = %q, want %q", got, tt.category)
			}
			if got := tt.code.HTTPStatus(); got != tt.http {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.http)
			}
			if got := tt.code.GRPCCode(); got != tt.grpc {
				t.Errorf("GRPCCode() = %v, want %v", got, tt.grpc)
			}
		})
	}
}
