// File: severity_test.go
// Title: Error Severity Tests
// Description: Tests for severity levels and the code to severity mapping.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package error

import (
	"testing"
)

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityLow, "low"},
		{SeverityMedium, "medium"},
		{SeverityHigh, "high"},
		{SeverityCritical, "critical"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestGetSeverityFromCode(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeNullInput, SeverityLow},
		{CodeKeyNotFound, SeverityLow},
		{CodeInvalidFormat, SeverityLow},
		{CodeInvalidState, SeverityMedium},
		{CodeArithmeticOverflow, SeverityMedium},
		{CodeDivisionByZero, SeverityMedium},
		{CodeInvalidConfig, SeverityHigh},
		{CodeUnknown, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			if got := GetSeverityFromCode(tt.code); got != tt.want {
				t.Errorf("GetSeverityFromCode(%s) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestSeverityShouldAlert(t *testing.T) {
	if SeverityMedium.ShouldAlert() {
		t.Error("SeverityMedium should not alert")
	}
	if !SeverityHigh.ShouldAlert() {
		t.Error("SeverityHigh should alert")
	}
}
