// File: checked_test.go
// Title: Unit Tests for Checked Integer Arithmetic
// Description: Tests for AddInt32 and DivInt32 at and beyond the int32 limits.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package mathx

import (
	"errors"
	"math"
	"testing"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

func TestAddInt32(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
	}{
		{619, 523, 1142},
		{0, 0, 0},
		{-5, 3, -2},
		{math.MaxInt32, 0, math.MaxInt32},
		{math.MaxInt32, math.MinInt32, -1},
		{math.MaxInt32 - 1, 1, math.MaxInt32},
		{math.MinInt32 + 1, -1, math.MinInt32},
	}

	for _, tt := range tests {
		got, err := AddInt32(tt.a, tt.b)
		if err != nil {
			t.Errorf("AddInt32(%d, %d) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddInt32(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAddInt32Overflow(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
	}{
		{"positive overflow", math.MaxInt32, math.MaxInt32},
		{"negative overflow", math.MinInt32, math.MinInt32},
		{"off by one high", math.MaxInt32, 1},
		{"off by one low", math.MinInt32, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddInt32(tt.a, tt.b)
			if !errors.Is(err, flerror.ErrArithmeticOverflow) {
				t.Errorf("AddInt32(%d, %d) error = %v, want ARITHMETIC_OVERFLOW", tt.a, tt.b, err)
			}
		})
	}
}

func TestDivInt32(t *testing.T) {
	tests := []struct {
		a, b int32
		want int32
	}{
		{125, 5, 25},
		{7, 2, 3},
		{-7, 2, -3},
		{7, -2, -3},
		{-7, -2, 3},
		{0, 9, 0},
		{math.MinInt32, 1, math.MinInt32},
		{math.MaxInt32, -1, -math.MaxInt32},
	}

	for _, tt := range tests {
		got, err := DivInt32(tt.a, tt.b)
		if err != nil {
			t.Errorf("DivInt32(%d, %d) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("DivInt32(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivInt32ByZero(t *testing.T) {
	for _, a := range []int32{125, 0, -1, math.MinInt32} {
		_, err := DivInt32(a, 0)
		if !errors.Is(err, flerror.ErrDivisionByZero) {
			t.Errorf("DivInt32(%d, 0) error = %v, want DIVISION_BY_ZERO", a, err)
		}
	}
}

func TestDivInt32Overflow(t *testing.T) {
	_, err := DivInt32(math.MinInt32, -1)
	if !errors.Is(err, flerror.ErrArithmeticOverflow) {
		t.Errorf("DivInt32(MinInt32, -1) error = %v, want ARITHMETIC_OVERFLOW", err)
	}
}
