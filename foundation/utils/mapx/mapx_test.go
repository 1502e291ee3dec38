// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for checked lookup including nil maps, stored zero
//              values and unparsable integer text.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Lookup and LookupInt32 tests

package mapx

import (
	"errors"
	"reflect"
	"testing"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

func TestLookup(t *testing.T) {
	m := map[string]int32{"a": 1, "b": 2, "zero": 0}

	tests := []struct {
		name    string
		key     string
		want    int32
		wantErr bool
	}{
		{"present key", "a", 1, false},
		{"second key", "b", 2, false},
		{"stored zero value", "zero", 0, false},
		{"missing key", "c", 0, true},
		{"empty key", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Lookup(m, tt.key)
			if tt.wantErr {
				if !errors.Is(err, flerror.ErrKeyNotFound) {
					t.Fatalf("Lookup(%q) error = %v, want KEY_NOT_FOUND", tt.key, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) unexpected error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("Lookup(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestLookupNilMap(t *testing.T) {
	var m map[string]int32
	_, err := Lookup(m, "a")
	if !errors.Is(err, flerror.ErrKeyNotFound) {
		t.Errorf("Lookup(nil) error = %v, want KEY_NOT_FOUND", err)
	}
}

func TestLookupErrorDetails(t *testing.T) {
	_, err := Lookup(map[string]int32{}, "c")
	flErr, ok := flerror.As(err)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if flErr.Details()["key"] != "c" {
		t.Errorf("key detail = %v, want c", flErr.Details()["key"])
	}
	if flErr.Details()["module"] != "mapx" {
		t.Errorf("module detail = %v, want mapx", flErr.Details()["module"])
	}
	if flErr.Message() != "key 'c' not found" {
		t.Errorf("message = %q", flErr.Message())
	}
}

func TestLookupInt32(t *testing.T) {
	m := map[string]string{"a": "1", "b": "two", "c": " -42 ", "big": "2147483648"}

	tests := []struct {
		name string
		key  string
		want int32
		code flerror.Code
	}{
		{"numeric value", "a", 1, ""},
		{"padded negative value", "c", -42, ""},
		{"non-numeric value", "b", 0, flerror.CodeInvalidFormat},
		{"out of range value", "big", 0, flerror.CodeInvalidFormat},
		{"missing key", "missing", 0, flerror.CodeKeyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupInt32(m, tt.key)
			if tt.code != "" {
				if !flerror.HasCode(err, tt.code) {
					t.Fatalf("LookupInt32(%q) error = %v, want %s", tt.key, err, tt.code)
				}
				if got != 0 {
					t.Errorf("LookupInt32(%q) = %d on error, want 0", tt.key, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("LookupInt32(%q) unexpected error: %v", tt.key, err)
			}
			if got != tt.want {
				t.Errorf("LookupInt32(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}

func TestLookupInt32FormatCause(t *testing.T) {
	_, err := LookupInt32(map[string]string{"b": "two"}, "b")
	if !errors.Is(err, flerror.ErrInvalidFormat) {
		t.Fatalf("error = %v, want INVALID_FORMAT", err)
	}

	flErr, _ := flerror.As(err)
	if flErr.Details()["module"] != "mapx" {
		t.Errorf("module detail = %v, want mapx", flErr.Details()["module"])
	}
	if flErr.Unwrap() == nil {
		t.Error("expected the parse failure to be kept as cause")
	}
}

func TestHasKey(t *testing.T) {
	m := map[string]int{"a": 0}
	if !HasKey(m, "a") {
		t.Error("HasKey(a) = false")
	}
	if HasKey(m, "b") {
		t.Error("HasKey(b) = true")
	}
	if HasKey[string, int](nil, "a") {
		t.Error("HasKey(nil) = true")
	}
}

func TestSortedKeys(t *testing.T) {
	got := SortedKeys(map[string]int{"b": 2, "a": 1, "c": 3})
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("SortedKeys() = %v, want %v", got, want)
	}
	if SortedKeys[string, int](nil) != nil {
		t.Error("SortedKeys(nil) should be nil")
	}
}
