// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the text operations of the catalog: null-aware
//              reversal and strict 32-bit integer parsing. Both report failures
//              through the standard foundation error builders.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Null-aware Reverse, ParseInt32

package stringx

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/msto63/faultlab/foundation/core/errors"
)

// Int32Format names the accepted integer syntax in format errors
const Int32Format = "32-bit integer"

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Reverse returns the characters of *s in reverse order.
// Reversal works on runes, so multi-byte characters stay intact.
// A nil s is a NullInput error.
func Reverse(s *string) (string, error) {
	if s == nil {
		return "", errors.NullInput(errors.ModuleStringx, "reverse", "text")
	}

	text := *s
	if utf8.RuneCountInString(text) < 2 {
		return text, nil
	}

	runes := []rune(text)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

// ParseInt32 parses a base-10 integer literal with an optional sign.
// Leading and trailing whitespace is ignored. Any other text, including
// literals outside the int32 range, is an InvalidFormat error.
func ParseInt32(s string) (int32, error) {
	trimmed := strings.TrimSpace(s)

	n, err := strconv.ParseInt(trimmed, 10, 32)
	if err != nil {
		return 0, errors.InvalidFormat(errors.ModuleStringx, "parse_int32", s, Int32Format, err)
	}
	return int32(n), nil
}
