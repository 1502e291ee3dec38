// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides checked key lookup for Go maps.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core map utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-18 v0.3.0: Reduced to checked lookup

// Package mapx provides checked key lookup for Go maps.
//
// Lookup distinguishes a missing key from a stored zero value: the former is a
// KEY_NOT_FOUND error. LookupInt32 additionally parses the stored text and
// reports INVALID_FORMAT when it is not a 32-bit integer.
//
//	m := map[string]string{"a": "1", "b": "two"}
//	mapx.LookupInt32(m, "a") // 1, nil
//	mapx.LookupInt32(m, "b") // 0, INVALID_FORMAT
//	mapx.LookupInt32(m, "c") // 0, KEY_NOT_FOUND
package mapx
