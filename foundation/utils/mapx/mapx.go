// File: mapx.go
// Title: Core Map Utilities
// Description: Checked key lookup for Go maps. A missing key is a KeyNotFound
//              error rather than a silent zero value.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-18 v0.2.0: Lookup, LookupInt32 and SortedKeys

package mapx

import (
	"cmp"
	"slices"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/errors"
	"github.com/msto63/faultlab/foundation/utils/stringx"
)

// Lookup returns the value stored under key. A nil map contains no keys.
func Lookup[K comparable, V any](m map[K]V, key K) (V, error) {
	value, ok := m[key]
	if !ok {
		var zero V
		return zero, errors.KeyNotFound(errors.ModuleMapx, "lookup", key)
	}
	return value, nil
}

// LookupInt32 returns the value under key parsed as a 32-bit integer.
// A missing key is a KeyNotFound error; a value that does not parse is an
// InvalidFormat error. The key is checked first.
func LookupInt32(m map[string]string, key string) (int32, error) {
	if !HasKey(m, key) {
		return 0, errors.KeyNotFound(errors.ModuleMapx, "lookup_int32", key)
	}

	value, err := stringx.ParseInt32(m[key])
	if err != nil {
		return 0, errors.NewErrorBuilder(errors.ModuleMapx).
			Operation("lookup_int32").
			Messagef("value for key '%s' is not a valid %s", key, stringx.Int32Format).
			Cause(err).
			Code(flerror.CodeInvalidFormat).
			Detail("key", key).
			Build()
	}
	return value, nil
}

// HasKey checks if the map contains the specified key
func HasKey[K comparable, V any](m map[K]V, key K) bool {
	if m == nil {
		return false
	}
	_, exists := m[key]
	return exists
}

// SortedKeys returns the keys of m in ascending order
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
