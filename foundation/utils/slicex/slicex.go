// File: slicex.go
// Title: Core Slice Utilities
// Description: Bounds-checked element access and sums over slices.
//              Out-of-bounds indexes are reported as errors instead of panics.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-18 v0.2.0: Checked At and CheckedSum

package slicex

import (
	"github.com/msto63/faultlab/foundation/core/errors"
)

// At returns slice[index]. A negative index, or one at or past the end, is an
// IndexOutOfRange error. A nil slice has length 0.
func At[T any](slice []T, index int) (T, error) {
	var zero T
	if index < 0 || index >= len(slice) {
		return zero, errors.IndexOutOfRange(errors.ModuleSlicex, "at", index, len(slice))
	}
	return slice[index], nil
}

// CheckedSum returns the sum of every element of slice once index has been
// confirmed to address one of them. A nil slice is a NullInput error and is
// checked before the index; an index outside [0, len) is an IndexOutOfRange
// error. The sum is accumulated in int64, which cannot overflow for any
// int32 slice.
func CheckedSum(slice []int32, index int) (int64, error) {
	if slice == nil {
		return 0, errors.NullInput(errors.ModuleSlicex, "checked_sum", "collection")
	}
	if index < 0 || index >= len(slice) {
		return 0, errors.IndexOutOfRange(errors.ModuleSlicex, "checked_sum", index, len(slice))
	}

	var sum int64
	for _, v := range slice {
		sum += int64(v)
	}
	return sum, nil
}

// Map transforms each element in the slice using the provided function
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil || mapper == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}
