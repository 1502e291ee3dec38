// Package slicex implements checked slice access for faultlab.
//
// Package: slicex
// Title: Checked Slice Utilities
// Description: Index access and index-checked sums that report IndexOutOfRange and
//              NullInput through the foundation error builders instead of
//              panicking.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-18 v0.2.0: Reduced to checked access (At, CheckedSum)
//
// Package Overview:
//
// A nil slice and an empty slice behave the same for At, since both have no
// valid index. CheckedSum distinguishes them: nil is an absent collection and
// fails with NullInput before the index is looked at.
//
//	v, err := slicex.At([]int32{10, 20, 30}, 3)
//	// err: INDEX_OUT_OF_RANGE, v == 0
//
//	sum, err := slicex.CheckedSum([]int32{1, 2, 3, 4}, 2)
//	// sum == 10
package slicex
