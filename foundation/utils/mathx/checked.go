// File: checked.go
// Title: Checked 32-bit Integer Arithmetic
// Description: Addition and division on int32 that report overflow and
//              division by zero instead of wrapping or panicking.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package mathx

import (
	"math"

	"github.com/msto63/faultlab/foundation/core/errors"
)

// AddInt32 returns a + b. If the exact sum lies outside the int32 range the
// result is an ArithmeticOverflow error; it never wraps.
func AddInt32(a, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return 0, errors.Overflow(errors.ModuleMathx, "add_int32", "int32", a, b)
	}
	return int32(sum), nil
}

// DivInt32 returns a / b truncated toward zero. b == 0 is a DivisionByZero
// error. MinInt32 / -1 has no int32 result and is an ArithmeticOverflow error.
func DivInt32(a, b int32) (int32, error) {
	if b == 0 {
		return 0, errors.DivisionByZero(errors.ModuleMathx, "div_int32", a)
	}
	if a == math.MinInt32 && b == -1 {
		return 0, errors.Overflow(errors.ModuleMathx, "div_int32", "int32", a, b)
	}
	return a / b, nil
}
