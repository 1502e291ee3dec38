// Package mathx provides exact decimal arithmetic and checked integer arithmetic.
//
// Package: mathx
// Title: Arithmetic Operations for faultlab Foundation
// Description: Decimal values for monetary calculations (big.Rat backed, no
//              floating-point drift), percentage discounts with range checks,
//              and int32 addition and division that report overflow and
//              division by zero instead of wrapping or panicking.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-18 v0.3.0: Checked int32 arithmetic, validated ApplyDiscount
//
// Usage:
//
//	total := mathx.MustNewDecimal("1000")
//	price, err := mathx.ApplyDiscount(total, mathx.MustNewDecimal("54")) // 460
//
//	sum, err := mathx.AddInt32(math.MaxInt32, 1) // ARITHMETIC_OVERFLOW
//	q, err := mathx.DivInt32(125, 0)             // DIVISION_BY_ZERO
package mathx
