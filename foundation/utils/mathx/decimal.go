// File: decimal.go
// Title: Decimal Arithmetic Implementation
// Description: Implements exact decimal arithmetic for monetary calculations.
//              Values are held as big.Rat, so sums and products never pick up
//              binary floating-point error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core decimal operations
// - 2025-07-26 v0.1.1: Enhanced String() method with auto-rounding for financial values
// - 2026-10-18 v0.2.0: Exact rounding on big.Int, zero value is usable, text marshaling,
//                       plain decimal notation only

package mathx

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/msto63/faultlab/foundation/core/errors"
)

// RoundingMode defines how decimal numbers should be rounded
type RoundingMode int

const (
	// RoundingModeHalfUp rounds 0.5 away from zero (commercial rounding)
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfEven rounds to the nearest even number (banker's rounding)
	RoundingModeHalfEven

	// RoundingModeDown always rounds toward zero (truncation)
	RoundingModeDown
)

// DecimalFormat names the accepted decimal syntax in format errors
const DecimalFormat = "decimal number"

// maxStringPlaces bounds String() for non-terminating fractions
const maxStringPlaces = 10

// Decimal represents a decimal number with arbitrary precision.
// The zero value is 0.
type Decimal struct {
	value *big.Rat
}

// decimalPattern is plain decimal notation: optional sign, digits and an
// optional fractional part. Fractions, exponents and hex are not accepted.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)$`)

// NewDecimal creates a new Decimal from a string representation.
// Supports formats like "123.45", "-67.89", "100" and ".5"; the "1/2", "1e3"
// and "0x10" forms are InvalidFormat errors.
func NewDecimal(s string) (Decimal, error) {
	trimmed := strings.TrimSpace(s)
	if !decimalPattern.MatchString(trimmed) {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, "new_decimal", s, DecimalFormat, nil)
	}

	rat, ok := new(big.Rat).SetString(trimmed)
	if !ok {
		return Decimal{}, errors.InvalidFormat(errors.ModuleMathx, "new_decimal", s, DecimalFormat, nil)
	}
	return Decimal{value: rat}, nil
}

// MustNewDecimal creates a new Decimal from a string, panicking on error.
// Use this for constants.
func MustNewDecimal(s string) Decimal {
	d, err := NewDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewDecimalFromInt creates a new Decimal from an integer
func NewDecimalFromInt(i int64) Decimal {
	return Decimal{value: new(big.Rat).SetInt64(i)}
}

// Zero returns a decimal representing zero
func Zero() Decimal {
	return Decimal{value: new(big.Rat)}
}

// One returns a decimal representing one
func One() Decimal {
	return NewDecimalFromInt(1)
}

// rat returns the underlying value, treating the zero Decimal as 0
func (d Decimal) rat() *big.Rat {
	if d.value == nil {
		return new(big.Rat)
	}
	return d.value
}

// Add returns the sum of d and other
func (d Decimal) Add(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Add(d.rat(), other.rat())}
}

// Subtract returns the difference of d and other
func (d Decimal) Subtract(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Sub(d.rat(), other.rat())}
}

// Multiply returns the product of d and other
func (d Decimal) Multiply(other Decimal) Decimal {
	return Decimal{value: new(big.Rat).Mul(d.rat(), other.rat())}
}

// Divide returns the quotient of d and other
func (d Decimal) Divide(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Decimal{}, errors.DivisionByZero(errors.ModuleMathx, "divide", d.String())
	}
	return Decimal{value: new(big.Rat).Quo(d.rat(), other.rat())}, nil
}

// MustDivide returns the quotient of d and other, panicking on division by zero
func (d Decimal) MustDivide(other Decimal) Decimal {
	result, err := d.Divide(other)
	if err != nil {
		panic(err)
	}
	return result
}

// Neg returns the negation of d
func (d Decimal) Neg() Decimal {
	return Decimal{value: new(big.Rat).Neg(d.rat())}
}

// Abs returns the absolute value of d
func (d Decimal) Abs() Decimal {
	return Decimal{value: new(big.Rat).Abs(d.rat())}
}

// Sign returns the sign of d: -1 if negative, 0 if zero, +1 if positive
func (d Decimal) Sign() int {
	return d.rat().Sign()
}

// IsZero returns true if d equals zero
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsNegative returns true if d is less than zero
func (d Decimal) IsNegative() bool {
	return d.Sign() < 0
}

// Compare returns -1 if d < other, 0 if d == other, +1 if d > other
func (d Decimal) Compare(other Decimal) int {
	return d.rat().Cmp(other.rat())
}

// Equal returns true if d equals other
func (d Decimal) Equal(other Decimal) bool {
	return d.Compare(other) == 0
}

// GreaterThan returns true if d > other
func (d Decimal) GreaterThan(other Decimal) bool {
	return d.Compare(other) > 0
}

// LessThan returns true if d < other
func (d Decimal) LessThan(other Decimal) bool {
	return d.Compare(other) < 0
}

// Round rounds d to the given number of decimal places
func (d Decimal) Round(places int, mode RoundingMode) Decimal {
	if places < 0 {
		places = 0
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	scaled := new(big.Rat).Mul(d.rat(), new(big.Rat).SetInt(scale))

	// q is truncated toward zero, r carries the sign of the numerator
	q, r := new(big.Int).QuoRem(scaled.Num(), scaled.Denom(), new(big.Int))

	if r.Sign() != 0 && mode != RoundingModeDown {
		// compare 2|r| with the denominator to find the half point
		twice := new(big.Int).Abs(r)
		twice.Lsh(twice, 1)
		cmp := twice.Cmp(scaled.Denom())

		roundAway := cmp > 0 || (cmp == 0 && (mode == RoundingModeHalfUp || q.Bit(0) == 1))
		if roundAway {
			q.Add(q, big.NewInt(int64(scaled.Sign())))
		}
	}

	return Decimal{value: new(big.Rat).SetFrac(q, scale)}
}

// String returns the decimal representation of d. Terminating fractions are
// printed exactly without trailing zeros; others are rounded half away from
// zero to 10 places.
func (d Decimal) String() string {
	r := d.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	places := terminatingPlaces(r.Denom())
	if places < 0 || places > maxStringPlaces {
		places = maxStringPlaces
	}

	s := r.FloatString(places)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// StringFixed returns d rounded half-up to a fixed number of decimal places
func (d Decimal) StringFixed(places int) string {
	if places < 0 {
		places = 0
	}
	return d.Round(places, RoundingModeHalfUp).rat().FloatString(places)
}

// Float64 returns the nearest float64 value of d
func (d Decimal) Float64() float64 {
	f, _ := d.rat().Float64()
	return f
}

// MarshalText implements encoding.TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	parsed, err := NewDecimal(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// terminatingPlaces returns the number of decimal places needed to print a
// fraction with the given denominator exactly, or -1 if the expansion repeats.
func terminatingPlaces(denom *big.Int) int {
	rest := new(big.Int).Set(denom)
	two, five := big.NewInt(2), big.NewInt(5)
	mod := new(big.Int)
	twos, fives := 0, 0

	for {
		q, m := new(big.Int).QuoRem(rest, two, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		twos++
	}
	for {
		q, m := new(big.Int).QuoRem(rest, five, mod)
		if m.Sign() != 0 {
			break
		}
		rest = q
		fives++
	}

	if rest.Cmp(big.NewInt(1)) != 0 {
		return -1
	}
	if twos > fives {
		return twos
	}
	return fives
}
