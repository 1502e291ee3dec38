// File: business.go
// Title: Business Calculation Functions
// Description: Percentage and discount calculations on Decimal values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core business calculations
// - 2026-10-18 v0.2.0: ApplyDiscount validates the percentage range

package mathx

import (
	"github.com/msto63/faultlab/foundation/core/errors"
)

var hundred = NewDecimalFromInt(100)

// CalculatePercentage calculates the percentage of a value.
// Example: CalculatePercentage(100, 20) returns 20 (20% of 100)
func CalculatePercentage(value, percentage Decimal) Decimal {
	return value.Multiply(percentage).MustDivide(hundred)
}

// ApplyDiscount returns total reduced by percent percent, i.e.
// total * (1 - percent/100). percent must lie in [0, 100]; anything else is an
// InvalidArgument error. total is not validated.
func ApplyDiscount(total, percent Decimal) (Decimal, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return Decimal{}, errors.InvalidArgument(errors.ModuleMathx, "apply_discount",
			"discount", percent.String(), "discount must be between 0 and 100")
	}

	return total.Subtract(CalculatePercentage(total, percent)), nil
}
