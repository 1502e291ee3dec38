// File: doc.go
// Title: Core Validation Framework Package Documentation
// Description: Provides validation interfaces, result types and validator
//              chains for structural checks of user supplied data.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation framework implementation
// - 2026-10-18 v0.2.0: Reduced to results, chains and the Required helper

/*
Package validation provides the validation framework used for structural
checks of user supplied data such as case files.

Validators return a ValidationResult instead of an error so that one pass can
report every problem. ValidatorChain runs validators in order and combines
their results:

	chain := validation.NewValidatorChain("case").
		AddFunc(validation.Required("name", func(v interface{}) interface{} {
			return v.(Case).Name
		})).
		AddFunc(checkExpectation)

	if result := chain.Validate(c); !result.Valid {
		return result.ToError()
	}

ToError converts a failed result into an INVALID_INPUT error from
foundation/core/error. The first failure's validation code and field are
recorded as details.
*/
package validation
