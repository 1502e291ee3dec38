// File: chain.go
// Title: Validator Chain Implementation
// Description: Provides composable validator chains that combine multiple
//              validation rules into a single validator. A chain always
//              runs every rule and collects all failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validator chain implementation
// - 2026-10-18 v0.2.0: Dropped conditional and parallel validators and
//                       early stopping; chains always collect every failure

package validation

import (
	"fmt"
)

// ValidatorChain represents a chain of validators executed in order
type ValidatorChain struct {
	validators []Validator
	name       string
}

// NewValidatorChain creates a new validator chain with an optional name
func NewValidatorChain(name ...string) *ValidatorChain {
	chainName := ""
	if len(name) > 0 {
		chainName = name[0]
	}
	return &ValidatorChain{name: chainName}
}

// Add adds a validator to the chain
func (c *ValidatorChain) Add(validator Validator) *ValidatorChain {
	c.validators = append(c.validators, validator)
	return c
}

// AddFunc adds a validator function to the chain
func (c *ValidatorChain) AddFunc(fn ValidatorFunc) *ValidatorChain {
	c.validators = append(c.validators, fn)
	return c
}

// Validate executes the validators in order and returns the combined result
func (c *ValidatorChain) Validate(value interface{}) ValidationResult {
	results := make([]ValidationResult, 0, len(c.validators))
	for _, validator := range c.validators {
		results = append(results, validator.Validate(value))
	}

	combined := Combine(results...)
	if !combined.Valid && c.name != "" {
		combined.WithContext("validator_chain", c.name)
	}
	return combined
}

// Name returns the chain name
func (c *ValidatorChain) Name() string {
	return c.name
}

// String returns a string representation of the validator chain
func (c *ValidatorChain) String() string {
	name := c.name
	if name == "" {
		name = "unnamed"
	}
	return fmt.Sprintf("ValidatorChain{name: %s, validators: %d}", name, len(c.validators))
}
