// File: example_test.go
// Title: Examples for stringx
// Description: Runnable examples for the text operations.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18

package stringx

import (
	"fmt"

	flerror "github.com/msto63/faultlab/foundation/core/error"
)

func ExampleReverse() {
	text := "strawberry"
	reversed, _ := Reverse(&text)
	fmt.Println(reversed)

	_, err := Reverse(nil)
	fmt.Println(flerror.GetCode(err))

	// Output:
	// yrrebwarts
	// NULL_INPUT
}

func ExampleParseInt32() {
	n, _ := ParseInt32("619")
	fmt.Println(n)

	_, err := ParseInt32("some string")
	fmt.Println(flerror.GetCode(err))

	// Output:
	// 619
	// INVALID_FORMAT
}
