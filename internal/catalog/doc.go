// Package catalog holds the faultlab operation catalog.
//
// Each operation of Exceptions is pure and either returns its result or
// fails with exactly one error code from foundation/core/error:
//
//	ReverseText            NULL_INPUT
//	CalculateDiscount      INVALID_ARGUMENT
//	GetElement             INDEX_OUT_OF_RANGE
//	PerformSecureOperation INVALID_STATE
//	ParseInt               INVALID_FORMAT
//	FindValueByKey         KEY_NOT_FOUND
//	AddNumbers             ARITHMETIC_OVERFLOW
//	DivideNumbers          DIVISION_BY_ZERO (ARITHMETIC_OVERFLOW for MinInt32 / -1)
//	SumCollectionElements  NULL_INPUT, INDEX_OUT_OF_RANGE
//	GetElementAsNumber     KEY_NOT_FOUND, INVALID_FORMAT
//
// Registry exposes the same operations by name with textual arguments for
// the CLI and the case runner. Argument encodings: "null" for an absent
// text or sequence, "1,2,3" for sequences (empty string for an empty one),
// "k=v,k=v" for mappings.
package catalog
