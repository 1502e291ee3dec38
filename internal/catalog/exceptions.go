package catalog

import (
	"github.com/google/uuid"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/errors"
	"github.com/msto63/faultlab/foundation/core/log"
	"github.com/msto63/faultlab/foundation/utils/mapx"
	"github.com/msto63/faultlab/foundation/utils/mathx"
	"github.com/msto63/faultlab/foundation/utils/slicex"
	"github.com/msto63/faultlab/foundation/utils/stringx"
)

// SecureOperationMessage is returned by PerformSecureOperation on success
const SecureOperationMessage = "User logged in."

// Operation names as used by the registry and the CLI
const (
	OpReverseText            = "reverse-text"
	OpCalculateDiscount      = "calculate-discount"
	OpGetElement             = "get-element"
	OpPerformSecureOperation = "perform-secure-operation"
	OpParseInt               = "parse-int"
	OpFindValueByKey         = "find-value-by-key"
	OpAddNumbers             = "add-numbers"
	OpDivideNumbers          = "divide-numbers"
	OpSumCollectionElements  = "sum-collection-elements"
	OpGetElementAsNumber     = "get-element-as-number"
)

// Exceptions is the operation catalog. Every operation either returns its
// result or fails with exactly one error code; failures carry the catalog's
// request ID and are logged.
type Exceptions struct {
	logger    *log.Logger
	requestID string
}

// Option configures an Exceptions catalog
type Option func(*Exceptions)

// WithLogger sets the logger used for invocation and failure logging
func WithLogger(logger *log.Logger) Option {
	return func(e *Exceptions) {
		e.logger = logger
	}
}

// WithRequestID sets the request ID attached to logs and errors
func WithRequestID(requestID string) Option {
	return func(e *Exceptions) {
		e.requestID = requestID
	}
}

// New creates a catalog. Without options it logs nothing and generates a
// random request ID.
func New(opts ...Option) *Exceptions {
	e := &Exceptions{}
	for _, opt := range opts {
		opt(e)
	}
	if e.requestID == "" {
		e.requestID = uuid.NewString()
	}
	if e.logger == nil {
		e.logger = log.Discard()
	}
	e.logger = e.logger.WithName("catalog").WithRequestID(e.requestID)
	return e
}

// RequestID returns the request ID of this catalog
func (e *Exceptions) RequestID() string {
	return e.requestID
}

// ReverseText returns text with its characters in reverse order.
// Fails with NULL_INPUT when text is nil.
func (e *Exceptions) ReverseText(text *string) (string, error) {
	timer := e.start(OpReverseText)
	result, err := stringx.Reverse(text)
	return result, e.finish(timer, err)
}

// CalculateDiscount returns totalPrice reduced by discountPercentage percent.
// Fails with INVALID_ARGUMENT when the percentage is below 0 or above 100.
func (e *Exceptions) CalculateDiscount(totalPrice, discountPercentage mathx.Decimal) (mathx.Decimal, error) {
	timer := e.start(OpCalculateDiscount)
	result, err := mathx.ApplyDiscount(totalPrice, discountPercentage)
	return result, e.finish(timer, err)
}

// GetElement returns numbers[index].
// Fails with INDEX_OUT_OF_RANGE when index is negative or not below len(numbers).
func (e *Exceptions) GetElement(numbers []int32, index int) (int32, error) {
	return ElementAt(e, numbers, index)
}

// ElementAt is GetElement for any element type
func ElementAt[T any](e *Exceptions, sequence []T, index int) (T, error) {
	timer := e.start(OpGetElement)
	result, err := slicex.At(sequence, index)
	return result, e.finish(timer, err)
}

// PerformSecureOperation returns SecureOperationMessage.
// Fails with INVALID_STATE when isUserLoggedIn is false.
func (e *Exceptions) PerformSecureOperation(isUserLoggedIn bool) (string, error) {
	timer := e.start(OpPerformSecureOperation)
	if !isUserLoggedIn {
		err := errors.InvalidState(errors.ModuleCatalog, "perform_secure_operation",
			"user must be logged in to perform a secure operation")
		return "", e.finish(timer, err)
	}
	return SecureOperationMessage, e.finish(timer, nil)
}

// ParseInt parses input as a base-10 32-bit integer.
// Fails with INVALID_FORMAT when input is not an integer literal in range.
func (e *Exceptions) ParseInt(input string) (int32, error) {
	timer := e.start(OpParseInt)
	result, err := stringx.ParseInt32(input)
	return result, e.finish(timer, err)
}

// FindValueByKey returns dictionary[key].
// Fails with KEY_NOT_FOUND when key is absent.
func (e *Exceptions) FindValueByKey(dictionary map[string]int32, key string) (int32, error) {
	timer := e.start(OpFindValueByKey)
	result, err := mapx.Lookup(dictionary, key)
	return result, e.finish(timer, err)
}

// AddNumbers returns a + b.
// Fails with ARITHMETIC_OVERFLOW when the sum is not representable as int32.
func (e *Exceptions) AddNumbers(a, b int32) (int32, error) {
	timer := e.start(OpAddNumbers)
	result, err := mathx.AddInt32(a, b)
	return result, e.finish(timer, err)
}

// DivideNumbers returns dividend / divisor truncated toward zero.
// Fails with DIVISION_BY_ZERO when divisor is 0, and with ARITHMETIC_OVERFLOW
// for MinInt32 / -1.
func (e *Exceptions) DivideNumbers(dividend, divisor int32) (int32, error) {
	timer := e.start(OpDivideNumbers)
	result, err := mathx.DivInt32(dividend, divisor)
	return result, e.finish(timer, err)
}

// SumCollectionElements returns the sum of all elements of collection after
// checking that index addresses one of them. Fails with NULL_INPUT when
// collection is nil, otherwise with INDEX_OUT_OF_RANGE for a bad index.
func (e *Exceptions) SumCollectionElements(collection []int32, index int) (int64, error) {
	timer := e.start(OpSumCollectionElements)
	result, err := slicex.CheckedSum(collection, index)
	return result, e.finish(timer, err)
}

// GetElementAsNumber returns the value stored under key parsed as int32.
// Fails with KEY_NOT_FOUND when key is absent and with INVALID_FORMAT when
// the stored text is not an integer literal.
func (e *Exceptions) GetElementAsNumber(dictionary map[string]string, key string) (int32, error) {
	timer := e.start(OpGetElementAsNumber)
	result, err := mapx.LookupInt32(dictionary, key)
	return result, e.finish(timer, err)
}

func (e *Exceptions) start(operation string) *log.Timer {
	e.logger.Debug("invoking operation", log.Field("operation", operation))
	return e.logger.StartTimer(operation)
}

// finish stops timer and returns err tagged with the request ID
func (e *Exceptions) finish(timer *log.Timer, err error) error {
	if err == nil {
		timer.Stop()
		return nil
	}

	if flErr, ok := flerror.As(err); ok {
		flErr.WithRequestID(e.requestID)
	}
	timer.StopWithError(err)
	return err
}
