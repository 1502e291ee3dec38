package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/log"
	"github.com/msto63/faultlab/foundation/utils/mathx"
)

func ptr(s string) *string { return &s }

func dec(s string) mathx.Decimal { return mathx.MustNewDecimal(s) }

func TestReverseText(t *testing.T) {
	e := New()

	got, err := e.ReverseText(ptr("strawberry"))
	require.NoError(t, err)
	assert.Equal(t, "yrrebwarts", got)

	got, err = e.ReverseText(ptr(""))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	_, err = e.ReverseText(nil)
	assert.ErrorIs(t, err, flerror.ErrNullInput)
}

func TestCalculateDiscount(t *testing.T) {
	e := New()

	got, err := e.CalculateDiscount(dec("1000"), dec("54"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("460")), "got %s", got)
	assert.Equal(t, "460", got.String())

	tests := []struct {
		name     string
		total    string
		discount string
		want     string
	}{
		{"zero discount", "1000", "0", "1000"},
		{"full discount", "1000", "100", "0"},
		{"fractional", "19.99", "10", "17.991"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.CalculateDiscount(dec(tt.total), dec(tt.discount))
			require.NoError(t, err)
			assert.True(t, got.Equal(dec(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestCalculateDiscountInvalid(t *testing.T) {
	e := New()

	for _, tc := range []struct{ total, discount string }{
		{"1000", "-25"},
		{"100.0", "110.0"},
		{"100", "100.0001"},
		{"100", "-0.0001"},
	} {
		_, err := e.CalculateDiscount(dec(tc.total), dec(tc.discount))
		assert.ErrorIs(t, err, flerror.ErrInvalidArgument, "discount %s", tc.discount)
	}
}

func TestGetElement(t *testing.T) {
	e := New()

	got, err := e.GetElement([]int32{1, 2, 3}, 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), got)

	for _, tc := range []struct {
		numbers []int32
		index   int
	}{
		{[]int32{1, 2, 3}, -1},
		{[]int32{10, 20, 30, 40, 50}, 5},
		{[]int32{10, 20, 30, 40, 50}, 7},
		{nil, 0},
	} {
		_, err := e.GetElement(tc.numbers, tc.index)
		assert.ErrorIs(t, err, flerror.ErrIndexOutOfRange, "index %d of %v", tc.index, tc.numbers)
	}
}

func TestElementAtGeneric(t *testing.T) {
	e := New()

	word, err := ElementAt(e, []string{"a", "b", "c"}, 2)
	require.NoError(t, err)
	assert.Equal(t, "c", word)

	_, err = ElementAt(e, []string{"a"}, 1)
	assert.ErrorIs(t, err, flerror.ErrIndexOutOfRange)
}

func TestPerformSecureOperation(t *testing.T) {
	e := New()

	got, err := e.PerformSecureOperation(true)
	require.NoError(t, err)
	assert.Equal(t, "User logged in.", got)

	got, err = e.PerformSecureOperation(false)
	assert.ErrorIs(t, err, flerror.ErrInvalidState)
	assert.Empty(t, got)
}

func TestParseInt(t *testing.T) {
	e := New()

	got, err := e.ParseInt("619")
	require.NoError(t, err)
	assert.Equal(t, int32(619), got)

	for _, input := range []string{"some string", "", "12.5", "2147483648", "0x10"} {
		_, err := e.ParseInt(input)
		assert.ErrorIs(t, err, flerror.ErrInvalidFormat, "input %q", input)
	}
}

func TestFindValueByKey(t *testing.T) {
	e := New()
	ages := map[string]int32{"Ani": 20, "Martin": 25, "Victoria": 18}

	got, err := e.FindValueByKey(ages, "Martin")
	require.NoError(t, err)
	assert.Equal(t, int32(25), got)

	_, err = e.FindValueByKey(ages, "Maria")
	assert.ErrorIs(t, err, flerror.ErrKeyNotFound)
}

func TestAddNumbers(t *testing.T) {
	e := New()

	got, err := e.AddNumbers(619, 523)
	require.NoError(t, err)
	assert.Equal(t, int32(1142), got)

	got, err = e.AddNumbers(math.MaxInt32, 0)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), got)

	_, err = e.AddNumbers(math.MaxInt32, math.MaxInt32)
	assert.ErrorIs(t, err, flerror.ErrArithmeticOverflow)

	_, err = e.AddNumbers(math.MinInt32, math.MinInt32)
	assert.ErrorIs(t, err, flerror.ErrArithmeticOverflow)
}

func TestDivideNumbers(t *testing.T) {
	e := New()

	got, err := e.DivideNumbers(125, 5)
	require.NoError(t, err)
	assert.Equal(t, int32(25), got)

	got, err = e.DivideNumbers(-7, 2)
	require.NoError(t, err)
	assert.Equal(t, int32(-3), got, "division truncates toward zero")

	_, err = e.DivideNumbers(125, 0)
	assert.ErrorIs(t, err, flerror.ErrDivisionByZero)

	_, err = e.DivideNumbers(math.MinInt32, -1)
	assert.ErrorIs(t, err, flerror.ErrArithmeticOverflow)
}

func TestSumCollectionElements(t *testing.T) {
	e := New()

	got, err := e.SumCollectionElements([]int32{1, 2, 3, 4}, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(10), got)

	_, err = e.SumCollectionElements(nil, 2)
	assert.ErrorIs(t, err, flerror.ErrNullInput)

	_, err = e.SumCollectionElements([]int32{1, 2, 3, 4}, 6)
	assert.ErrorIs(t, err, flerror.ErrIndexOutOfRange)

	_, err = e.SumCollectionElements([]int32{1, 2, 3, 4}, -1)
	assert.ErrorIs(t, err, flerror.ErrIndexOutOfRange)
}

func TestGetElementAsNumber(t *testing.T) {
	e := New()
	ages := map[string]string{"Ani": "20", "Martin": "25"}

	got, err := e.GetElementAsNumber(ages, "Ani")
	require.NoError(t, err)
	assert.Equal(t, int32(20), got)

	_, err = e.GetElementAsNumber(ages, "Maria")
	assert.ErrorIs(t, err, flerror.ErrKeyNotFound)

	_, err = e.GetElementAsNumber(map[string]string{"Ani": "20", "Martin": "twenty five"}, "Martin")
	assert.ErrorIs(t, err, flerror.ErrInvalidFormat)
}

func TestEachFailureHasExactlyOneCode(t *testing.T) {
	e := New()
	_, err := e.DivideNumbers(1, 0)

	for _, code := range flerror.OperationCodes() {
		matched := flerror.HasCode(err, code)
		assert.Equal(t, code == flerror.CodeDivisionByZero, matched, "code %s", code)
	}
}

func TestFailuresCarryRequestID(t *testing.T) {
	e := New(WithRequestID("req-42"))
	assert.Equal(t, "req-42", e.RequestID())

	_, err := e.FindValueByKey(map[string]int32{}, "x")
	flErr, ok := flerror.As(err)
	require.True(t, ok)
	assert.Equal(t, "req-42", flErr.RequestID())
}

func TestGeneratedRequestID(t *testing.T) {
	a, b := New(), New()
	assert.NotEmpty(t, a.RequestID())
	assert.NotEqual(t, a.RequestID(), b.RequestID())
}

func TestOperationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: &buf})
	e := New(WithLogger(logger), WithRequestID("req-log"))

	_, err := e.AddNumbers(1, 2)
	require.NoError(t, err)
	_, err = e.DivideNumbers(1, 0)
	require.Error(t, err)

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}

	// invoke + completion for each call
	require.Len(t, entries, 4)
	for _, entry := range entries {
		assert.Equal(t, "req-log", entry["request_id"])
		assert.Equal(t, "catalog", entry["logger"])
	}
	assert.Equal(t, "add-numbers completed", entries[1]["message"])

	failure := entries[3]
	assert.Equal(t, "warn", failure["level"])
	assert.Equal(t, "DIVISION_BY_ZERO", failure["error_code"])
	assert.Equal(t, "divide-numbers", failure["operation"])
}

func TestErrorsAreNotWrappedAway(t *testing.T) {
	e := New()
	_, err := e.ParseInt("abc")

	var flErr *flerror.Error
	require.True(t, errors.As(err, &flErr))
	assert.Equal(t, flerror.CodeInvalidFormat, flErr.Code())
	assert.Equal(t, "argument", flErr.Code().Category())
}
