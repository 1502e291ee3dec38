package catalog

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/errors"
	"github.com/msto63/faultlab/foundation/utils/mathx"
	"github.com/msto63/faultlab/foundation/utils/slicex"
)

// call runs an operation on already decoded arguments
type call func(e *Exceptions) (string, error)

// Operation describes one catalog operation
type Operation struct {
	Name     string
	Summary  string
	Params   []Param
	Failures []flerror.Code

	bind func(a *argv) call
}

// Usage returns the command line form of the operation
func (o Operation) Usage() string {
	return strings.Join(append([]string{o.Name}, slicex.Map(o.Params, Param.Usage)...), " ")
}

// Example returns a command line invocation built from sample arguments
func (o Operation) Example() string {
	args := slicex.Map(o.Params, func(p Param) string {
		example := p.Kind.Example()
		if strings.ContainsAny(example, " ") {
			return "'" + example + "'"
		}
		return example
	})
	return strings.Join(append([]string{o.Name}, args...), " ")
}

// Registry names every catalog operation and invokes them from textual
// arguments
type Registry struct {
	exceptions *Exceptions
	operations []Operation
	index      map[string]int
	defaults   map[string]map[string]string
}

// NewRegistry creates a registry bound to e
func NewRegistry(e *Exceptions) *Registry {
	r := &Registry{
		exceptions: e,
		index:      make(map[string]int),
		defaults:   make(map[string]map[string]string),
	}
	for _, op := range builtinOperations() {
		r.index[normalizeName(op.Name)] = len(r.operations)
		r.operations = append(r.operations, op)
	}
	return r
}

// Exceptions returns the catalog the registry invokes
func (r *Registry) Exceptions() *Exceptions {
	return r.exceptions
}

// Operations returns all operations in catalog order
func (r *Registry) Operations() []Operation {
	result := make([]Operation, len(r.operations))
	copy(result, r.operations)
	return result
}

// Lookup finds an operation by name. Case, '-' and '_' are ignored, so
// "ReverseText" and "reverse_text" both find reverse-text.
func (r *Registry) Lookup(name string) (Operation, error) {
	i, ok := r.index[normalizeName(name)]
	if !ok {
		return Operation{}, errors.NotFound(errors.ModuleCatalog, "lookup", fmt.Sprintf("operation %q", name))
	}
	return r.operations[i], nil
}

// SetDefault supplies the value used when a trailing argument is omitted
func (r *Registry) SetDefault(operation, param, value string) error {
	op, err := r.Lookup(operation)
	if err != nil {
		return err
	}
	for _, p := range op.Params {
		if p.Name == param {
			if r.defaults[op.Name] == nil {
				r.defaults[op.Name] = make(map[string]string)
			}
			r.defaults[op.Name][param] = value
			return nil
		}
	}
	return errors.NotFound(errors.ModuleCatalog, "set_default", fmt.Sprintf("parameter %q of %s", param, op.Name))
}

// Invoke decodes args for the named operation, runs it and returns its
// result as text. Unknown operations are NOT_FOUND and undecodable
// arguments INVALID_INPUT; the operation itself is not run in either case.
func (r *Registry) Invoke(ctx context.Context, name string, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	op, err := r.Lookup(name)
	if err != nil {
		return "", err
	}

	args = r.withDefaults(op, args)
	if len(args) != len(op.Params) {
		return "", errors.NewErrorBuilder(errors.ModuleCatalog).
			Operation("invoke").
			Messagef("%s takes %d arguments, got %d (usage: %s)", op.Name, len(op.Params), len(args), op.Usage()).
			Code(flerror.CodeInvalidInput).
			Detail("catalog_operation", op.Name).
			Build()
	}

	a := &argv{operation: op.Name, params: op.Params, raw: args}
	run := op.bind(a)
	if a.err != nil {
		return "", a.err
	}
	return run(r.exceptions)
}

func (r *Registry) withDefaults(op Operation, args []string) []string {
	defaults := r.defaults[op.Name]
	if len(defaults) == 0 || len(args) >= len(op.Params) {
		return args
	}

	filled := append([]string(nil), args...)
	for _, p := range op.Params[len(args):] {
		value, ok := defaults[p.Name]
		if !ok {
			return args
		}
		filled = append(filled, value)
	}
	return filled
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "").Replace(name)
}

// argv decodes positional arguments. The first failure sticks; later
// accessors return zero values.
type argv struct {
	operation string
	params    []Param
	raw       []string
	err       error
}

func (a *argv) fail(i int, cause error) {
	if a.err == nil {
		a.err = argError(a.operation, a.params[i], a.raw[i], cause)
	}
}

func (a *argv) text(i int) *string {
	if a.params[i].Nullable {
		return decodeText(a.raw[i])
	}
	s := a.raw[i]
	return &s
}

func (a *argv) decimal(i int) mathx.Decimal {
	v, err := decodeDecimal(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func (a *argv) integer(i int) int32 {
	v, err := decodeInt32(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func (a *argv) index(i int) int {
	v, err := decodeIndex(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func (a *argv) boolean(i int) bool {
	v, err := decodeBool(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func (a *argv) int32List(i int) []int32 {
	if !a.params[i].Nullable && strings.TrimSpace(a.raw[i]) == NullLiteral {
		a.fail(i, nil)
		return nil
	}
	v, err := decodeInt32List(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func (a *argv) int32Map(i int) map[string]int32 {
	v, err := decodeInt32Map(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func (a *argv) textMap(i int) map[string]string {
	v, err := decodeTextMap(a.raw[i])
	if err != nil {
		a.fail(i, err)
	}
	return v
}

func formatInt32(v int32, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(int64(v), 10), nil
}

func formatInt64(v int64, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(v, 10), nil
}

func formatDecimal(v mathx.Decimal, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func builtinOperations() []Operation {
	return []Operation{
		{
			Name:     OpReverseText,
			Summary:  "Reverse the characters of a text",
			Params:   []Param{{Name: "text", Kind: KindText, Nullable: true}},
			Failures: []flerror.Code{flerror.CodeNullInput},
			bind: func(a *argv) call {
				text := a.text(0)
				return func(e *Exceptions) (string, error) {
					return e.ReverseText(text)
				}
			},
		},
		{
			Name:    OpCalculateDiscount,
			Summary: "Apply a percentage discount to a price",
			Params: []Param{
				{Name: "total_price", Kind: KindDecimal},
				{Name: "discount_percentage", Kind: KindDecimal},
			},
			Failures: []flerror.Code{flerror.CodeInvalidArgument},
			bind: func(a *argv) call {
				total, discount := a.decimal(0), a.decimal(1)
				return func(e *Exceptions) (string, error) {
					return formatDecimal(e.CalculateDiscount(total, discount))
				}
			},
		},
		{
			Name:    OpGetElement,
			Summary: "Return the element at an index",
			Params: []Param{
				{Name: "numbers", Kind: KindInt32List},
				{Name: "index", Kind: KindIndex},
			},
			Failures: []flerror.Code{flerror.CodeIndexOutOfRange},
			bind: func(a *argv) call {
				numbers, index := a.int32List(0), a.index(1)
				return func(e *Exceptions) (string, error) {
					return formatInt32(e.GetElement(numbers, index))
				}
			},
		},
		{
			Name:     OpPerformSecureOperation,
			Summary:  "Run an operation that requires a logged in user",
			Params:   []Param{{Name: "is_logged_in", Kind: KindBool}},
			Failures: []flerror.Code{flerror.CodeInvalidState},
			bind: func(a *argv) call {
				loggedIn := a.boolean(0)
				return func(e *Exceptions) (string, error) {
					return e.PerformSecureOperation(loggedIn)
				}
			},
		},
		{
			Name:     OpParseInt,
			Summary:  "Parse a text as a 32-bit integer",
			Params:   []Param{{Name: "input", Kind: KindText}},
			Failures: []flerror.Code{flerror.CodeInvalidFormat},
			bind: func(a *argv) call {
				input := *a.text(0)
				return func(e *Exceptions) (string, error) {
					return formatInt32(e.ParseInt(input))
				}
			},
		},
		{
			Name:    OpFindValueByKey,
			Summary: "Look up a number by key",
			Params: []Param{
				{Name: "dictionary", Kind: KindInt32Map},
				{Name: "key", Kind: KindText},
			},
			Failures: []flerror.Code{flerror.CodeKeyNotFound},
			bind: func(a *argv) call {
				dictionary, key := a.int32Map(0), *a.text(1)
				return func(e *Exceptions) (string, error) {
					return formatInt32(e.FindValueByKey(dictionary, key))
				}
			},
		},
		{
			Name:    OpAddNumbers,
			Summary: "Add two 32-bit integers without wrapping",
			Params: []Param{
				{Name: "a", Kind: KindInt32},
				{Name: "b", Kind: KindInt32},
			},
			Failures: []flerror.Code{flerror.CodeArithmeticOverflow},
			bind: func(a *argv) call {
				x, y := a.integer(0), a.integer(1)
				return func(e *Exceptions) (string, error) {
					return formatInt32(e.AddNumbers(x, y))
				}
			},
		},
		{
			Name:    OpDivideNumbers,
			Summary: "Divide two 32-bit integers, truncating toward zero",
			Params: []Param{
				{Name: "dividend", Kind: KindInt32},
				{Name: "divisor", Kind: KindInt32},
			},
			Failures: []flerror.Code{flerror.CodeDivisionByZero, flerror.CodeArithmeticOverflow},
			bind: func(a *argv) call {
				dividend, divisor := a.integer(0), a.integer(1)
				return func(e *Exceptions) (string, error) {
					return formatInt32(e.DivideNumbers(dividend, divisor))
				}
			},
		},
		{
			Name:    OpSumCollectionElements,
			Summary: "Sum a collection after checking an index into it",
			Params: []Param{
				{Name: "collection", Kind: KindInt32List, Nullable: true},
				{Name: "index", Kind: KindIndex},
			},
			Failures: []flerror.Code{flerror.CodeNullInput, flerror.CodeIndexOutOfRange},
			bind: func(a *argv) call {
				collection, index := a.int32List(0), a.index(1)
				return func(e *Exceptions) (string, error) {
					return formatInt64(e.SumCollectionElements(collection, index))
				}
			},
		},
		{
			Name:    OpGetElementAsNumber,
			Summary: "Look up a text by key and parse it as a number",
			Params: []Param{
				{Name: "dictionary", Kind: KindTextMap},
				{Name: "key", Kind: KindText},
			},
			Failures: []flerror.Code{flerror.CodeKeyNotFound, flerror.CodeInvalidFormat},
			bind: func(a *argv) call {
				dictionary, key := a.textMap(0), *a.text(1)
				return func(e *Exceptions) (string, error) {
					return formatInt32(e.GetElementAsNumber(dictionary, key))
				}
			},
		},
	}
}
