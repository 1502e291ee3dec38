package catalog

import (
	"strconv"
	"strings"

	flerror "github.com/msto63/faultlab/foundation/core/error"
	"github.com/msto63/faultlab/foundation/core/errors"
	"github.com/msto63/faultlab/foundation/utils/mathx"
)

// NullLiteral is the textual form of an absent text or sequence argument
const NullLiteral = "null"

// ArgKind describes how a textual argument is decoded
type ArgKind string

const (
	KindText      ArgKind = "text"
	KindDecimal   ArgKind = "decimal"
	KindInt32     ArgKind = "int32"
	KindIndex     ArgKind = "index"
	KindBool      ArgKind = "bool"
	KindInt32List ArgKind = "int32-list"
	KindInt32Map  ArgKind = "int32-map"
	KindTextMap   ArgKind = "text-map"
)

// Example returns a sample encoding for the kind, shown by the CLI
func (k ArgKind) Example() string {
	switch k {
	case KindDecimal:
		return "1000.50"
	case KindInt32:
		return "619"
	case KindIndex:
		return "2"
	case KindBool:
		return "true"
	case KindInt32List:
		return "1,2,3"
	case KindInt32Map:
		return "Ani=20,Martin=25"
	case KindTextMap:
		return "Ani=20,Martin=twenty five"
	default:
		return "strawberry"
	}
}

// Param describes one operation argument
type Param struct {
	Name     string
	Kind     ArgKind
	Nullable bool
}

// Usage returns the parameter as shown in usage lines, e.g. <text?>
func (p Param) Usage() string {
	if p.Nullable {
		return "<" + p.Name + "?>"
	}
	return "<" + p.Name + ">"
}

func argError(operation string, param Param, raw string, cause error) *flerror.Error {
	return errors.NewErrorBuilder(errors.ModuleCatalog).
		Operation("decode_args").
		Messagef("argument %s of %s: %q is not a valid %s", param.Name, operation, raw, param.Kind).
		Cause(cause).
		Code(flerror.CodeInvalidInput).
		Detail("catalog_operation", operation).
		Detail("param", param.Name).
		Detail("input", raw).
		Build()
}

func decodeText(raw string) *string {
	if raw == NullLiteral {
		return nil
	}
	return &raw
}

func decodeDecimal(raw string) (mathx.Decimal, error) {
	return mathx.NewDecimal(raw)
}

func decodeInt32(raw string) (int32, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(n), nil
}

func decodeIndex(raw string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(raw))
}

func decodeBool(raw string) (bool, error) {
	return strconv.ParseBool(strings.TrimSpace(raw))
}

// decodeInt32List decodes "1,2,3". NullLiteral is a nil slice and the empty
// string an empty one.
func decodeInt32List(raw string) ([]int32, error) {
	raw = strings.TrimSpace(raw)
	switch raw {
	case NullLiteral:
		return nil, nil
	case "":
		return []int32{}, nil
	}

	parts := strings.Split(raw, ",")
	values := make([]int32, 0, len(parts))
	for _, part := range parts {
		v, err := decodeInt32(part)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// decodePairs decodes "k=v,k=v" into ordered key/value pairs. Keys are
// trimmed, values are kept verbatim. Duplicate keys are rejected.
func decodePairs(raw string) ([][2]string, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	seen := make(map[string]bool)
	var pairs [][2]string
	for _, part := range strings.Split(raw, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return nil, flerror.Newf("entry %q has no '='", part)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, flerror.Newf("entry %q has an empty key", part)
		}
		if seen[key] {
			return nil, flerror.Newf("duplicate key %q", key)
		}
		seen[key] = true
		pairs = append(pairs, [2]string{key, value})
	}
	return pairs, nil
}

func decodeInt32Map(raw string) (map[string]int32, error) {
	pairs, err := decodePairs(raw)
	if err != nil {
		return nil, err
	}

	m := make(map[string]int32, len(pairs))
	for _, pair := range pairs {
		v, err := decodeInt32(pair[1])
		if err != nil {
			return nil, err
		}
		m[pair[0]] = v
	}
	return m, nil
}

func decodeTextMap(raw string) (map[string]string, error) {
	pairs, err := decodePairs(raw)
	if err != nil {
		return nil, err
	}

	m := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		m[pair[0]] = pair[1]
	}
	return m, nil
}
