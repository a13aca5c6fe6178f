package runtime

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Truthy applies the language's boolean coercion: Null, empty
// string/list/dict and numeric zero are false.
func Truthy(v Value) bool {
	switch val := v.(type) {
	case nil, NullValue:
		return false
	case BoolValue:
		return val.Val
	case IntegerValue:
		return val.Val != 0
	case FloatValue:
		return val.Val != 0
	case StringValue:
		return val.Val != ""
	case ListValue:
		return len(val.Elements) > 0
	case DictValue:
		return len(val.Entries) > 0
	case BigIntegerValue:
		return !val.Val.IsZero()
	default:
		return true
	}
}

// Display renders v the way `say` prints it.
func Display(v Value) string {
	switch val := v.(type) {
	case nil, NullValue:
		return "nothing"
	case IntegerValue:
		return strconv.FormatInt(val.Val, 10)
	case FloatValue:
		return FormatFloat(val.Val)
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case CharValue:
		return string(val.Val)
	case StringValue:
		return val.Val
	case BigIntegerValue:
		return val.Val.String()
	case ListValue:
		parts := make([]string, len(val.Elements))
		for i, el := range val.Elements {
			parts[i] = Display(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case DictValue:
		keys := SortedKeys(val)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + Display(val.Entries[k])
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case *InstanceValue:
		return "<instance>"
	case *FunctionValue, NativeFunctionValue:
		return "<function>"
	default:
		return "<unknown>"
	}
}

// FormatFloat prints f with six significant digits and no trailing zeros,
// so 2.0 prints as "2" and 4/3 as "1.33333".
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'g', 6, 64)
}

// SortedKeys returns the keys of d in ascending order.
func SortedKeys(d DictValue) []string {
	keys := make([]string, 0, len(d.Entries))
	for k := range d.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Equal compares values of the same kind. Values of different kinds are
// never equal, and functions and instances are not equal to anything.
func Equal(a, b Value) bool {
	if a == nil {
		a = NullValue{}
	}
	if b == nil {
		b = NullValue{}
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NullValue:
		return true
	case IntegerValue:
		return av.Val == b.(IntegerValue).Val
	case FloatValue:
		return av.Val == b.(FloatValue).Val
	case BoolValue:
		return av.Val == b.(BoolValue).Val
	case CharValue:
		return av.Val == b.(CharValue).Val
	case StringValue:
		return av.Val == b.(StringValue).Val
	case BigIntegerValue:
		return av.Val.Cmp(b.(BigIntegerValue).Val) == 0
	case ListValue:
		bv := b.(ListValue)
		if len(av.Elements) != len(bv.Elements) {
			return false
		}
		for i := range av.Elements {
			if !Equal(av.Elements[i], bv.Elements[i]) {
				return false
			}
		}
		return true
	case DictValue:
		bv := b.(DictValue)
		if len(av.Entries) != len(bv.Entries) {
			return false
		}
		for k, v := range av.Entries {
			other, ok := bv.Entries[k]
			if !ok || !Equal(v, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two values of the same orderable kind (Integer, Float,
// String, BigInteger). ok is false for any other pairing.
func Compare(a, b Value) (cmp int, ok bool) {
	switch av := a.(type) {
	case IntegerValue:
		if bv, same := b.(IntegerValue); same {
			return compareOrdered(av.Val, bv.Val), true
		}
	case FloatValue:
		if bv, same := b.(FloatValue); same {
			if math.IsNaN(av.Val) || math.IsNaN(bv.Val) {
				return 0, false
			}
			return compareOrdered(av.Val, bv.Val), true
		}
	case StringValue:
		if bv, same := b.(StringValue); same {
			return strings.Compare(av.Val, bv.Val), true
		}
	case BigIntegerValue:
		if bv, same := b.(BigIntegerValue); same {
			return av.Val.Cmp(bv.Val), true
		}
	}
	return 0, false
}

func compareOrdered[T int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AsFloat widens Integer, Float and BigInteger values.
func AsFloat(v Value) (float64, bool) {
	switch val := v.(type) {
	case IntegerValue:
		return float64(val.Val), true
	case FloatValue:
		return val.Val, true
	case BigIntegerValue:
		return val.Val.Float64(), true
	default:
		return 0, false
	}
}

// AsInt returns the value of an Integer, or of a BigInteger that fits.
func AsInt(v Value) (int64, bool) {
	switch val := v.(type) {
	case IntegerValue:
		return val.Val, true
	case BigIntegerValue:
		return val.Val.Int64()
	default:
		return 0, false
	}
}
