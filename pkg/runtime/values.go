package runtime

import (
	"fmt"
	"io"

	"kaynat/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNull Kind = iota
	KindInteger
	KindFloat
	KindBoolean
	KindCharacter
	KindString
	KindBigInteger
	KindList
	KindDict
	KindInstance
	KindFunction
	KindNativeFunction
)

// String returns the user-facing type name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindBoolean:
		return "Boolean"
	case KindCharacter:
		return "Character"
	case KindString:
		return "String"
	case KindBigInteger:
		return "BigInteger"
	case KindList:
		return "List"
	case KindDict:
		return "Dictionary"
	case KindInstance:
		return "Instance"
	case KindFunction, KindNativeFunction:
		return "Function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values. Values are never
// mutated after construction; collection operations build new values.
type Value interface {
	Kind() Kind
}

// TypeName returns the type name of v, treating a nil interface as Null.
func TypeName(v Value) string {
	if v == nil {
		return KindNull.String()
	}
	return v.Kind().String()
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type NullValue struct{}

func (NullValue) Kind() Kind { return KindNull }

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBoolean }

type CharValue struct {
	Val rune
}

func (v CharValue) Kind() Kind { return KindCharacter }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BigIntegerValue struct {
	Val BigInteger
}

func (v BigIntegerValue) Kind() Kind { return KindBigInteger }

//-----------------------------------------------------------------------------
// Collections
//-----------------------------------------------------------------------------

type ListValue struct {
	Elements []Value
}

func (v ListValue) Kind() Kind { return KindList }

// NewList copies elements into a fresh list value.
func NewList(elements []Value) ListValue {
	out := make([]Value, len(elements))
	copy(out, elements)
	return ListValue{Elements: out}
}

type DictValue struct {
	Entries map[string]Value
}

func (v DictValue) Kind() Kind { return KindDict }

// NewDict copies entries into a fresh dictionary value.
func NewDict(entries map[string]Value) DictValue {
	out := make(map[string]Value, len(entries))
	for k, v := range entries {
		out[k] = v
	}
	return DictValue{Entries: out}
}

// InstanceValue is an opaque object handle. Nothing in the language creates
// one yet; the slot exists so the value set is closed.
type InstanceValue struct {
	ClassName string
	Fields    map[string]Value
}

func (v *InstanceValue) Kind() Kind { return KindInstance }

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// FunctionValue is a user-defined closure.
type FunctionValue struct {
	Name       string
	Parameters []string
	Body       *ast.Block
	Closure    *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// Arity returns the exact argument count the function accepts.
func (v *FunctionValue) Arity() int { return len(v.Parameters) }

// CallContext gives native functions access to the evaluator.
type CallContext struct {
	Env *Environment
	Out io.Writer
	// Invoke calls any callable value; natives that take callbacks
	// (list_map, list_filter, ...) use it.
	Invoke func(fn Value, args []Value) (Value, error)
}

type NativeFunc func(*CallContext, []Value) (Value, error)

// NativeFunctionValue is a Go-implemented builtin. Arity -1 means the
// function validates its own argument count.
type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// IsCallable reports whether v can be invoked.
func IsCallable(v Value) bool {
	switch v.(type) {
	case *FunctionValue, NativeFunctionValue:
		return true
	default:
		return false
	}
}
