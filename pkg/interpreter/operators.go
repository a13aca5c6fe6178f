package interpreter

import (
	"fmt"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func applyBinaryOperator(op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case ast.OpAdd, ast.OpSubtract, ast.OpMultiply:
		if isFloat(left) || isFloat(right) {
			return floatOp(op, left, right), nil
		}
		if isNumeric(left) && isNumeric(right) {
			return numericOp(op, left, right)
		}
		if op == ast.OpAdd {
			return runtime.StringValue{Val: runtime.Display(left) + runtime.Display(right)}, nil
		}
		if err := requireNumbers(left, right); err != nil {
			return nil, err
		}
		return numericOp(op, left, right)
	case ast.OpDivide:
		if err := requireNumbers(left, right); err != nil {
			return nil, err
		}
		l, _ := runtime.AsFloat(left)
		r, _ := runtime.AsFloat(right)
		if r == 0.0 {
			return nil, diag.DivisionByZero()
		}
		return runtime.FloatValue{Val: l / r}, nil
	case ast.OpModulo:
		return modulo(left, right)
	case ast.OpEqual:
		return runtime.BoolValue{Val: runtime.Equal(left, right)}, nil
	case ast.OpNotEqual:
		return runtime.BoolValue{Val: !runtime.Equal(left, right)}, nil
	case ast.OpLess, ast.OpLessEqual, ast.OpGreater, ast.OpGreaterEqual:
		cmp, ok := runtime.Compare(left, right)
		if !ok {
			return runtime.BoolValue{Val: false}, nil
		}
		var result bool
		switch op {
		case ast.OpLess:
			result = cmp < 0
		case ast.OpLessEqual:
			result = cmp <= 0
		case ast.OpGreater:
			result = cmp > 0
		default:
			result = cmp >= 0
		}
		return runtime.BoolValue{Val: result}, nil
	case ast.OpAnd:
		return runtime.BoolValue{Val: runtime.Truthy(left) && runtime.Truthy(right)}, nil
	case ast.OpOr:
		return runtime.BoolValue{Val: runtime.Truthy(left) || runtime.Truthy(right)}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", op)
	}
}

func isNumeric(v runtime.Value) bool {
	switch v.(type) {
	case runtime.IntegerValue, runtime.FloatValue, runtime.BigIntegerValue:
		return true
	default:
		return false
	}
}

func isFloat(v runtime.Value) bool {
	_, ok := v.(runtime.FloatValue)
	return ok
}

func requireNumbers(left, right runtime.Value) error {
	if !isNumeric(left) {
		return diag.Type("Number", runtime.TypeName(left))
	}
	if !isNumeric(right) {
		return diag.Type("Number", runtime.TypeName(right))
	}
	return nil
}

// numericOp applies + - * with promotion: Integer pairs stay Integer
// (wrapping on overflow) and a BigInteger with an Integer or BigInteger stays
// exact.
func numericOp(op ast.BinaryOperator, left, right runtime.Value) (runtime.Value, error) {
	if l, ok := left.(runtime.IntegerValue); ok {
		if r, ok := right.(runtime.IntegerValue); ok {
			switch op {
			case ast.OpAdd:
				return runtime.IntegerValue{Val: l.Val + r.Val}, nil
			case ast.OpSubtract:
				return runtime.IntegerValue{Val: l.Val - r.Val}, nil
			default:
				return runtime.IntegerValue{Val: l.Val * r.Val}, nil
			}
		}
	}
	if lb, ok := asBig(left); ok {
		if rb, ok := asBig(right); ok {
			switch op {
			case ast.OpAdd:
				return runtime.BigIntegerValue{Val: lb.Add(rb)}, nil
			case ast.OpSubtract:
				return runtime.BigIntegerValue{Val: lb.Sub(rb)}, nil
			default:
				return runtime.BigIntegerValue{Val: lb.Mul(rb)}, nil
			}
		}
	}
	return floatOp(op, left, right), nil
}

// floatOp applies + - * in float arithmetic. Operands that are not numbers
// count as 0.
func floatOp(op ast.BinaryOperator, left, right runtime.Value) runtime.Value {
	l, _ := runtime.AsFloat(left)
	r, _ := runtime.AsFloat(right)
	switch op {
	case ast.OpAdd:
		return runtime.FloatValue{Val: l + r}
	case ast.OpSubtract:
		return runtime.FloatValue{Val: l - r}
	default:
		return runtime.FloatValue{Val: l * r}
	}
}

func asBig(v runtime.Value) (runtime.BigInteger, bool) {
	switch n := v.(type) {
	case runtime.IntegerValue:
		return runtime.NewBigInteger(n.Val), true
	case runtime.BigIntegerValue:
		return n.Val, true
	default:
		return runtime.BigInteger{}, false
	}
}

func modulo(left, right runtime.Value) (runtime.Value, error) {
	if l, ok := left.(runtime.IntegerValue); ok {
		if r, ok := right.(runtime.IntegerValue); ok {
			if r.Val == 0 {
				return nil, diag.DivisionByZero()
			}
			return runtime.IntegerValue{Val: l.Val % r.Val}, nil
		}
	}
	lb, lok := asBig(left)
	rb, rok := asBig(right)
	if !lok {
		return nil, diag.Type("Integer", runtime.TypeName(left))
	}
	if !rok {
		return nil, diag.Type("Integer", runtime.TypeName(right))
	}
	if rb.IsZero() {
		return nil, diag.DivisionByZero()
	}
	rem, err := lb.Rem(rb)
	if err != nil {
		return nil, err
	}
	return runtime.BigIntegerValue{Val: rem}, nil
}
