package interpreter

import (
	"fmt"
	"strings"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

// Names handled by the evaluator before any environment lookup.
var printNames = map[string]bool{"say": true, "print": true, "show": true}

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.dispatchExpression(node, env)
	if err != nil {
		return nil, diag.At(err, node.Line(), 0)
	}
	return val, nil
}

func (i *Interpreter) dispatchExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return runtime.IntegerValue{Val: n.Value}, nil
	case *ast.FloatLiteral:
		return runtime.FloatValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NothingLiteral:
		return runtime.NullValue{}, nil
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.ListLiteral:
		elements := make([]runtime.Value, 0, len(n.Elements))
		for _, el := range n.Elements {
			val, err := i.evaluateExpression(el, env)
			if err != nil {
				return nil, err
			}
			elements = append(elements, val)
		}
		return runtime.ListValue{Elements: elements}, nil
	case *ast.DictLiteral:
		return i.evaluateDictLiteral(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.FunctionCall:
		return i.evaluateFunctionCall(n, env)
	case *ast.IndexExpression:
		return i.evaluateIndexExpression(n, env)
	case *ast.PropertyAccess:
		// Instances have no readable properties yet; the object is still
		// evaluated for its errors.
		if _, err := i.evaluateExpression(n.Object, env); err != nil {
			return nil, err
		}
		return runtime.NullValue{}, nil
	case nil:
		return runtime.NullValue{}, nil
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateDictLiteral(lit *ast.DictLiteral, env *runtime.Environment) (runtime.Value, error) {
	entries := make(map[string]runtime.Value, len(lit.Entries))
	for _, entry := range lit.Entries {
		keyVal, err := i.evaluateExpression(entry.Key, env)
		if err != nil {
			return nil, err
		}
		key, ok := keyVal.(runtime.StringValue)
		if !ok {
			return nil, diag.Type("String", runtime.TypeName(keyVal))
		}
		val, err := i.evaluateExpression(entry.Value, env)
		if err != nil {
			return nil, err
		}
		entries[key.Val] = val
	}
	return runtime.DictValue{Entries: entries}, nil
}

// evaluateBinaryExpression evaluates both operands left to right before
// applying the operator; `and` and `or` do not short-circuit.
func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}
	return applyBinaryOperator(expr.Operator, left, right)
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case ast.OpNot:
		return runtime.BoolValue{Val: !runtime.Truthy(operand)}, nil
	case ast.OpNegate:
		switch v := operand.(type) {
		case runtime.IntegerValue:
			return runtime.IntegerValue{Val: -v.Val}, nil
		case runtime.FloatValue:
			return runtime.FloatValue{Val: -v.Val}, nil
		case runtime.BigIntegerValue:
			return runtime.BigIntegerValue{Val: v.Val.Neg()}, nil
		}
		return nil, diag.Type("Number", runtime.TypeName(operand))
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator)
	}
}

func (i *Interpreter) evaluateIndexExpression(expr *ast.IndexExpression, env *runtime.Environment) (runtime.Value, error) {
	object, err := i.evaluateExpression(expr.Object, env)
	if err != nil {
		return nil, err
	}
	index, err := i.evaluateExpression(expr.Index, env)
	if err != nil {
		return nil, err
	}
	return indexValue(object, index)
}

// indexValue reads one element. Lists and strings need an in-range Integer;
// dictionaries need a String key and yield Null for a missing one.
func indexValue(object, index runtime.Value) (runtime.Value, error) {
	switch obj := object.(type) {
	case runtime.ListValue:
		idx, ok := index.(runtime.IntegerValue)
		if !ok {
			return nil, diag.Type("Integer", runtime.TypeName(index))
		}
		if idx.Val < 0 || idx.Val >= int64(len(obj.Elements)) {
			return nil, diag.Index(idx.Val, len(obj.Elements))
		}
		return obj.Elements[idx.Val], nil
	case runtime.StringValue:
		idx, ok := index.(runtime.IntegerValue)
		if !ok {
			return nil, diag.Type("Integer", runtime.TypeName(index))
		}
		runes := []rune(obj.Val)
		if idx.Val < 0 || idx.Val >= int64(len(runes)) {
			return nil, diag.Index(idx.Val, len(runes))
		}
		return runtime.CharValue{Val: runes[idx.Val]}, nil
	case runtime.DictValue:
		key, ok := index.(runtime.StringValue)
		if !ok {
			return nil, diag.Type("String", runtime.TypeName(index))
		}
		if val, found := obj.Entries[key.Val]; found {
			return val, nil
		}
		return runtime.NullValue{}, nil
	default:
		return nil, diag.Type("List", runtime.TypeName(object))
	}
}

func (i *Interpreter) evaluateFunctionCall(call *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	if printNames[call.Callee] {
		return i.evaluateSay(call, env)
	}
	callee, err := env.Get(call.Callee)
	if err != nil {
		return nil, err
	}
	if !runtime.IsCallable(callee) {
		return nil, diag.Type("Function", runtime.TypeName(callee))
	}
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	i.logger.Debug("call", "function", call.Callee, "args", len(args), "line", call.Line())
	result, err := i.callFunction(callee, args, env)
	if err != nil {
		return nil, err
	}
	if call.StoreAs != "" {
		if err := assignName(env, call.StoreAs, result, false); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// evaluateSay writes the display form of each argument, space separated
// and newline terminated.
func (i *Interpreter) evaluateSay(call *ast.FunctionCall, env *runtime.Environment) (runtime.Value, error) {
	parts := make([]string, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		parts = append(parts, runtime.Display(val))
	}
	if _, err := fmt.Fprintln(i.out, strings.Join(parts, " ")); err != nil {
		return nil, err
	}
	return runtime.NullValue{}, nil
}

// callFunction invokes a user function or native. env is the caller's scope,
// handed to natives through their CallContext.
func (i *Interpreter) callFunction(callee runtime.Value, args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		if len(args) != fn.Arity() {
			return nil, diag.Runtimef("Function expects %d arguments, got %d", fn.Arity(), len(args))
		}
		if i.depth >= maxCallDepth {
			return nil, diag.Runtimef("Maximum call depth of %d exceeded in '%s'", maxCallDepth, fn.Name)
		}
		i.depth++
		defer func() { i.depth-- }()

		local := fn.Closure.CreateChild()
		for idx, param := range fn.Parameters {
			if err := local.Define(param, args[idx], false); err != nil {
				return nil, err
			}
		}
		result, err := i.evaluateBlock(fn.Body, local)
		if err != nil {
			if ret, ok := err.(returnSignal); ok {
				return ret.value, nil
			}
			return nil, escapedSignal(err)
		}
		return result, nil
	case runtime.NativeFunctionValue:
		if fn.Arity >= 0 && len(args) != fn.Arity {
			return nil, diag.Runtimef("Function '%s' expects %d arguments, got %d", fn.Name, fn.Arity, len(args))
		}
		ctx := &runtime.CallContext{
			Env: env,
			Out: i.out,
			Invoke: func(target runtime.Value, callArgs []runtime.Value) (runtime.Value, error) {
				if !runtime.IsCallable(target) {
					return nil, diag.Type("Function", runtime.TypeName(target))
				}
				return i.callFunction(target, callArgs, env)
			},
		}
		result, err := fn.Impl(ctx, args)
		if err != nil {
			return nil, err
		}
		if result == nil {
			return runtime.NullValue{}, nil
		}
		return result, nil
	default:
		return nil, diag.Type("Function", runtime.TypeName(callee))
	}
}
