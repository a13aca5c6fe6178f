package interpreter

import (
	"fmt"
	"math"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.dispatchStatement(node, env)
	if err != nil {
		return nil, diag.At(err, node.Line(), 0)
	}
	return val, nil
}

func (i *Interpreter) dispatchStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case ast.Expression:
		return i.evaluateExpression(n, env)
	case *ast.Assignment:
		return i.evaluateAssignment(n, env)
	case *ast.Block:
		return i.evaluateBlock(n, env)
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, env)
	case *ast.WhileLoop:
		return i.evaluateWhileLoop(n, env)
	case *ast.RepeatLoop:
		return i.evaluateRepeatLoop(n, env)
	case *ast.RangeLoop:
		return i.evaluateRangeLoop(n, env)
	case *ast.ForEachLoop:
		return i.evaluateForEachLoop(n, env)
	case *ast.FunctionDefinition:
		return i.evaluateFunctionDefinition(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case *ast.StopStatement:
		return nil, breakSignal{line: n.Line()}
	case *ast.SkipStatement:
		return nil, continueSignal{line: n.Line()}
	case *ast.ForgetStatement:
		if !env.Remove(n.Name) {
			return nil, diag.Undefined(n.Name)
		}
		return runtime.NullValue{}, nil
	case *ast.GuiCommand:
		return i.evaluateGuiCommand(n, env)
	case nil:
		return runtime.NullValue{}, nil
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

// evaluateBlock runs a statement list in env and yields the last value.
// Signals propagate to the enclosing loop or call frame.
func (i *Interpreter) evaluateBlock(block *ast.Block, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NullValue{}
	if block == nil {
		return result, nil
	}
	for _, stmt := range block.Body {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

// evaluateAssignment defines the name in the current scope unless some
// enclosing scope already binds it, in which case that binding is updated.
// Constants are always defined in the current scope.
func (i *Interpreter) evaluateAssignment(assign *ast.Assignment, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(assign.Value, env)
	if err != nil {
		return nil, err
	}
	if err := assignName(env, assign.Name, val, assign.Constant); err != nil {
		return nil, err
	}
	return val, nil
}

func assignName(env *runtime.Environment, name string, val runtime.Value, constant bool) error {
	if !constant && env.Exists(name) {
		return env.Set(name, val)
	}
	return env.Define(name, val, constant)
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	cond, err := i.evaluateExpression(stmt.Condition, env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(cond) {
		return i.evaluateBlock(stmt.Then, env)
	}
	if stmt.Otherwise != nil {
		return i.evaluateBlock(stmt.Otherwise, env)
	}
	return runtime.NullValue{}, nil
}

// runIteration evaluates one loop body. stop reports a `stop` statement;
// a `skip` ends the iteration without error.
func (i *Interpreter) runIteration(body *ast.Block, env *runtime.Environment) (val runtime.Value, stop bool, err error) {
	val, err = i.evaluateBlock(body, env)
	if err != nil {
		switch err.(type) {
		case breakSignal:
			return nil, true, nil
		case continueSignal:
			return nil, false, nil
		default:
			return nil, false, err
		}
	}
	return val, false, nil
}

func (i *Interpreter) evaluateWhileLoop(loop *ast.WhileLoop, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NullValue{}
	for {
		cond, err := i.evaluateExpression(loop.Condition, env)
		if err != nil {
			return nil, err
		}
		if !runtime.Truthy(cond) {
			return result, nil
		}
		val, stop, err := i.runIteration(loop.Body, env)
		if err != nil {
			return nil, err
		}
		if stop {
			return result, nil
		}
		if val != nil {
			result = val
		}
	}
}

func (i *Interpreter) evaluateRepeatLoop(loop *ast.RepeatLoop, env *runtime.Environment) (runtime.Value, error) {
	countVal, err := i.evaluateExpression(loop.Count, env)
	if err != nil {
		return nil, err
	}
	count, ok := countVal.(runtime.IntegerValue)
	if !ok {
		return nil, diag.Type("Integer", runtime.TypeName(countVal))
	}
	var result runtime.Value = runtime.NullValue{}
	for n := int64(0); n < count.Val; n++ {
		val, stop, err := i.runIteration(loop.Body, env)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		if val != nil {
			result = val
		}
	}
	return result, nil
}

// evaluateRangeLoop counts inclusively from From to To, upward or downward,
// binding the counter in a fresh child scope for every iteration.
func (i *Interpreter) evaluateRangeLoop(loop *ast.RangeLoop, env *runtime.Environment) (runtime.Value, error) {
	from, err := i.evaluateInteger(loop.From, env)
	if err != nil {
		return nil, err
	}
	to, err := i.evaluateInteger(loop.To, env)
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if loop.Step != nil {
		if step, err = i.evaluateInteger(loop.Step, env); err != nil {
			return nil, err
		}
		if step <= 0 {
			return nil, diag.Runtimef("Loop step must be a positive integer, got %d", step)
		}
	}
	ascending := from <= to
	var result runtime.Value = runtime.NullValue{}
	for current := from; (ascending && current <= to) || (!ascending && current >= to); {
		scope := env.CreateChild()
		if err := scope.Define(loop.Variable, runtime.IntegerValue{Val: current}, false); err != nil {
			return nil, err
		}
		val, stop, err := i.runIteration(loop.Body, scope)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		if val != nil {
			result = val
		}
		if ascending {
			if current > math.MaxInt64-step {
				break
			}
			current += step
		} else {
			if current < math.MinInt64+step {
				break
			}
			current -= step
		}
	}
	return result, nil
}

func (i *Interpreter) evaluateInteger(expr ast.Expression, env *runtime.Environment) (int64, error) {
	val, err := i.evaluateExpression(expr, env)
	if err != nil {
		return 0, err
	}
	n, ok := val.(runtime.IntegerValue)
	if !ok {
		return 0, diag.Type("Integer", runtime.TypeName(val))
	}
	return n.Val, nil
}

func (i *Interpreter) evaluateForEachLoop(loop *ast.ForEachLoop, env *runtime.Environment) (runtime.Value, error) {
	iterable, err := i.evaluateExpression(loop.Iterable, env)
	if err != nil {
		return nil, err
	}
	list, ok := iterable.(runtime.ListValue)
	if !ok {
		return nil, diag.Type("List", runtime.TypeName(iterable))
	}
	var result runtime.Value = runtime.NullValue{}
	for _, item := range list.Elements {
		scope := env.CreateChild()
		if err := scope.Define(loop.Variable, item, false); err != nil {
			return nil, err
		}
		val, stop, err := i.runIteration(loop.Body, scope)
		if err != nil {
			return nil, err
		}
		if stop {
			break
		}
		if val != nil {
			result = val
		}
	}
	return result, nil
}

// evaluateFunctionDefinition binds a closure over env. Redefining a
// function in the same scope replaces it.
func (i *Interpreter) evaluateFunctionDefinition(def *ast.FunctionDefinition, env *runtime.Environment) (runtime.Value, error) {
	fn := &runtime.FunctionValue{
		Name:       def.Name,
		Parameters: def.Parameters,
		Body:       def.Body,
		Closure:    env,
	}
	if env.Owns(def.Name) {
		if err := env.Set(def.Name, fn); err != nil {
			return nil, err
		}
		return runtime.NullValue{}, nil
	}
	if err := env.Define(def.Name, fn, false); err != nil {
		return nil, err
	}
	return runtime.NullValue{}, nil
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NullValue{}
	if stmt.Argument != nil {
		val, err := i.evaluateExpression(stmt.Argument, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return nil, returnSignal{value: result}
}
