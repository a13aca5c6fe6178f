package stdlib

import (
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func numberArg(args []runtime.Value, idx int) (float64, error) {
	f, ok := runtime.AsFloat(args[idx])
	if !ok {
		return 0, diag.Type("Number", runtime.TypeName(args[idx]))
	}
	return f, nil
}

func intArg(args []runtime.Value, idx int) (int64, error) {
	n, ok := args[idx].(runtime.IntegerValue)
	if !ok {
		return 0, diag.Type("Integer", runtime.TypeName(args[idx]))
	}
	return n.Val, nil
}

func stringArg(args []runtime.Value, idx int) (string, error) {
	s, ok := args[idx].(runtime.StringValue)
	if !ok {
		return "", diag.Type("String", runtime.TypeName(args[idx]))
	}
	return s.Val, nil
}

func listArg(args []runtime.Value, idx int) ([]runtime.Value, error) {
	l, ok := args[idx].(runtime.ListValue)
	if !ok {
		return nil, diag.Type("List", runtime.TypeName(args[idx]))
	}
	return l.Elements, nil
}

func callableArg(args []runtime.Value, idx int) (runtime.Value, error) {
	if !runtime.IsCallable(args[idx]) {
		return nil, diag.Type("Function", runtime.TypeName(args[idx]))
	}
	return args[idx], nil
}

// arityBetween validates natives registered as variadic.
func arityBetween(name string, args []runtime.Value, lo, hi int) error {
	if len(args) < lo || (hi >= 0 && len(args) > hi) {
		switch {
		case hi < 0:
			return diag.Runtimef("%s expects at least %d arguments, got %d", name, lo, len(args))
		case lo == hi:
			return diag.Runtimef("%s expects %d arguments, got %d", name, lo, len(args))
		default:
			return diag.Runtimef("%s expects %d to %d arguments, got %d", name, lo, hi, len(args))
		}
	}
	return nil
}

func str(s string) runtime.Value           { return runtime.StringValue{Val: s} }
func integer(n int64) runtime.Value        { return runtime.IntegerValue{Val: n} }
func float(f float64) runtime.Value        { return runtime.FloatValue{Val: f} }
func boolean(b bool) runtime.Value         { return runtime.BoolValue{Val: b} }
func list(v []runtime.Value) runtime.Value { return runtime.ListValue{Elements: v} }
