package stdlib

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func newEnv(t *testing.T, opts ...Option) *runtime.Environment {
	t.Helper()
	env := runtime.NewEnvironment(nil)
	opts = append([]Option{WithSeed(7), WithLocation(time.UTC)}, opts...)
	if err := Register(env, opts...); err != nil {
		t.Fatalf("register: %v", err)
	}
	return env
}

// callNative invokes a registered native directly. Callbacks are dispatched
// back into natives only.
func callNative(t *testing.T, env *runtime.Environment, name string, args ...runtime.Value) (runtime.Value, error) {
	t.Helper()
	val, err := env.Get(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	fn, ok := val.(runtime.NativeFunctionValue)
	if !ok {
		t.Fatalf("%s is %T, want native", name, val)
	}
	if fn.Arity >= 0 && len(args) != fn.Arity {
		t.Fatalf("%s called with %d args, arity %d", name, len(args), fn.Arity)
	}
	var invoke func(runtime.Value, []runtime.Value) (runtime.Value, error)
	invoke = func(target runtime.Value, callArgs []runtime.Value) (runtime.Value, error) {
		native, ok := target.(runtime.NativeFunctionValue)
		if !ok {
			t.Fatalf("callback %T is not a native", target)
		}
		return native.Impl(&runtime.CallContext{Env: env, Invoke: invoke}, callArgs)
	}
	return fn.Impl(&runtime.CallContext{Env: env, Invoke: invoke}, args)
}

func mustCall(t *testing.T, env *runtime.Environment, name string, args ...runtime.Value) runtime.Value {
	t.Helper()
	val, err := callNative(t, env, name, args...)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", name, err)
	}
	return val
}

func expectKind(t *testing.T, err error, want diag.Kind) *diag.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *diag.Error, got %T: %v", err, err)
	}
	if de.Kind != want {
		t.Fatalf("expected %s error, got %s: %v", want, de.Kind, err)
	}
	return de
}

func ints(ns ...int64) runtime.Value {
	out := make([]runtime.Value, len(ns))
	for i, n := range ns {
		out[i] = integer(n)
	}
	return list(out)
}

func strs(ss ...string) runtime.Value {
	out := make([]runtime.Value, len(ss))
	for i, s := range ss {
		out[i] = str(s)
	}
	return list(out)
}

func assertValue(t *testing.T, got, want runtime.Value) {
	t.Helper()
	if !runtime.Equal(got, want) {
		t.Fatalf("got %s (%s), want %s (%s)", runtime.Display(got), runtime.TypeName(got), runtime.Display(want), runtime.TypeName(want))
	}
}

func TestRegisterDefinesEveryGroup(t *testing.T) {
	env := newEnv(t)
	for _, name := range []string{"sqrt", "big_integer", "uppercase", "list_map", "file_read", "date_now", "random_int", "http_get", "json_parse", "sha256", "pattern_match"} {
		if !env.Exists(name) {
			t.Errorf("expected %s to be registered", name)
		}
	}
	if env.IsConstant("sqrt") {
		t.Fatalf("natives should be ordinary bindings")
	}
}

func TestRegisterDisabledGroups(t *testing.T) {
	env := newEnv(t, WithDisabled(GroupNetwork, GroupFile))
	if env.Exists("http_get") || env.Exists("file_read") {
		t.Fatalf("disabled groups should not be registered")
	}
	if !env.Exists("sqrt") {
		t.Fatalf("math group should still be registered")
	}
}

func TestRegisterRejectsUnknownGroup(t *testing.T) {
	err := Register(runtime.NewEnvironment(nil), WithDisabled("sockets"))
	if err == nil {
		t.Fatalf("expected error for unknown group")
	}
}

func TestGroupsOrder(t *testing.T) {
	want := []string{"math", "big", "string", "list", "file", "date", "random", "http", "json", "crypto", "pattern"}
	if diff := cmp.Diff(want, Groups()); diff != "" {
		t.Fatalf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestArityBetween(t *testing.T) {
	env := newEnv(t)
	_, err := callNative(t, env, "pad_left", str("x"))
	de := expectKind(t, err, diag.KindRuntime)
	if de.Message != "pad_left expects 2 to 3 arguments, got 1" {
		t.Fatalf("unexpected message %q", de.Message)
	}
}
