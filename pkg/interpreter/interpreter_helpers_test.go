package interpreter

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
	"kaynat/interpreter-go/pkg/stdlib"
)

// newTestInterpreter returns an interpreter writing to a buffer, with a
// deterministic stdlib.
func newTestInterpreter(t *testing.T, opts ...Option) (*Interpreter, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	base := []Option{
		WithOutput(&out),
		WithStdlib(stdlib.WithSeed(1), stdlib.WithLocation(time.UTC)),
	}
	interp, err := New(append(base, opts...)...)
	if err != nil {
		t.Fatalf("new interpreter: %v", err)
	}
	return interp, &out
}

func run(t *testing.T, src string) (runtime.Value, string) {
	t.Helper()
	interp, out := newTestInterpreter(t)
	val, err := interp.ExecuteSource(src)
	if err != nil {
		t.Fatalf("execute: %v\noutput so far:\n%s", err, out.String())
	}
	return val, out.String()
}

func runErr(t *testing.T, src string) (*diag.Error, string) {
	t.Helper()
	interp, out := newTestInterpreter(t)
	_, err := interp.ExecuteSource(src)
	if err == nil {
		t.Fatalf("expected error, got none\noutput:\n%s", out.String())
	}
	var de *diag.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *diag.Error, got %T: %v", err, err)
	}
	return de, out.String()
}

func lookup(t *testing.T, interp *Interpreter, name string) runtime.Value {
	t.Helper()
	val, err := interp.GlobalEnvironment().Get(name)
	if err != nil {
		t.Fatalf("lookup %s: %v", name, err)
	}
	return val
}

func assertValue(t *testing.T, got, want runtime.Value) {
	t.Helper()
	if !runtime.Equal(got, want) {
		t.Fatalf("got %s (%s), want %s (%s)", runtime.Display(got), runtime.TypeName(got), runtime.Display(want), runtime.TypeName(want))
	}
}
