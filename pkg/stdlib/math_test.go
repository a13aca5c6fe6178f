package stdlib

import (
	"math"
	"testing"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func TestMathRounding(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "floor", float(2.7)), integer(2))
	assertValue(t, mustCall(t, env, "ceil", float(2.1)), integer(3))
	assertValue(t, mustCall(t, env, "round", float(-2.5)), integer(-3))
	assertValue(t, mustCall(t, env, "round", integer(4)), integer(4))
	assertValue(t, mustCall(t, env, "round_to", float(3.14159), integer(2)), float(3.14))
}

func TestMathAbsPreservesType(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "abs", integer(-5)), integer(5))
	assertValue(t, mustCall(t, env, "abs", float(-1.5)), float(1.5))
	_, err := callNative(t, env, "abs", str("x"))
	expectKind(t, err, diag.KindType)
}

func TestMathSqrtAndLog(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "sqrt", integer(16)), float(4))
	_, err := callNative(t, env, "sqrt", integer(-1))
	expectKind(t, err, diag.KindRuntime)
	_, err = callNative(t, env, "log", integer(0))
	expectKind(t, err, diag.KindRuntime)
	if got := mustCall(t, env, "log10", integer(1000)).(runtime.FloatValue).Val; math.Abs(got-3) > 1e-12 {
		t.Fatalf("log10(1000) = %v", got)
	}
}

func TestMathMinMax(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "min", integer(3), integer(-2), integer(8)), integer(-2))
	assertValue(t, mustCall(t, env, "max", integer(3), float(3.5)), float(3.5))
	_, err := callNative(t, env, "max")
	expectKind(t, err, diag.KindRuntime)
}

func TestMathFactorialPromotes(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "factorial", integer(5)), integer(120))
	got := mustCall(t, env, "factorial", integer(25))
	big, ok := got.(runtime.BigIntegerValue)
	if !ok {
		t.Fatalf("expected BigInteger, got %s", runtime.TypeName(got))
	}
	if big.Val.String() != "15511210043330985984000000" {
		t.Fatalf("unexpected 25! = %s", big.Val.String())
	}
	_, err := callNative(t, env, "factorial", integer(-1))
	expectKind(t, err, diag.KindRuntime)
}

func TestMathIntegerHelpers(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "gcd", integer(12), integer(18)), integer(6))
	assertValue(t, mustCall(t, env, "lcm", integer(4), integer(6)), integer(12))
	assertValue(t, mustCall(t, env, "is_prime", integer(97)), boolean(true))
	assertValue(t, mustCall(t, env, "is_prime", integer(1)), boolean(false))
}

func TestFormatNumberLocale(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "format_number", integer(1234567)), str("1,234,567"))
	assertValue(t, mustCall(t, env, "format_number", integer(1234567), str("de")), str("1.234.567"))
}

func TestBigFunctions(t *testing.T) {
	env := newEnv(t)
	n := mustCall(t, env, "big_integer", str("123456789012345678901234567890"))
	q := mustCall(t, env, "big_divide", n, integer(10))
	if runtime.Display(q) != "12345678901234567890123456789" {
		t.Fatalf("unexpected quotient %s", runtime.Display(q))
	}
	p := mustCall(t, env, "big_power", integer(2), integer(100))
	if runtime.Display(p) != "1267650600228229401496703205376" {
		t.Fatalf("unexpected power %s", runtime.Display(p))
	}
	_, err := callNative(t, env, "big_to_integer", p)
	expectKind(t, err, diag.KindRuntime)
	assertValue(t, mustCall(t, env, "big_to_integer", mustCall(t, env, "big_integer", integer(42))), integer(42))
	_, err = callNative(t, env, "big_divide", n, integer(0))
	expectKind(t, err, diag.KindDivisionByZero)
}
