package stdlib

import (
	"testing"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/runtime"
)

func TestStringCase(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "uppercase", str("héllo")), str("HÉLLO"))
	assertValue(t, mustCall(t, env, "lowercase", str("HeLLo")), str("hello"))
	assertValue(t, mustCall(t, env, "capitalize", str("élan vital")), str("Élan vital"))
}

func TestStringRuneAware(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "string_length", str("héllo")), integer(5))
	assertValue(t, mustCall(t, env, "string_reverse", str("añb")), str("bña"))
	assertValue(t, mustCall(t, env, "substring", str("héllo"), integer(1), integer(3)), str("éll"))
	assertValue(t, mustCall(t, env, "index_of", str("héllo"), str("l")), integer(2))
	assertValue(t, mustCall(t, env, "index_of", str("abc"), str("z")), integer(-1))
}

func TestStringSplitJoin(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "split", str("a,b,,c"), str(",")), strs("a", "b", "", "c"))
	assertValue(t, mustCall(t, env, "join", ints(1, 2, 3), str("-")), str("1-2-3"))
	assertValue(t, mustCall(t, env, "replace", str("aXbX"), str("X"), str("y")), str("ayby"))
}

func TestStringPadding(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "pad_left", str("7"), integer(3), str("0")), str("007"))
	assertValue(t, mustCall(t, env, "pad_right", str("ab"), integer(4)), str("ab  "))
	assertValue(t, mustCall(t, env, "pad_left", str("long"), integer(2)), str("long"))
	assertValue(t, mustCall(t, env, "string_repeat", str("ab"), integer(-1)), str(""))
}

func TestToNumber(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "to_number", str("42")), integer(42))
	assertValue(t, mustCall(t, env, "to_number", str("2.5")), float(2.5))
	big := mustCall(t, env, "to_number", str("99999999999999999999"))
	if _, ok := big.(runtime.BigIntegerValue); !ok {
		t.Fatalf("expected BigInteger, got %s", runtime.TypeName(big))
	}
	_, err := callNative(t, env, "to_number", str("abc"))
	de := expectKind(t, err, diag.KindRuntime)
	if de.Message != "Invalid number format: 'abc'" {
		t.Fatalf("unexpected message %q", de.Message)
	}
}

func TestStringPredicatesAndEmpty(t *testing.T) {
	env := newEnv(t)
	assertValue(t, mustCall(t, env, "starts_with", str("kaynat"), str("kay")), boolean(true))
	assertValue(t, mustCall(t, env, "ends_with", str("kaynat"), str("x")), boolean(false))
	assertValue(t, mustCall(t, env, "contains", str("kaynat"), str("yn")), boolean(true))
	assertValue(t, mustCall(t, env, "is_empty", list(nil)), boolean(true))
	assertValue(t, mustCall(t, env, "to_list", str("ab")), strs("a", "b"))
	_, err := callNative(t, env, "uppercase", integer(1))
	expectKind(t, err, diag.KindType)
}
