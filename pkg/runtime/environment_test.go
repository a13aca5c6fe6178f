package runtime

import (
	"testing"

	"kaynat/interpreter-go/pkg/diag"
)

func TestEnvironmentDefineGetShadow(t *testing.T) {
	global := NewEnvironment(nil)
	if err := global.Define("x", IntegerValue{Val: 1}, false); err != nil {
		t.Fatalf("define: %v", err)
	}
	child := global.CreateChild()
	if err := child.Define("x", IntegerValue{Val: 2}, false); err != nil {
		t.Fatalf("shadow: %v", err)
	}
	if v, _ := child.Get("x"); v.(IntegerValue).Val != 2 {
		t.Fatalf("child sees %v", v)
	}
	if v, _ := global.Get("x"); v.(IntegerValue).Val != 1 {
		t.Fatalf("global sees %v", v)
	}
	if child.Parent() != global {
		t.Fatalf("parent mismatch")
	}
}

func TestEnvironmentRedefineFails(t *testing.T) {
	env := NewEnvironment(nil)
	_ = env.Define("x", NullValue{}, false)
	err := env.Define("x", NullValue{}, false)
	if err == nil || err.(*diag.Error).Message != "Variable 'x' already defined in this scope" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestEnvironmentSetUpdatesOwner(t *testing.T) {
	global := NewEnvironment(nil)
	_ = global.Define("n", IntegerValue{Val: 1}, false)
	inner := global.CreateChild().CreateChild()
	if err := inner.Set("n", IntegerValue{Val: 5}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if v, _ := global.Get("n"); v.(IntegerValue).Val != 5 {
		t.Fatalf("owner not updated: %v", v)
	}
	if len(inner.Keys()) != 0 {
		t.Fatalf("set created a local binding: %v", inner.Keys())
	}
	err := inner.Set("missing", NullValue{})
	if kind, _ := diag.KindOf(err); kind != diag.KindUndefined {
		t.Fatalf("expected undefined error, got %v", err)
	}
}

func TestEnvironmentConstants(t *testing.T) {
	global := NewEnvironment(nil)
	_ = global.Define("pi", FloatValue{Val: 3.14}, true)
	child := global.CreateChild()
	if !child.IsConstant("pi") {
		t.Fatalf("constant not visible through child")
	}
	err := child.Set("pi", FloatValue{Val: 3})
	if err == nil || err.(*diag.Error).Message != "Cannot modify constant 'pi'" {
		t.Fatalf("unexpected error %v", err)
	}
	if v, _ := global.Get("pi"); v.(FloatValue).Val != 3.14 {
		t.Fatalf("constant changed to %v", v)
	}
}

func TestEnvironmentRemoveIsLocal(t *testing.T) {
	global := NewEnvironment(nil)
	_ = global.Define("x", IntegerValue{Val: 1}, true)
	child := global.CreateChild()
	if child.Remove("x") {
		t.Fatalf("child removed a parent binding")
	}
	if !global.Remove("x") || global.Exists("x") || global.IsConstant("x") {
		t.Fatalf("remove left x behind")
	}
	if err := global.Define("x", IntegerValue{Val: 2}, false); err != nil {
		t.Fatalf("redefine after remove: %v", err)
	}
}

func TestEnvironmentGetUndefined(t *testing.T) {
	_, err := NewEnvironment(nil).Get("ghost")
	de, ok := err.(*diag.Error)
	if !ok || de.Kind != diag.KindUndefined || de.Name != "ghost" {
		t.Fatalf("unexpected error %v", err)
	}
}
