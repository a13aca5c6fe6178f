package interpreter

import (
	"strings"
	"testing"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
)

func TestErrorKindsAndPositions(t *testing.T) {
	cases := []struct {
		name string
		src  string
		kind diag.Kind
		line int
		text string
	}{
		{"division by zero", "set z to 0.\nsay 1 divide z.", diag.KindDivisionByZero, 2, "Division by zero at line 2, column 0"},
		{"float zero divisor", "say 1 divide 0.0.", diag.KindDivisionByZero, 1, ""},
		{"undefined", "say 1.\nsay missing.", diag.KindUndefined, 2, "Undefined variable at line 2, column 0: 'missing' has not been defined"},
		{"constant reassignment", "always pi to 3.14.\nset pi to 3.", diag.KindRuntime, 2, "Cannot modify constant 'pi'"},
		{"subtract string", "say \"a\" subtract 1.", diag.KindType, 1, "expected Number, but got String"},
		{"remainder float", "say 5.5 remainder 2.", diag.KindType, 1, "expected Integer, but got Float"},
		{"negate string", "say negative \"x\".", diag.KindType, 1, "expected Number"},
		{"list index", "set l to a list containing 1, 2 and 3.\nsay item 10 of l.", diag.KindIndex, 2, "index 10 is out of bounds for size 3"},
		{"stdlib index", "set l to a list containing 1, 2 and 3.\n\ncall list_get with l and 10.", diag.KindIndex, 3, "index 10 is out of bounds for size 3"},
		{"dict key type", "set d to a map containing \"a\" as 1.\nsay item 1 of d.", diag.KindType, 2, "expected String, but got Integer"},
		{"call non-function", "set v to 3.\ncall v.", diag.KindType, 2, "expected Function, but got Integer"},
		{"arity", "define function called f that takes p.\nend.\ncall f.", diag.KindRuntime, 3, "Function expects 1 arguments, got 0"},
		{"native arity", "call sqrt.", diag.KindRuntime, 1, "Function 'sqrt' expects 1 arguments, got 0"},
		{"stop outside loop", "say 1.\nstop.", diag.KindRuntime, 2, "'stop' used outside of a loop"},
		{"skip in function", "define function called f.\n  skip.\nend.\ncall f.", diag.KindRuntime, 2, "'skip' used outside of a loop"},
		{"for each over number", "for each n in 5.\nend.", diag.KindType, 1, "expected List, but got Integer"},
		{"repeat float count", "repeat 1.5 times.\nend.", diag.KindType, 1, "expected Integer, but got Float"},
		{"loop step", "loop from 1 to 3 stepping 0.\nend.", diag.KindRuntime, 1, "Loop step must be a positive integer, got 0"},
		{"loop bound", "loop from 1 to \"x\".\nend.", diag.KindType, 1, "expected Integer"},
		{"dict literal key", "set d to a map containing 1 as 2.", diag.KindType, 1, "expected String, but got Integer"},
		{"forget unbound", "forget ghost.", diag.KindUndefined, 1, "'ghost'"},
		{"file missing", "call file_read with \"/definitely/not/here.kn\".", diag.KindFile, 1, "file not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			de, _ := runErr(t, tc.src)
			if de.Kind != tc.kind {
				t.Fatalf("expected %s error, got %s: %v", tc.kind, de.Kind, de)
			}
			if de.Line != tc.line {
				t.Fatalf("expected line %d, got %d: %v", tc.line, de.Line, de)
			}
			if tc.text != "" && !strings.Contains(de.Error(), tc.text) {
				t.Fatalf("expected %q in %q", tc.text, de.Error())
			}
		})
	}
}

func TestErrorInsideFunctionReportsInnerLine(t *testing.T) {
	src := "define function called boom.\n  say 1 divide 0.\nend.\ncall boom."
	de, _ := runErr(t, src)
	if de.Line != 2 {
		t.Fatalf("expected the failing statement's line, got %d", de.Line)
	}
}

func TestParseErrorsSurfaceFromExecuteSource(t *testing.T) {
	de, _ := runErr(t, "set x to .")
	if de.Kind != diag.KindParse {
		t.Fatalf("expected parse error, got %v", de)
	}
}

func TestMaximumCallDepth(t *testing.T) {
	interp, _ := newTestInterpreter(t)
	program := ast.Prog(
		ast.Fn("down", nil, ast.Call("down")),
		ast.Call("down"),
	)
	_, err := interp.Execute(program)
	if err == nil || !strings.Contains(err.Error(), "Maximum call depth of 10000 exceeded in 'down'") {
		t.Fatalf("expected call depth error, got %v", err)
	}
}

func TestStateSurvivesFailedExecution(t *testing.T) {
	interp, out := newTestInterpreter(t)
	if _, err := interp.ExecuteSource("set kept to 5.\nsay kept divide 0."); err == nil {
		t.Fatalf("expected division error")
	}
	if _, err := interp.ExecuteSource("say kept."); err != nil {
		t.Fatalf("second run: %v", err)
	}
	if out.String() != "5\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}
