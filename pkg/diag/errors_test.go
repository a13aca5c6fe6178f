package diag

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want string
	}{
		{"lex", Lex(3, 7, "Unexpected character '@'"), "Lexer error at line 3, column 7: Unexpected character '@'"},
		{"parse", Parse(1, 2, "Expected '.' at end of statement"), "Parser error at line 1, column 2: Expected '.' at end of statement"},
		{"runtime", Runtime("Cannot modify constant 'pi'"), "Runtime error at line 0, column 0: Cannot modify constant 'pi'"},
		{"type", Type("Number", "List"), "Type error at line 0, column 0: expected Number, but got List"},
		{"undefined", Undefined("x"), "Undefined variable at line 0, column 0: 'x' has not been defined"},
		{"division", DivisionByZero(), "Division by zero at line 0, column 0"},
		{"index", Index(10, 3), "Index error at line 0, column 0: index 10 is out of bounds for size 3"},
		{"file", File("a.kn", "file not found"), "File error at line 0, column 0: cannot access 'a.kn' - file not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestAtStampsOnlyUnpositionedErrors(t *testing.T) {
	err := At(Undefined("y"), 4, 0)
	var de *Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if de.Line != 4 {
		t.Fatalf("line = %d, want 4", de.Line)
	}

	At(err, 9, 1)
	if de.Line != 4 {
		t.Fatalf("position overwritten: line = %d", de.Line)
	}

	plain := fmt.Errorf("plain")
	if At(plain, 1, 1) != plain {
		t.Fatalf("non-diag error should pass through")
	}
}

func TestKindOfWrapped(t *testing.T) {
	wrapped := fmt.Errorf("run: %w", Index(1, 0))
	kind, ok := KindOf(wrapped)
	if !ok || kind != KindIndex {
		t.Fatalf("KindOf = %v, %v", kind, ok)
	}
	if _, ok := KindOf(errors.New("x")); ok {
		t.Fatalf("expected non-diag error")
	}
}
