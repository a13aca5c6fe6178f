package diag

import (
	"errors"
	"fmt"
)

// Kind classifies an interpreter error.
type Kind int

const (
	KindLex Kind = iota
	KindParse
	KindRuntime
	KindType
	KindUndefined
	KindDivisionByZero
	KindIndex
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindLex:
		return "lex"
	case KindParse:
		return "parse"
	case KindRuntime:
		return "runtime"
	case KindType:
		return "type"
	case KindUndefined:
		return "undefined"
	case KindDivisionByZero:
		return "division_by_zero"
	case KindIndex:
		return "index"
	case KindFile:
		return "file"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Error is the single error type produced by the lexer, parser and evaluator.
// Line and Column are zero until a position is known.
type Error struct {
	Kind    Kind
	Message string
	Line    int
	Column  int

	Expected string
	Actual   string
	Name     string
	Index    int64
	Size     int
	Path     string
	Reason   string
}

// Error renders the positioned, kind-specific message.
func (e *Error) Error() string {
	switch e.Kind {
	case KindLex:
		return fmt.Sprintf("Lexer error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	case KindParse:
		return fmt.Sprintf("Parser error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	case KindType:
		return fmt.Sprintf("Type error at line %d, column %d: expected %s, but got %s", e.Line, e.Column, e.Expected, e.Actual)
	case KindUndefined:
		return fmt.Sprintf("Undefined variable at line %d, column %d: '%s' has not been defined", e.Line, e.Column, e.Name)
	case KindDivisionByZero:
		return fmt.Sprintf("Division by zero at line %d, column %d", e.Line, e.Column)
	case KindIndex:
		return fmt.Sprintf("Index error at line %d, column %d: index %d is out of bounds for size %d", e.Line, e.Column, e.Index, e.Size)
	case KindFile:
		return fmt.Sprintf("File error at line %d, column %d: cannot access '%s' - %s", e.Line, e.Column, e.Path, e.Reason)
	default:
		return fmt.Sprintf("Runtime error at line %d, column %d: %s", e.Line, e.Column, e.Message)
	}
}

// Positioned reports whether a source position has been attached.
func (e *Error) Positioned() bool {
	return e.Line > 0
}

func Lex(line, column int, msg string) *Error {
	return &Error{Kind: KindLex, Message: msg, Line: line, Column: column}
}

func Parse(line, column int, msg string) *Error {
	return &Error{Kind: KindParse, Message: msg, Line: line, Column: column}
}

func Runtime(msg string) *Error {
	return &Error{Kind: KindRuntime, Message: msg}
}

// Runtimef formats a generic runtime error.
func Runtimef(format string, args ...any) *Error {
	return Runtime(fmt.Sprintf(format, args...))
}

func Type(expected, actual string) *Error {
	return &Error{
		Kind:     KindType,
		Message:  fmt.Sprintf("Type mismatch: expected %s, got %s", expected, actual),
		Expected: expected,
		Actual:   actual,
	}
}

func Undefined(name string) *Error {
	return &Error{Kind: KindUndefined, Message: fmt.Sprintf("Undefined variable '%s'", name), Name: name}
}

func DivisionByZero() *Error {
	return &Error{Kind: KindDivisionByZero, Message: "Division by zero"}
}

func Index(index int64, size int) *Error {
	return &Error{Kind: KindIndex, Message: "Index out of bounds", Index: index, Size: size}
}

func File(path, reason string) *Error {
	return &Error{Kind: KindFile, Message: "File error: " + reason, Path: path, Reason: reason}
}

// At stamps a position onto err when it is a *Error without one. Other errors
// pass through untouched.
func At(err error, line, column int) error {
	var de *Error
	if errors.As(err, &de) && !de.Positioned() {
		de.Line = line
		de.Column = column
	}
	return err
}

// KindOf returns the kind of err and whether err is a *Error.
func KindOf(err error) (Kind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return 0, false
}
