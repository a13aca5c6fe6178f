package interpreter

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/gui"
	"kaynat/interpreter-go/pkg/parser"
	"kaynat/interpreter-go/pkg/runtime"
	"kaynat/interpreter-go/pkg/stdlib"
)

// maxCallDepth bounds user-function recursion.
const maxCallDepth = 10000

// Interpreter evaluates Kaynat++ programs. One instance owns one global
// environment; instances share nothing and must not be used concurrently.
type Interpreter struct {
	global      *runtime.Environment
	out         io.Writer
	registry    gui.Registry
	guiDefaults gui.Defaults
	logger      *slog.Logger

	loadStdlib bool
	stdlibOpts []stdlib.Option
	depth      int
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithOutput directs say/print/show and window rendering to w.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithRegistry replaces the interpreter's private window registry.
func WithRegistry(r gui.Registry) Option {
	return func(i *Interpreter) { i.registry = r }
}

// WithGuiDefaults sets the size and background of newly created windows.
func WithGuiDefaults(d gui.Defaults) Option {
	return func(i *Interpreter) { i.guiDefaults = d }
}

func WithLogger(l *slog.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// WithStdlib passes options to the standard library registration.
func WithStdlib(opts ...stdlib.Option) Option {
	return func(i *Interpreter) { i.stdlibOpts = append(i.stdlibOpts, opts...) }
}

// WithoutStdlib starts from an empty global scope.
func WithoutStdlib() Option {
	return func(i *Interpreter) { i.loadStdlib = false }
}

// New returns an interpreter whose global scope holds the standard library.
func New(opts ...Option) (*Interpreter, error) {
	i := &Interpreter{
		out:         os.Stdout,
		guiDefaults: gui.DefaultWindow,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		loadStdlib:  true,
	}
	for _, opt := range opts {
		opt(i)
	}
	if i.registry == nil {
		i.registry = gui.NewManager()
	}
	// Natives live one scope above the program's globals so programs can
	// shadow them, even with `always`.
	builtins := runtime.NewEnvironment(nil)
	if i.loadStdlib {
		if err := stdlib.Register(builtins, i.stdlibOpts...); err != nil {
			return nil, fmt.Errorf("stdlib: %w", err)
		}
	}
	i.global = builtins.CreateChild()
	return i, nil
}

// GlobalEnvironment returns the scope top-level statements run in. Its
// parent holds the standard library.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// Registry returns the window registry GUI statements act on.
func (i *Interpreter) Registry() gui.Registry {
	return i.registry
}

// Execute runs program in the global scope and returns the value of the
// last statement. A top-level `give back` halts the program and its value
// becomes the result.
func (i *Interpreter) Execute(program *ast.Program) (runtime.Value, error) {
	var last runtime.Value = runtime.NullValue{}
	for _, stmt := range program.Body {
		val, err := i.evaluateStatement(stmt, i.global)
		if err != nil {
			if ret, ok := err.(returnSignal); ok {
				i.logger.Debug("program returned", "line", stmt.Line())
				return ret.value, nil
			}
			return nil, escapedSignal(err)
		}
		last = val
	}
	return last, nil
}

// ExecuteSource parses and runs src.
func (i *Interpreter) ExecuteSource(src string) (runtime.Value, error) {
	program, err := parser.ParseSource(src)
	if err != nil {
		return nil, err
	}
	return i.Execute(program)
}

// escapedSignal turns a stop/skip that reached a call frame or the top
// level into a runtime error.
func escapedSignal(err error) error {
	switch sig := err.(type) {
	case breakSignal:
		return diag.At(diag.Runtime("'stop' used outside of a loop"), sig.line, 0)
	case continueSignal:
		return diag.At(diag.Runtime("'skip' used outside of a loop"), sig.line, 0)
	default:
		return err
	}
}

type breakSignal struct {
	line int
}

func (b breakSignal) Error() string {
	return "stop"
}

type continueSignal struct {
	line int
}

func (c continueSignal) Error() string {
	return "skip"
}

type returnSignal struct {
	value runtime.Value
}

func (r returnSignal) Error() string {
	return "give back"
}
