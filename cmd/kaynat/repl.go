package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/chzyer/readline"

	"kaynat/interpreter-go/pkg/driver"
	"kaynat/interpreter-go/pkg/interpreter"
	"kaynat/interpreter-go/pkg/lexer"
	"kaynat/interpreter-go/pkg/runtime"
)

const continuationPrompt = "... "

var errInterrupted = errors.New("interrupted")

type lineReader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
	Close() error
}

type readlineReader struct {
	inst *readline.Instance
}

func (r *readlineReader) ReadLine() (string, error) {
	line, err := r.inst.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if line == "" {
			return "", io.EOF
		}
		return "", errInterrupted
	}
	return line, err
}

func (r *readlineReader) SetPrompt(prompt string) { r.inst.SetPrompt(prompt) }
func (r *readlineReader) Close() error            { return r.inst.Close() }

// scannerReader serves piped input, where line editing is unavailable.
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func (r *scannerReader) ReadLine() (string, error) {
	fmt.Fprint(r.out, r.prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.scanner.Text(), nil
}

func (r *scannerReader) SetPrompt(prompt string) { r.prompt = prompt }
func (r *scannerReader) Close() error            { return nil }

func (a *app) newLineReader(manifest *driver.Manifest) (lineReader, string, error) {
	prompt := driver.DefaultPrompt
	if manifest != nil {
		prompt = manifest.REPL.Prompt
	}
	if !a.interactive {
		return &scannerReader{scanner: bufio.NewScanner(a.stdin), out: a.stdout, prompt: prompt}, prompt, nil
	}
	inst, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       manifest.HistoryPath(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
		Stdout:            a.stdout,
		Stderr:            a.stderr,
	})
	if err != nil {
		return nil, "", err
	}
	return &readlineReader{inst: inst}, prompt, nil
}

func (a *app) runREPL(manifest *driver.Manifest, logger *slog.Logger) int {
	interp, err := a.newInterpreter(manifest, logger)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to initialize interpreter: %v\n", err)
		return 1
	}
	reader, prompt, err := a.newLineReader(manifest)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to start line editor: %v\n", err)
		return 1
	}
	defer reader.Close()

	fmt.Fprintln(a.stdout, replBanner)
	fmt.Fprintln(a.stdout, "Type 'exit' to quit, 'help' for help")
	fmt.Fprintln(a.stdout)

	session := &replSession{interp: interp, out: a.stdout, errOut: a.stderr}
	for {
		line, err := reader.ReadLine()
		switch {
		case errors.Is(err, errInterrupted):
			session.reset()
			reader.SetPrompt(prompt)
			continue
		case errors.Is(err, io.EOF):
			return 0
		case err != nil:
			fmt.Fprintf(a.stderr, "read input: %v\n", err)
			return 1
		}
		exit, more := session.feed(line)
		if exit {
			return 0
		}
		if more {
			reader.SetPrompt(continuationPrompt)
		} else {
			reader.SetPrompt(prompt)
		}
	}
}

// replSession accumulates input until every opened block is closed, then
// executes it against one long-lived interpreter.
type replSession struct {
	interp  *interpreter.Interpreter
	out     io.Writer
	errOut  io.Writer
	pending strings.Builder
}

func (s *replSession) reset() { s.pending.Reset() }

// feed consumes one line of input. It reports whether the session should
// end and whether more lines are needed to complete a block.
func (s *replSession) feed(line string) (exit, more bool) {
	trimmed := strings.TrimSpace(line)
	if s.pending.Len() == 0 {
		switch trimmed {
		case "":
			return false, false
		case "exit", "quit":
			fmt.Fprintln(s.out, "Goodbye!")
			return true, false
		case "help":
			printREPLHelp(s.out)
			return false, false
		case "clear":
			fmt.Fprint(s.out, "\033[2J\033[1;1H")
			return false, false
		case "vars":
			s.printVars()
			return false, false
		case "windows":
			if err := s.interp.Registry().RenderAll(s.out); err != nil {
				fmt.Fprintln(s.errOut, err)
			}
			return false, false
		}
	}
	s.pending.WriteString(line)
	s.pending.WriteByte('\n')
	src := s.pending.String()
	if openBlocks(src) > 0 {
		return false, true
	}
	s.pending.Reset()
	s.eval(src)
	return false, false
}

func (s *replSession) eval(src string) {
	result, err := s.interp.ExecuteSource(src)
	if err != nil {
		fmt.Fprintln(s.errOut, err)
		return
	}
	if result == nil {
		return
	}
	if _, isNull := result.(runtime.NullValue); isNull {
		return
	}
	fmt.Fprintf(s.out, "=> %s\n", runtime.Display(result))
}

// printVars lists the program's global bindings, not the builtins.
func (s *replSession) printVars() {
	env := s.interp.GlobalEnvironment()
	values := env.Snapshot()
	for _, name := range env.Keys() {
		fmt.Fprintf(s.out, "  %s = %s\n", name, runtime.Display(values[name]))
	}
}

// openBlocks counts block openers not yet matched by `end`. Source that
// fails to tokenize reports zero so the evaluator surfaces the error.
func openBlocks(src string) int {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return 0
	}
	depth := 0
	inNote := false
	for _, tok := range tokens {
		if inNote {
			inNote = tok.Kind != lexer.TokenPeriod
			continue
		}
		switch tok.Kind {
		case lexer.KwNote:
			inNote = true
		case lexer.KwBegin, lexer.KwIf, lexer.KwWhile, lexer.KwRepeat, lexer.KwLoop, lexer.KwFor, lexer.KwDefine:
			depth++
		case lexer.KwEnd:
			depth--
		}
	}
	return depth
}

func printREPLHelp(w io.Writer) {
	fmt.Fprintln(w, "Kaynat++ REPL Commands:")
	fmt.Fprintln(w, "  exit, quit  - Exit the REPL")
	fmt.Fprintln(w, "  help        - Show this help message")
	fmt.Fprintln(w, "  clear       - Clear the screen")
	fmt.Fprintln(w, "  vars        - List global variables")
	fmt.Fprintln(w, "  windows     - Render every visible window")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Enter Kaynat++ statements to execute them. Blocks continue until their 'end.'")
}
