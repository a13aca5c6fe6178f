package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/driver"
	"kaynat/interpreter-go/pkg/interpreter"
)

const (
	versionText = "Kaynat++ version 1.0.0"
	replBanner  = "Kaynat++ REPL v1.0.0"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return newApp(os.Stdin, os.Stdout, os.Stderr).run(args)
}

type app struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	interactive bool
}

func newApp(stdin io.Reader, stdout, stderr io.Writer) *app {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	if f, ok := stdin.(*os.File); ok {
		a.interactive = term.IsTerminal(int(f.Fd()))
	}
	return a
}

type invocation struct {
	file     string
	repl     bool
	watch    bool
	logLevel string
	help     bool
	version  bool
}

func parseArgs(args []string) (invocation, error) {
	var inv invocation
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--help" || arg == "-h":
			inv.help = true
		case arg == "--version" || arg == "-v":
			inv.version = true
		case arg == "--repl" || arg == "-r":
			inv.repl = true
		case arg == "--watch" || arg == "-w":
			inv.watch = true
		case arg == "--log-level":
			if i+1 >= len(args) {
				return inv, errors.New("--log-level requires a value")
			}
			i++
			inv.logLevel = args[i]
		case strings.HasPrefix(arg, "--log-level="):
			inv.logLevel = strings.TrimPrefix(arg, "--log-level=")
		case strings.HasPrefix(arg, "-") && arg != "-":
			return inv, fmt.Errorf("unknown flag %s", arg)
		default:
			if inv.file != "" {
				return inv, fmt.Errorf("unexpected arguments: %s", strings.Join(args[i:], " "))
			}
			inv.file = arg
		}
	}
	if inv.repl && (inv.file != "" || inv.watch) {
		return inv, errors.New("--repl cannot be combined with a file or --watch")
	}
	return inv, nil
}

func (a *app) run(args []string) int {
	inv, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		printUsage(a.stderr)
		return 1
	}
	if inv.help {
		printUsage(a.stdout)
		return 0
	}
	if inv.version {
		fmt.Fprintln(a.stdout, versionText)
		return 0
	}

	manifest, err := loadManifestFor(inv.file)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to load manifest: %v\n", err)
		return 1
	}
	level := inv.logLevel
	if level == "" && manifest != nil {
		level = manifest.LogLevel
	}
	lvl, err := driver.ParseLogLevel(level)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: lvl}))

	if inv.repl {
		return a.runREPL(manifest, logger)
	}
	entry := inv.file
	if entry == "" {
		entry = manifest.EntryPath()
	}
	if entry == "" {
		printUsage(a.stderr)
		return 1
	}
	if inv.watch {
		return a.runWatch(entry, manifest, logger)
	}
	return a.runFile(entry, manifest, logger)
}

// loadManifestFor finds the kaynat.yml governing file, or the working
// directory when file is empty. A missing manifest is not an error.
func loadManifestFor(file string) (*driver.Manifest, error) {
	dir := "."
	if file != "" {
		dir = filepath.Dir(file)
	}
	path, err := driver.FindManifest(dir)
	if err != nil || path == "" {
		return nil, err
	}
	return driver.LoadManifest(path)
}

func (a *app) newInterpreter(manifest *driver.Manifest, logger *slog.Logger) (*interpreter.Interpreter, error) {
	opts := append(manifest.InterpreterOptions(),
		interpreter.WithOutput(a.stdout),
		interpreter.WithLogger(logger),
	)
	return interpreter.New(opts...)
}

func (a *app) runFile(path string, manifest *driver.Manifest, logger *slog.Logger) int {
	src, err := readSource(path)
	if err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	interp, err := a.newInterpreter(manifest, logger)
	if err != nil {
		fmt.Fprintf(a.stderr, "failed to initialize interpreter: %v\n", err)
		return 1
	}
	logger.Debug("executing program", "file", path, "bytes", len(src))
	if _, err := interp.ExecuteSource(src); err != nil {
		fmt.Fprintln(a.stderr, err)
		return 1
	}
	return 0
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		reason := err.Error()
		switch {
		case errors.Is(err, fs.ErrNotExist):
			reason = "file not found"
		case errors.Is(err, fs.ErrPermission):
			reason = "permission denied"
		}
		return "", diag.File(path, reason)
	}
	if len(data) == 0 {
		return "", diag.File(path, "file is empty")
	}
	return string(data), nil
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Kaynat++ Programming Language")
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  kaynat <file.kn>            Run a Kaynat++ program")
	fmt.Fprintln(w, "  kaynat --repl               Start interactive REPL")
	fmt.Fprintln(w, "  kaynat --watch <file.kn>    Re-run a program whenever it changes")
	fmt.Fprintln(w, "  kaynat --log-level <level>  Log at debug, info, warn or error")
	fmt.Fprintln(w, "  kaynat --help               Show this help message")
	fmt.Fprintln(w, "  kaynat --version            Show version information")
	fmt.Fprintln(w, "Without a file, the entry of the nearest kaynat.yml is run.")
}
