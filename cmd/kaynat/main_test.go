package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func newTestApp(input string) (*app, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return newApp(strings.NewReader(input), &stdout, &stderr), &stdout, &stderr
}

func writeSource(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseArgs(t *testing.T) {
	cases := []struct {
		args []string
		want invocation
	}{
		{[]string{"main.kn"}, invocation{file: "main.kn"}},
		{[]string{"-r"}, invocation{repl: true}},
		{[]string{"--watch", "main.kn", "--log-level", "debug"}, invocation{file: "main.kn", watch: true, logLevel: "debug"}},
		{[]string{"--log-level=warn", "x.kn"}, invocation{file: "x.kn", logLevel: "warn"}},
		{[]string{"-h"}, invocation{help: true}},
		{[]string{"--version"}, invocation{version: true}},
	}
	for _, tc := range cases {
		got, err := parseArgs(tc.args)
		if err != nil {
			t.Fatalf("parseArgs(%v) returned error: %v", tc.args, err)
		}
		if diff := cmp.Diff(tc.want, got, cmp.AllowUnexported(invocation{})); diff != "" {
			t.Fatalf("parseArgs(%v) mismatch (-want +got):\n%s", tc.args, diff)
		}
	}

	for _, bad := range [][]string{
		{"--bogus"},
		{"a.kn", "b.kn"},
		{"--log-level"},
		{"--repl", "a.kn"},
	} {
		if _, err := parseArgs(bad); err == nil {
			t.Fatalf("parseArgs(%v) expected error", bad)
		}
	}
}

func TestHelpAndVersion(t *testing.T) {
	a, stdout, _ := newTestApp("")
	if code := a.run([]string{"--help"}); code != 0 {
		t.Fatalf("help exit code %d", code)
	}
	if !strings.Contains(stdout.String(), "kaynat --repl") {
		t.Fatalf("usage missing repl line:\n%s", stdout.String())
	}

	a, stdout, _ = newTestApp("")
	if code := a.run([]string{"-v"}); code != 0 {
		t.Fatalf("version exit code %d", code)
	}
	if stdout.String() != versionText+"\n" {
		t.Fatalf("unexpected version output %q", stdout.String())
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.kn", "set x to 20.\nsay x add 22.\n")
	a, stdout, stderr := newTestApp("")
	if code := a.run([]string{path}); code != 0 {
		t.Fatalf("exit code %d, stderr: %s", code, stderr.String())
	}
	if stdout.String() != "42\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}

func TestRunFileErrors(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		name string
		path string
		want string
	}{
		{"missing", filepath.Join(dir, "nope.kn"), "cannot access '" + filepath.Join(dir, "nope.kn") + "' - file not found"},
		{"empty", writeSource(t, dir, "empty.kn", ""), "file is empty"},
		{"runtime", writeSource(t, dir, "bad.kn", "say 1.\nsay 1 divide 0.\n"), "Division by zero at line 2, column 0"},
		{"parse", writeSource(t, dir, "syntax.kn", "set x to .\n"), "Parser error at line 1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, _, stderr := newTestApp("")
			if code := a.run([]string{tc.path}); code != 1 {
				t.Fatalf("expected exit code 1, got %d", code)
			}
			if !strings.Contains(stderr.String(), tc.want) {
				t.Fatalf("expected %q in stderr:\n%s", tc.want, stderr.String())
			}
		})
	}
}

func TestRunWithoutFileOrManifestPrintsUsage(t *testing.T) {
	chdirTest(t, t.TempDir())
	a, _, stderr := newTestApp("")
	if code := a.run(nil); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "Usage:") {
		t.Fatalf("expected usage on stderr, got %q", stderr.String())
	}
}

func TestManifestEntryAndSettings(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "kaynat.yml", "name: demo\nentry: app.kn\nstdlib:\n  disable: [math]\n")
	writeSource(t, dir, "app.kn", "call uppercase with \"ok\" and store as shout.\nsay shout.\ncall sqrt with 4.\n")
	chdirTest(t, dir)

	a, stdout, stderr := newTestApp("")
	if code := a.run(nil); code != 1 {
		t.Fatalf("expected sqrt to be undefined, exit code %d", code)
	}
	if stdout.String() != "OK\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "'sqrt' has not been defined") {
		t.Fatalf("expected undefined sqrt, got %q", stderr.String())
	}
}

func TestInvalidManifestFails(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "kaynat.yml", "log_level: chatty\n")
	path := writeSource(t, dir, "main.kn", "say 1.\n")
	a, _, stderr := newTestApp("")
	if code := a.run([]string{path}); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(stderr.String(), "failed to load manifest") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestDebugLoggingGoesToStderr(t *testing.T) {
	path := writeSource(t, t.TempDir(), "main.kn", "say 1.\n")
	a, stdout, stderr := newTestApp("")
	if code := a.run([]string{"--log-level", "debug", path}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if stdout.String() != "1\n" {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") || !strings.Contains(stderr.String(), "executing program") {
		t.Fatalf("expected debug log, got %q", stderr.String())
	}
}

func TestREPLSession(t *testing.T) {
	chdirTest(t, t.TempDir())
	input := strings.Join([]string{
		"set x to 2.",
		"say x add 3.",
		"say missing.",
		"say x.",
		"help",
		"exit",
		"say 99.",
	}, "\n")
	a, stdout, stderr := newTestApp(input)
	if code := a.run([]string{"--repl"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	out := stdout.String()
	for _, want := range []string{replBanner, ">>> ", "=> 2\n", "5\n", "2\n", "Kaynat++ REPL Commands:", "Goodbye!"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in REPL output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "99") {
		t.Fatalf("input after exit should not run:\n%s", out)
	}
	if !strings.Contains(stderr.String(), "Undefined variable at line 1, column 0: 'missing' has not been defined") {
		t.Fatalf("expected formatted error, got %q", stderr.String())
	}
}

func TestREPLInspectionCommands(t *testing.T) {
	chdirTest(t, t.TempDir())
	input := strings.Join([]string{
		"set count to 3.",
		"create a window called main.",
		"set the title of main to \"Board\".",
		"vars",
		"windows",
	}, "\n")
	a, stdout, stderr := newTestApp(input)
	if code := a.run([]string{"--repl"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected errors %q", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "  count = 3\n") {
		t.Fatalf("vars missing count:\n%s", out)
	}
	if strings.Contains(out, "uppercase =") {
		t.Fatalf("vars listed builtins:\n%s", out)
	}
	if !strings.Contains(out, "║ Board") {
		t.Fatalf("windows did not render main:\n%s", out)
	}
}

func TestREPLMultilineBlocks(t *testing.T) {
	chdirTest(t, t.TempDir())
	input := strings.Join([]string{
		"define function called twice that takes v.",
		"  note doubles the input, if asked.",
		"  give back v multiply 2.",
		"end.",
		"call twice with 4.",
	}, "\n")
	a, stdout, stderr := newTestApp(input)
	if code := a.run([]string{"-r"}); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected errors %q", stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, continuationPrompt) || !strings.Contains(out, "=> 8\n") {
		t.Fatalf("unexpected REPL output:\n%s", out)
	}
}

func TestOpenBlocks(t *testing.T) {
	cases := map[string]int{
		"say 1.":                               0,
		"if x is greater than 1 then.":         1,
		"if x then.\nwhile y.\nend.":           1,
		"loop from 1 to 3.\nend.":              0,
		"note if while repeat.":                0,
		"begin program.\nsay 1.":               1,
		"define function called f.\nsay \"if":  0,
		"for each n in xs.\nrepeat 2 times.\n": 2,
	}
	for src, want := range cases {
		if got := openBlocks(src); got != want {
			t.Fatalf("openBlocks(%q) = %d, want %d", src, got, want)
		}
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func waitFor(t *testing.T, buf *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if strings.Contains(buf.String(), want) {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %q, output:\n%s", want, buf.String())
}

func TestWatchRerunsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "main.kn", "say \"first\".\n")
	var stdout, stderr syncBuffer
	a := newApp(strings.NewReader(""), &stdout, &stderr)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- a.watch(ctx, path, nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	}()

	waitFor(t, &stdout, "first\n")
	if err := os.WriteFile(path, []byte("say \"second\".\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	waitFor(t, &stdout, "second\n")
	if !strings.Contains(stdout.String(), "--- main.kn changed, re-running ---") {
		t.Fatalf("missing rerun banner:\n%s", stdout.String())
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("watch returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("watch did not stop after cancel")
	}
}

// chdirTest mirrors testing.T.Chdir (Go 1.24+): it changes the working
// directory for the duration of the test and restores it on cleanup.
func chdirTest(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory %s: %v", prev, err)
		}
	})
}
