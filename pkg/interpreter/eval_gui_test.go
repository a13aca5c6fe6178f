package interpreter

import (
	"strings"
	"testing"

	"kaynat/interpreter-go/pkg/gui"
	"kaynat/interpreter-go/pkg/runtime"
)

func TestGuiProgramBuildsWindow(t *testing.T) {
	registry := gui.NewManager()
	interp, out := newTestInterpreter(t, WithRegistry(registry))
	src := `create a window called main.
set the title of main to "Greeter".
set the width of main to 320.
create a label called hello.
set the text of hello to "Hi there".
create a text input called entry.
set the placeholder of entry to "name".
create a button called ok.
set the text of ok to "OK".
place hello at row 1 and column 2 in main.
place entry at row 2 and column 0 in main.
place ok at row 3 and column 0 in main.
show main.`
	if _, err := interp.ExecuteSource(src); err != nil {
		t.Fatalf("execute: %v", err)
	}

	win, ok := registry.Window("main")
	if !ok {
		t.Fatalf("window not registered")
	}
	if win.Title != "Greeter" || win.Width != 320 || win.Height != 600 || !win.Visible {
		t.Fatalf("unexpected window state %+v", win)
	}
	if len(win.Children) != 3 {
		t.Fatalf("expected 3 children, got %d", len(win.Children))
	}
	label := win.Children[0].(*gui.Label)
	if label.X != 2 || label.Y != 1 || label.Text != "Hi there" {
		t.Fatalf("unexpected label %+v", label)
	}

	rendered := out.String()
	for _, want := range []string{"Greeter", "[Label] Hi there", "[Input: name]", "[Button: OK]"} {
		if !strings.Contains(rendered, want) {
			t.Fatalf("expected %q in rendered window:\n%s", want, rendered)
		}
	}
	assertValue(t, lookup(t, interp, "main"), runtime.NullValue{})
}

func TestGuiDefaultsOption(t *testing.T) {
	registry := gui.NewManager()
	interp, _ := newTestInterpreter(t,
		WithRegistry(registry),
		WithGuiDefaults(gui.Defaults{Width: 1024, Height: 768, Background: "black"}),
	)
	if _, err := interp.ExecuteSource("create a window called main."); err != nil {
		t.Fatalf("execute: %v", err)
	}
	win, _ := registry.Window("main")
	if win.Width != 1024 || win.Height != 768 || win.Background != "black" || win.Title != "main" {
		t.Fatalf("unexpected window %+v", win)
	}
}

func TestGuiErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		msg  string
	}{
		{"unknown window", "show main.", "Window 'main' not found"},
		{"unknown widget", "create a window called main.\nplace ghost at row 1 and column 1 in main.", "Widget 'ghost' not found"},
		{"text on input", "create a text input called entry.\nset the text of entry to \"x\".", "Cannot set the text of input 'entry'"},
		{"placeholder on label", "create a label called tag.\nset the placeholder of tag to \"x\".", "Cannot set the placeholder of label 'tag'"},
		{"width type", "create a window called main.\nset the width of main to \"wide\".", "expected Integer, but got String"},
		{"title type", "create a window called main.\nset the title of main to 5.", "expected String, but got Integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			de, _ := runErr(t, tc.src)
			if !strings.Contains(de.Error(), tc.msg) {
				t.Fatalf("expected %q in %q", tc.msg, de.Error())
			}
		})
	}
}

func TestCreateKeepsExistingBinding(t *testing.T) {
	_, out := run(t, "set main to 5.\ncreate a window called main.\nsay main.")
	if out != "5\n" {
		t.Fatalf("unexpected output %q", out)
	}
}
