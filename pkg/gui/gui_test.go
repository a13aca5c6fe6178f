package gui

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestWindowRender(t *testing.T) {
	win := NewWindow("main", DefaultWindow)
	label := NewLabel()
	label.Text = "Hello"
	input := NewTextInput()
	input.Placeholder = "your name"
	win.Add(label)
	win.Add(input)

	var out bytes.Buffer
	if err := win.Show(&out); err != nil {
		t.Fatalf("show: %v", err)
	}
	lines := strings.Split(strings.TrimPrefix(out.String(), "\n"), "\n")
	if len(lines) != 7 || lines[6] != "" {
		t.Fatalf("unexpected frame:\n%s", out.String())
	}
	for i, line := range lines[:6] {
		if n := utf8.RuneCountInString(line); n != frameWidth+2 {
			t.Errorf("line %d has width %d: %q", i, n, line)
		}
	}
	if !strings.HasPrefix(lines[1], "║ main ") {
		t.Errorf("title row %q", lines[1])
	}
	if !strings.HasPrefix(lines[3], "║ [Label] Hello ") || !strings.HasPrefix(lines[4], "║ [Input: your name] ") {
		t.Errorf("child rows %q %q", lines[3], lines[4])
	}
}

func TestTextInputPrefersValue(t *testing.T) {
	input := NewTextInput()
	input.Placeholder = "hint"
	input.Value = "typed"
	if got := input.RenderLine(); got != "[Input: typed]" {
		t.Fatalf("got %q", got)
	}
}

func TestHiddenWindowRendersNothing(t *testing.T) {
	win := NewWindow("w", DefaultWindow)
	win.Visible = false
	var out bytes.Buffer
	if err := win.Render(&out); err != nil || out.Len() != 0 {
		t.Fatalf("rendered %q, err %v", out.String(), err)
	}
}

func TestManagerLookup(t *testing.T) {
	m := NewManager()
	m.RegisterWindow("b", NewWindow("b", DefaultWindow))
	m.RegisterWindow("a", NewWindow("a", Defaults{Width: 10, Height: 5, Background: "black"}))
	m.RegisterWidget("ok", NewButton())

	if w, ok := m.Window("a"); !ok || w.Width != 10 || w.Background != "black" {
		t.Fatalf("window a = %+v, %v", w, ok)
	}
	if _, ok := m.Window("missing"); ok {
		t.Fatalf("missing window found")
	}
	if w, ok := m.Widget("ok"); !ok || w.Kind() != "button" {
		t.Fatalf("widget ok = %v, %v", w, ok)
	}

	var out bytes.Buffer
	if err := m.RenderAll(&out); err != nil {
		t.Fatalf("render all: %v", err)
	}
	if strings.Index(out.String(), "║ b ") > strings.Index(out.String(), "║ a ") {
		t.Fatalf("windows not rendered in creation order:\n%s", out.String())
	}
}
