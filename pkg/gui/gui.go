// Package gui is a text-mode window system. Windows and widgets are plain
// structs with mutable fields; a window renders itself as a box-drawn frame.
package gui

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// frameWidth is the number of columns between the frame's corner glyphs.
const frameWidth = 50

// Defaults configures newly created windows.
type Defaults struct {
	Width      int
	Height     int
	Background string
}

// DefaultWindow matches the renderer's built-in window settings.
var DefaultWindow = Defaults{Width: 800, Height: 600, Background: "white"}

// Bounds is the geometry shared by every widget. X is the column and Y the
// row a widget was placed at.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Widget is anything that can be placed inside a window.
type Widget interface {
	Kind() string
	Geometry() *Bounds
	// RenderLine returns the widget's row inside a window frame, without
	// the frame's side glyphs.
	RenderLine() string
}

type Label struct {
	Bounds
	Text string
}

func NewLabel() *Label { return &Label{Bounds: Bounds{Width: 100, Height: 30}} }

func (l *Label) Kind() string       { return "label" }
func (l *Label) Geometry() *Bounds  { return &l.Bounds }
func (l *Label) RenderLine() string { return "[Label] " + l.Text }

type Button struct {
	Bounds
	Text string
}

func NewButton() *Button { return &Button{Bounds: Bounds{Width: 100, Height: 30}} }

func (b *Button) Kind() string       { return "button" }
func (b *Button) Geometry() *Bounds  { return &b.Bounds }
func (b *Button) RenderLine() string { return "[Button: " + b.Text + "]" }

// TextInput shows its value, or its placeholder while the value is empty.
type TextInput struct {
	Bounds
	Placeholder string
	Value       string
}

func NewTextInput() *TextInput { return &TextInput{Bounds: Bounds{Width: 100, Height: 30}} }

func (t *TextInput) Kind() string      { return "input" }
func (t *TextInput) Geometry() *Bounds { return &t.Bounds }
func (t *TextInput) RenderLine() string {
	shown := t.Value
	if shown == "" {
		shown = t.Placeholder
	}
	return "[Input: " + shown + "]"
}

// Window is a top-level container.
type Window struct {
	Bounds
	Title      string
	Background string
	Visible    bool
	Children   []Widget
}

// NewWindow creates a visible window titled with its name.
func NewWindow(title string, d Defaults) *Window {
	return &Window{
		Bounds:     Bounds{Width: d.Width, Height: d.Height},
		Title:      title,
		Background: d.Background,
		Visible:    true,
	}
}

func (w *Window) Add(child Widget) {
	w.Children = append(w.Children, child)
}

// Show marks the window visible and renders it to out.
func (w *Window) Show(out io.Writer) error {
	w.Visible = true
	return w.Render(out)
}

// Render draws the window frame, its title row and one row per child.
// Hidden windows render nothing.
func (w *Window) Render(out io.Writer) error {
	if !w.Visible {
		return nil
	}
	bar := strings.Repeat("═", frameWidth)
	var sb strings.Builder
	sb.WriteString("\n╔" + bar + "╗\n")
	sb.WriteString(frameRow(w.Title))
	sb.WriteString("╠" + bar + "╣\n")
	for _, child := range w.Children {
		sb.WriteString(frameRow(child.RenderLine()))
	}
	sb.WriteString("╚" + bar + "╝\n")
	_, err := io.WriteString(out, sb.String())
	return err
}

func frameRow(content string) string {
	inner := frameWidth - 2
	if n := utf8.RuneCountInString(content); n < inner {
		content += strings.Repeat(" ", inner-n)
	}
	return fmt.Sprintf("║ %s ║\n", content)
}

// Registry stores windows and widgets by name.
type Registry interface {
	RegisterWindow(name string, w *Window)
	Window(name string) (*Window, bool)
	RegisterWidget(name string, w Widget)
	Widget(name string) (Widget, bool)
	RenderAll(out io.Writer) error
}

// Manager is the in-memory Registry. Each interpreter owns its own.
type Manager struct {
	windows map[string]*Window
	widgets map[string]Widget
	order   []string
}

func NewManager() *Manager {
	return &Manager{
		windows: make(map[string]*Window),
		widgets: make(map[string]Widget),
	}
}

func (m *Manager) RegisterWindow(name string, w *Window) {
	if _, ok := m.windows[name]; !ok {
		m.order = append(m.order, name)
	}
	m.windows[name] = w
}

func (m *Manager) Window(name string) (*Window, bool) {
	w, ok := m.windows[name]
	return w, ok
}

func (m *Manager) RegisterWidget(name string, w Widget) {
	m.widgets[name] = w
}

func (m *Manager) Widget(name string) (Widget, bool) {
	w, ok := m.widgets[name]
	return w, ok
}

// RenderAll renders every visible window in creation order.
func (m *Manager) RenderAll(out io.Writer) error {
	for _, name := range m.order {
		if err := m.windows[name].Render(out); err != nil {
			return err
		}
	}
	return nil
}
