package interpreter

import (
	"fmt"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/gui"
	"kaynat/interpreter-go/pkg/runtime"
)

// evaluateGuiCommand applies one window command through the registry. The
// statement's value is always Null.
func (i *Interpreter) evaluateGuiCommand(cmd *ast.GuiCommand, env *runtime.Environment) (runtime.Value, error) {
	i.logger.Debug("gui", "command", string(cmd.Command), "target", cmd.Target, "line", cmd.Line())
	var err error
	switch cmd.Command {
	case ast.GuiCreateWindow:
		i.registry.RegisterWindow(cmd.Target, gui.NewWindow(cmd.Target, i.guiDefaults))
		err = bindGuiName(env, cmd.Target)
	case ast.GuiCreateLabel:
		i.registry.RegisterWidget(cmd.Target, gui.NewLabel())
		err = bindGuiName(env, cmd.Target)
	case ast.GuiCreateButton:
		i.registry.RegisterWidget(cmd.Target, gui.NewButton())
		err = bindGuiName(env, cmd.Target)
	case ast.GuiCreateTextInput:
		i.registry.RegisterWidget(cmd.Target, gui.NewTextInput())
		err = bindGuiName(env, cmd.Target)
	case ast.GuiSetProperty:
		err = i.setGuiProperty(cmd, env)
	case ast.GuiShow:
		var win *gui.Window
		if win, err = i.window(cmd.Target); err == nil {
			err = win.Show(i.out)
		}
	case ast.GuiPlace:
		err = i.placeWidget(cmd, env)
	default:
		err = fmt.Errorf("unsupported gui command %s", cmd.Command)
	}
	if err != nil {
		return nil, err
	}
	return runtime.NullValue{}, nil
}

// bindGuiName makes the created name resolvable. Re-creating a name that
// is already bound leaves the binding alone.
func bindGuiName(env *runtime.Environment, name string) error {
	if env.Exists(name) {
		return nil
	}
	return env.Define(name, runtime.NullValue{}, false)
}

func (i *Interpreter) window(name string) (*gui.Window, error) {
	win, ok := i.registry.Window(name)
	if !ok {
		return nil, diag.Runtimef("Window '%s' not found", name)
	}
	return win, nil
}

func (i *Interpreter) widget(name string) (gui.Widget, error) {
	w, ok := i.registry.Widget(name)
	if !ok {
		return nil, diag.Runtimef("Widget '%s' not found", name)
	}
	return w, nil
}

func (i *Interpreter) setGuiProperty(cmd *ast.GuiCommand, env *runtime.Environment) error {
	val, err := i.evaluateExpression(cmd.Value, env)
	if err != nil {
		return err
	}
	switch cmd.Property {
	case ast.GuiTitle, ast.GuiBackground:
		win, err := i.window(cmd.Target)
		if err != nil {
			return err
		}
		s, ok := val.(runtime.StringValue)
		if !ok {
			return diag.Type("String", runtime.TypeName(val))
		}
		if cmd.Property == ast.GuiTitle {
			win.Title = s.Val
		} else {
			win.Background = s.Val
		}
	case ast.GuiWidth, ast.GuiHeight:
		win, err := i.window(cmd.Target)
		if err != nil {
			return err
		}
		n, ok := val.(runtime.IntegerValue)
		if !ok {
			return diag.Type("Integer", runtime.TypeName(val))
		}
		if cmd.Property == ast.GuiWidth {
			win.Width = int(n.Val)
		} else {
			win.Height = int(n.Val)
		}
	case ast.GuiText:
		w, err := i.widget(cmd.Target)
		if err != nil {
			return err
		}
		s, ok := val.(runtime.StringValue)
		if !ok {
			return diag.Type("String", runtime.TypeName(val))
		}
		switch target := w.(type) {
		case *gui.Label:
			target.Text = s.Val
		case *gui.Button:
			target.Text = s.Val
		default:
			return diag.Runtimef("Cannot set the text of %s '%s'", w.Kind(), cmd.Target)
		}
	case ast.GuiPlaceholder:
		w, err := i.widget(cmd.Target)
		if err != nil {
			return err
		}
		s, ok := val.(runtime.StringValue)
		if !ok {
			return diag.Type("String", runtime.TypeName(val))
		}
		input, ok := w.(*gui.TextInput)
		if !ok {
			return diag.Runtimef("Cannot set the placeholder of %s '%s'", w.Kind(), cmd.Target)
		}
		input.Placeholder = s.Val
	default:
		return fmt.Errorf("unsupported gui property %s", cmd.Property)
	}
	return nil
}

func (i *Interpreter) placeWidget(cmd *ast.GuiCommand, env *runtime.Environment) error {
	w, err := i.widget(cmd.Target)
	if err != nil {
		return err
	}
	row, err := i.evaluateInteger(cmd.Row, env)
	if err != nil {
		return err
	}
	col, err := i.evaluateInteger(cmd.Column, env)
	if err != nil {
		return err
	}
	win, err := i.window(cmd.Container)
	if err != nil {
		return err
	}
	bounds := w.Geometry()
	bounds.X = int(col)
	bounds.Y = int(row)
	win.Add(w)
	return nil
}
