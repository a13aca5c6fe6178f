package ast

// GuiCommandKind tags the renderer operation a GuiCommand performs.
type GuiCommandKind string

const (
	GuiCreateWindow    GuiCommandKind = "create_window"
	GuiCreateLabel     GuiCommandKind = "create_label"
	GuiCreateButton    GuiCommandKind = "create_button"
	GuiCreateTextInput GuiCommandKind = "create_text_input"
	GuiSetProperty     GuiCommandKind = "set_property"
	GuiShow            GuiCommandKind = "show"
	GuiPlace           GuiCommandKind = "place"
)

// GuiProperty names a settable window or widget field.
type GuiProperty string

const (
	GuiTitle       GuiProperty = "title"
	GuiWidth       GuiProperty = "width"
	GuiHeight      GuiProperty = "height"
	GuiBackground  GuiProperty = "background"
	GuiText        GuiProperty = "text"
	GuiPlaceholder GuiProperty = "placeholder"
)

// GuiCommand is dispatched to the renderer by the evaluator.
//
//	create:  Target
//	set:     Target, Property, Value
//	show:    Target
//	place:   Target, Row, Column, Container
type GuiCommand struct {
	nodeImpl
	statementMarker

	Command   GuiCommandKind `json:"command"`
	Target    string         `json:"target"`
	Property  GuiProperty    `json:"property,omitempty"`
	Value     Expression     `json:"value,omitempty"`
	Row       Expression     `json:"row,omitempty"`
	Column    Expression     `json:"column,omitempty"`
	Container string         `json:"container,omitempty"`
}

func NewGuiCreate(kind GuiCommandKind, target string) *GuiCommand {
	return &GuiCommand{nodeImpl: newNodeImpl(NodeGuiCommand), Command: kind, Target: target}
}

func NewGuiSet(target string, property GuiProperty, value Expression) *GuiCommand {
	return &GuiCommand{nodeImpl: newNodeImpl(NodeGuiCommand), Command: GuiSetProperty, Target: target, Property: property, Value: value}
}

func NewGuiShow(target string) *GuiCommand {
	return &GuiCommand{nodeImpl: newNodeImpl(NodeGuiCommand), Command: GuiShow, Target: target}
}

func NewGuiPlace(target string, row, column Expression, container string) *GuiCommand {
	return &GuiCommand{nodeImpl: newNodeImpl(NodeGuiCommand), Command: GuiPlace, Target: target, Row: row, Column: column, Container: container}
}
