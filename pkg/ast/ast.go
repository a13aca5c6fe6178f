package ast

type NodeType string

const (
	NodeProgram            NodeType = "Program"
	NodeIdentifier         NodeType = "Identifier"
	NodeIntegerLiteral     NodeType = "IntegerLiteral"
	NodeFloatLiteral       NodeType = "FloatLiteral"
	NodeStringLiteral      NodeType = "StringLiteral"
	NodeBooleanLiteral     NodeType = "BooleanLiteral"
	NodeNothingLiteral     NodeType = "NothingLiteral"
	NodeListLiteral        NodeType = "ListLiteral"
	NodeDictLiteral        NodeType = "DictLiteral"
	NodeBinaryExpression   NodeType = "BinaryExpression"
	NodeUnaryExpression    NodeType = "UnaryExpression"
	NodeFunctionCall       NodeType = "FunctionCall"
	NodeIndexExpression    NodeType = "IndexExpression"
	NodePropertyAccess     NodeType = "PropertyAccess"
	NodeAssignment         NodeType = "Assignment"
	NodeBlock              NodeType = "Block"
	NodeIfStatement        NodeType = "IfStatement"
	NodeWhileLoop          NodeType = "WhileLoop"
	NodeRepeatLoop         NodeType = "RepeatLoop"
	NodeRangeLoop          NodeType = "RangeLoop"
	NodeForEachLoop        NodeType = "ForEachLoop"
	NodeFunctionDefinition NodeType = "FunctionDefinition"
	NodeReturnStatement    NodeType = "ReturnStatement"
	NodeStopStatement      NodeType = "StopStatement"
	NodeSkipStatement      NodeType = "SkipStatement"
	NodeForgetStatement    NodeType = "ForgetStatement"
	NodeGuiCommand         NodeType = "GuiCommand"
)

// Node is implemented by every syntax tree element. Line is the source line
// of the node's leading token.
type Node interface {
	NodeType() NodeType
	Line() int
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	Pos  int      `json:"line"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Line() int          { return n.Pos }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Positioned is implemented by nodes whose line can be set after
// construction. Only the parser and the builder helpers use it.
type Positioned interface {
	setLine(int)
}

func (n *nodeImpl) setLine(line int) { n.Pos = line }

// WithLine sets the line on a freshly built node and returns it.
func WithLine[T Node](node T, line int) T {
	if p, ok := any(node).(Positioned); ok {
		p.setLine(line)
	}
	return node
}

// Program

type Program struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewProgram(body []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Body: body}
}

// Identifier

type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literals

type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value int64 `json:"value"`
}

func NewIntegerLiteral(value int64) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Value: value}
}

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value float64 `json:"value"`
}

func NewFloatLiteral(value float64) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NothingLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker
}

func NewNothingLiteral() *NothingLiteral {
	return &NothingLiteral{nodeImpl: newNodeImpl(NodeNothingLiteral)}
}

type ListLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements"`
}

func NewListLiteral(elements []Expression) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}

// DictEntry is one `key as value` pair of a map literal.
type DictEntry struct {
	Key   Expression `json:"key"`
	Value Expression `json:"value"`
}

type DictLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Entries []DictEntry `json:"entries"`
}

func NewDictLiteral(entries []DictEntry) *DictLiteral {
	return &DictLiteral{nodeImpl: newNodeImpl(NodeDictLiteral), Entries: entries}
}

// Operators

// BinaryOperator spells the operator symbolically; the surface language
// uses keywords (`add`, `is greater than`, ...).
type BinaryOperator string

const (
	OpAdd          BinaryOperator = "+"
	OpSubtract     BinaryOperator = "-"
	OpMultiply     BinaryOperator = "*"
	OpDivide       BinaryOperator = "/"
	OpModulo       BinaryOperator = "%"
	OpEqual        BinaryOperator = "=="
	OpNotEqual     BinaryOperator = "!="
	OpLess         BinaryOperator = "<"
	OpLessEqual    BinaryOperator = "<="
	OpGreater      BinaryOperator = ">"
	OpGreaterEqual BinaryOperator = ">="
	OpAnd          BinaryOperator = "and"
	OpOr           BinaryOperator = "or"
)

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type UnaryOperator string

const (
	OpNot    UnaryOperator = "not"
	OpNegate UnaryOperator = "negative"
)

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

// FunctionCall invokes Callee by name. StoreAs, when set, also assigns the
// result to that name.
type FunctionCall struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee    string       `json:"callee"`
	Arguments []Expression `json:"arguments"`
	StoreAs   string       `json:"storeAs,omitempty"`
}

func NewFunctionCall(callee string, args []Expression, storeAs string) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Arguments: args, StoreAs: storeAs}
}

type IndexExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
}

func NewIndexExpression(object, index Expression) *IndexExpression {
	return &IndexExpression{nodeImpl: newNodeImpl(NodeIndexExpression), Object: object, Index: index}
}

type PropertyAccess struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object   Expression `json:"object"`
	Property string     `json:"property"`
}

func NewPropertyAccess(object Expression, property string) *PropertyAccess {
	return &PropertyAccess{nodeImpl: newNodeImpl(NodePropertyAccess), Object: object, Property: property}
}

// Statements

type Assignment struct {
	nodeImpl
	statementMarker

	Name     string     `json:"name"`
	Value    Expression `json:"value"`
	Constant bool       `json:"constant"`
}

func NewAssignment(name string, value Expression, constant bool) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value, Constant: constant}
}

// Block is an ordered statement list. It does not open a scope by itself.
type Block struct {
	nodeImpl
	statementMarker

	Body []Statement `json:"body"`
}

func NewBlock(body []Statement) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      *Block     `json:"then"`
	Otherwise *Block     `json:"otherwise,omitempty"`
}

func NewIfStatement(condition Expression, then, otherwise *Block) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Otherwise: otherwise}
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      *Block     `json:"body"`
}

func NewWhileLoop(condition Expression, body *Block) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

type RepeatLoop struct {
	nodeImpl
	statementMarker

	Count Expression `json:"count"`
	Body  *Block     `json:"body"`
}

func NewRepeatLoop(count Expression, body *Block) *RepeatLoop {
	return &RepeatLoop{nodeImpl: newNodeImpl(NodeRepeatLoop), Count: count, Body: body}
}

// DefaultRangeVariable names the counter of a `loop from … to …` without `as`.
const DefaultRangeVariable = "counter"

type RangeLoop struct {
	nodeImpl
	statementMarker

	Variable string     `json:"variable"`
	From     Expression `json:"from"`
	To       Expression `json:"to"`
	Step     Expression `json:"step,omitempty"`
	Body     *Block     `json:"body"`
}

func NewRangeLoop(variable string, from, to, step Expression, body *Block) *RangeLoop {
	if variable == "" {
		variable = DefaultRangeVariable
	}
	return &RangeLoop{nodeImpl: newNodeImpl(NodeRangeLoop), Variable: variable, From: from, To: to, Step: step, Body: body}
}

type ForEachLoop struct {
	nodeImpl
	statementMarker

	Variable string     `json:"variable"`
	Iterable Expression `json:"iterable"`
	Body     *Block     `json:"body"`
}

func NewForEachLoop(variable string, iterable Expression, body *Block) *ForEachLoop {
	return &ForEachLoop{nodeImpl: newNodeImpl(NodeForEachLoop), Variable: variable, Iterable: iterable, Body: body}
}

type FunctionDefinition struct {
	nodeImpl
	statementMarker

	Name       string   `json:"name"`
	Parameters []string `json:"parameters"`
	Body       *Block   `json:"body"`
}

func NewFunctionDefinition(name string, params []string, body *Block) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), Name: name, Parameters: params, Body: body}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Argument Expression `json:"argument"`
}

func NewReturnStatement(argument Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Argument: argument}
}

type StopStatement struct {
	nodeImpl
	statementMarker
}

func NewStopStatement() *StopStatement {
	return &StopStatement{nodeImpl: newNodeImpl(NodeStopStatement)}
}

type SkipStatement struct {
	nodeImpl
	statementMarker
}

func NewSkipStatement() *SkipStatement {
	return &SkipStatement{nodeImpl: newNodeImpl(NodeSkipStatement)}
}

type ForgetStatement struct {
	nodeImpl
	statementMarker

	Name string `json:"name"`
}

func NewForgetStatement(name string) *ForgetStatement {
	return &ForgetStatement{nodeImpl: newNodeImpl(NodeForgetStatement), Name: name}
}
