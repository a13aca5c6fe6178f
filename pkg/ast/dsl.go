package ast

// Short builders for assembling trees in tests and tooling.

func ID(name string) *Identifier         { return NewIdentifier(name) }
func Int(v int64) *IntegerLiteral        { return NewIntegerLiteral(v) }
func Flt(v float64) *FloatLiteral        { return NewFloatLiteral(v) }
func Str(v string) *StringLiteral        { return NewStringLiteral(v) }
func Bool(v bool) *BooleanLiteral        { return NewBooleanLiteral(v) }
func Nothing() *NothingLiteral           { return NewNothingLiteral() }
func List(el ...Expression) *ListLiteral { return NewListLiteral(el) }

func Dict(entries ...DictEntry) *DictLiteral { return NewDictLiteral(entries) }

func Entry(key, value Expression) DictEntry { return DictEntry{Key: key, Value: value} }

func Bin(op BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Not(operand Expression) *UnaryExpression { return NewUnaryExpression(OpNot, operand) }

func Neg(operand Expression) *UnaryExpression { return NewUnaryExpression(OpNegate, operand) }

func Call(callee string, args ...Expression) *FunctionCall {
	return NewFunctionCall(callee, args, "")
}

func Say(args ...Expression) *FunctionCall { return NewFunctionCall("say", args, "") }

func Index(object, index Expression) *IndexExpression { return NewIndexExpression(object, index) }

func Set(name string, value Expression) *Assignment { return NewAssignment(name, value, false) }

func Always(name string, value Expression) *Assignment { return NewAssignment(name, value, true) }

func Body(stmts ...Statement) *Block { return NewBlock(stmts) }

func If(cond Expression, then *Block, otherwise *Block) *IfStatement {
	return NewIfStatement(cond, then, otherwise)
}

func While(cond Expression, body ...Statement) *WhileLoop { return NewWhileLoop(cond, NewBlock(body)) }

func Repeat(count Expression, body ...Statement) *RepeatLoop {
	return NewRepeatLoop(count, NewBlock(body))
}

func ForEach(variable string, iterable Expression, body ...Statement) *ForEachLoop {
	return NewForEachLoop(variable, iterable, NewBlock(body))
}

func Fn(name string, params []string, body ...Statement) *FunctionDefinition {
	return NewFunctionDefinition(name, params, NewBlock(body))
}

func Ret(argument Expression) *ReturnStatement { return NewReturnStatement(argument) }

func Prog(body ...Statement) *Program { return NewProgram(body) }
