package parser

import (
	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/lexer"
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseOr()
}

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.KwOr) {
		op := p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = ast.WithLine(ast.NewBinaryExpression(ast.OpOr, left, right), op.Line)
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseEquality()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.KwAnd) {
		op := p.advance()
		right, err := p.parseEquality()
		if err != nil {
			return nil, err
		}
		left = ast.WithLine(ast.NewBinaryExpression(ast.OpAnd, left, right), op.Line)
	}
	return left, nil
}

// parseEquality handles `is [not] [equal] [to] X`.
func (p *Parser) parseEquality() (ast.Expression, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.KwIs) {
		return left, nil
	}
	is := p.advance()
	op := ast.OpEqual
	if p.match(lexer.KwNot) {
		op = ast.OpNotEqual
	}
	p.match(lexer.KwEqual)
	p.match(lexer.KwTo)
	right, err := p.parseComparison()
	if err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewBinaryExpression(op, left, right), is.Line), nil
}

// parseComparison handles `is greater|less [than] [or equal [to]] X`. An
// `is` followed by `equal` or `not` is left for parseEquality; any other
// continuation consumes the `is` and yields the left operand unchanged.
func (p *Parser) parseComparison() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.KwIs) {
		return left, nil
	}
	switch p.peekAt(1).Kind {
	case lexer.KwEqual, lexer.KwNot:
		return left, nil
	}
	is := p.advance()
	var op ast.BinaryOperator
	switch {
	case p.match(lexer.KwGreater):
		op = ast.OpGreater
	case p.match(lexer.KwLess):
		op = ast.OpLess
	default:
		return left, nil
	}
	p.match(lexer.KwThan)
	if p.check(lexer.KwOr) && p.checkNext(lexer.KwEqual) {
		p.advance()
		p.advance()
		p.match(lexer.KwTo)
		if op == ast.OpGreater {
			op = ast.OpGreaterEqual
		} else {
			op = ast.OpLessEqual
		}
	}
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewBinaryExpression(op, left, right), is.Line), nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.KwAdd) || p.check(lexer.KwSubtract) {
		tok := p.advance()
		op := ast.OpAdd
		if tok.Kind == lexer.KwSubtract {
			op = ast.OpSubtract
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.WithLine(ast.NewBinaryExpression(op, left, right), tok.Line)
	}
	return left, nil
}

var multiplicativeOps = map[lexer.TokenKind]ast.BinaryOperator{
	lexer.KwMultiply:  ast.OpMultiply,
	lexer.KwDivide:    ast.OpDivide,
	lexer.KwRemainder: ast.OpModulo,
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := multiplicativeOps[p.peek().Kind]
		if !ok {
			return left, nil
		}
		tok := p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = ast.WithLine(ast.NewBinaryExpression(op, left, right), tok.Line)
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.check(lexer.KwNot) || p.check(lexer.KwNegative) {
		tok := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		op := ast.OpNot
		if tok.Kind == lexer.KwNegative {
			op = ast.OpNegate
		}
		return ast.WithLine(ast.NewUnaryExpression(op, operand), tok.Line), nil
	}
	return p.parseCall()
}

func (p *Parser) parseCall() (ast.Expression, error) {
	switch p.peek().Kind {
	case lexer.KwCall:
		return p.parseFunctionCall()
	case lexer.KwSay, lexer.KwPrint, lexer.KwShow:
		return p.parseSay()
	}
	return p.parsePrimary()
}

// parseFunctionCall handles `call NAME [with A {, | and} B] [and store as X]`.
// NAME may be a keyword so builtins such as `floor` and `trim` are callable.
func (p *Parser) parseFunctionCall() (ast.Expression, error) {
	p.advance()
	name := p.peek()
	if name.Kind != lexer.TokenIdentifier && !name.Kind.IsKeyword() {
		return nil, p.errorAtCurrent("Expected function name")
	}
	p.advance()
	var args []ast.Expression
	if p.match(lexer.KwWith) {
		for {
			arg, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if p.match(lexer.TokenComma) {
				continue
			}
			if p.check(lexer.KwAnd) && !p.checkNext(lexer.KwStore) {
				p.advance()
				continue
			}
			break
		}
	}
	storeAs := ""
	if p.check(lexer.KwAnd) && p.checkNext(lexer.KwStore) {
		p.advance()
		p.advance()
		p.match(lexer.KwAs)
		target, err := p.consume(lexer.TokenIdentifier, "Expected variable name after 'store as'")
		if err != nil {
			return nil, err
		}
		storeAs = target.Lexeme
	}
	return ast.WithLine(ast.NewFunctionCall(name.Lexeme, args, storeAs), name.Line), nil
}

// parseSay turns `say|print|show A {, B}` into a call named "say".
func (p *Parser) parseSay() (ast.Expression, error) {
	tok := p.advance()
	var args []ast.Expression
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if !p.match(lexer.TokenComma) {
			break
		}
	}
	return ast.WithLine(ast.NewFunctionCall("say", args, ""), tok.Line), nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.KwTrue, lexer.KwFalse, lexer.KwNothing, lexer.TokenInteger, lexer.TokenFloat, lexer.TokenString:
		return p.parseLiteral()
	case lexer.TokenIdentifier:
		p.advance()
		return ast.WithLine(ast.NewIdentifier(tok.Lexeme), tok.Line), nil
	case lexer.KwA, lexer.KwAn:
		return p.parseCollectionLiteral()
	case lexer.KwItem:
		return p.parseItemAccess()
	case lexer.KwThe:
		return p.parsePropertyAccess()
	}
	return nil, p.unexpected()
}

// parseCollectionLiteral handles `a list containing …`, `a map containing
// K as V, …`, `an empty list` and `an empty map`.
func (p *Parser) parseCollectionLiteral() (ast.Expression, error) {
	start := p.advance()
	if p.match(lexer.KwEmpty) {
		switch {
		case p.match(lexer.KwList):
			return ast.WithLine(ast.NewListLiteral(nil), start.Line), nil
		case p.match(lexer.KwMap):
			return ast.WithLine(ast.NewDictLiteral(nil), start.Line), nil
		}
		return nil, p.errorAtCurrent("Expected 'list' or 'map' after 'empty'")
	}
	switch {
	case p.match(lexer.KwList):
		if _, err := p.consume(lexer.KwContaining, "Expected 'containing' in list literal"); err != nil {
			return nil, err
		}
		var elements []ast.Expression
		for {
			el, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
			if !p.match(lexer.TokenComma, lexer.KwAnd) {
				break
			}
		}
		return ast.WithLine(ast.NewListLiteral(elements), start.Line), nil
	case p.match(lexer.KwMap):
		if _, err := p.consume(lexer.KwContaining, "Expected 'containing' in map literal"); err != nil {
			return nil, err
		}
		var entries []ast.DictEntry
		for {
			key, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.KwAs, "Expected 'as' after map key"); err != nil {
				return nil, err
			}
			value, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			entries = append(entries, ast.DictEntry{Key: key, Value: value})
			if !p.match(lexer.TokenComma, lexer.KwAnd) {
				break
			}
		}
		return ast.WithLine(ast.NewDictLiteral(entries), start.Line), nil
	}
	return nil, p.unexpected()
}

// parseItemAccess handles `item I of L`.
func (p *Parser) parseItemAccess() (ast.Expression, error) {
	start := p.advance()
	index, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwOf, "Expected 'of' after item index"); err != nil {
		return nil, err
	}
	object, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewIndexExpression(object, index), start.Line), nil
}

// parsePropertyAccess handles `the NAME of OBJ`. NAME may be any word,
// including keywords such as `title`.
func (p *Parser) parsePropertyAccess() (ast.Expression, error) {
	start := p.advance()
	name := p.peek()
	if name.Kind != lexer.TokenIdentifier && !name.Kind.IsKeyword() {
		return nil, p.errorAtCurrent("Expected property name after 'the'")
	}
	p.advance()
	if _, err := p.consume(lexer.KwOf, "Expected 'of' after property name"); err != nil {
		return nil, err
	}
	object, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewPropertyAccess(object, name.Lexeme), start.Line), nil
}
