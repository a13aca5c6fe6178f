package parser

import (
	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/lexer"
)

var guiProperties = map[lexer.TokenKind]ast.GuiProperty{
	lexer.KwTitle:       ast.GuiTitle,
	lexer.KwWidth:       ast.GuiWidth,
	lexer.KwHeight:      ast.GuiHeight,
	lexer.KwBackground:  ast.GuiBackground,
	lexer.KwText:        ast.GuiText,
	lexer.KwPlaceholder: ast.GuiPlaceholder,
}

// parseStatement returns a nil statement for comments.
func (p *Parser) parseStatement() (ast.Statement, error) {
	tok := p.peek()
	switch tok.Kind {
	case lexer.KwNote:
		return nil, p.skipNote()
	case lexer.KwSet, lexer.KwLet:
		if tok.Kind == lexer.KwSet && p.isGuiSet() {
			return p.parseGuiSet()
		}
		p.advance()
		return p.parseAssignment(false)
	case lexer.KwAlways:
		p.advance()
		return p.parseAssignment(true)
	case lexer.KwIf:
		p.advance()
		return p.parseIf(tok)
	case lexer.KwWhile:
		p.advance()
		return p.parseWhile(tok)
	case lexer.KwRepeat:
		p.advance()
		return p.parseRepeat(tok)
	case lexer.KwLoop:
		p.advance()
		return p.parseRangeLoop(tok)
	case lexer.KwFor:
		p.advance()
		return p.parseForEach(tok)
	case lexer.KwDefine:
		p.advance()
		return p.parseFunctionDefinition()
	case lexer.KwGive:
		p.advance()
		return p.parseReturn(tok)
	case lexer.KwStop:
		p.advance()
		return ast.WithLine(ast.NewStopStatement(), tok.Line), p.terminate()
	case lexer.KwSkip:
		p.advance()
		return ast.WithLine(ast.NewSkipStatement(), tok.Line), p.terminate()
	case lexer.KwForget:
		p.advance()
		return p.parseForget(tok)
	case lexer.KwCreate:
		p.advance()
		return p.parseGuiCreate(tok)
	case lexer.KwShow:
		if p.checkNext(lexer.TokenIdentifier) && p.peekAt(2).Kind == lexer.TokenPeriod {
			p.advance()
			return p.parseGuiShow(tok)
		}
	case lexer.KwPlace:
		p.advance()
		return p.parseGuiPlace(tok)
	}
	return p.parseExpressionStatement()
}

func (p *Parser) skipNote() error {
	p.advance()
	for !p.isAtEnd() && !p.check(lexer.TokenPeriod) {
		p.advance()
	}
	_, err := p.consume(lexer.TokenPeriod, "Expected '.' at end of comment")
	return err
}

func (p *Parser) parseAssignment(constant bool) (ast.Statement, error) {
	name, err := p.consume(lexer.TokenIdentifier, "Expected variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwTo, "Expected 'to' after variable name"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewAssignment(name.Lexeme, value, constant), name.Line), nil
}

func (p *Parser) parseIf(start lexer.Token) (ast.Statement, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwThen, "Expected 'then' after condition"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after 'then'"); err != nil {
		return nil, err
	}
	then, err := p.parseBody(lexer.KwOtherwise, lexer.KwEnd)
	if err != nil {
		return nil, err
	}
	var otherwise *ast.Block
	if p.match(lexer.KwOtherwise) {
		if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after 'otherwise'"); err != nil {
			return nil, err
		}
		if otherwise, err = p.parseBody(lexer.KwEnd); err != nil {
			return nil, err
		}
	}
	if err := p.closeBlock("if statement"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewIfStatement(cond, then, otherwise), start.Line), nil
}

func (p *Parser) parseWhile(start lexer.Token) (ast.Statement, error) {
	cond, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after while condition"); err != nil {
		return nil, err
	}
	body, err := p.parseBody(lexer.KwEnd)
	if err != nil {
		return nil, err
	}
	if err := p.closeBlock("while loop"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewWhileLoop(cond, body), start.Line), nil
}

func (p *Parser) parseRepeat(start lexer.Token) (ast.Statement, error) {
	count, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwTimes, "Expected 'times' after repeat count"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after 'times'"); err != nil {
		return nil, err
	}
	body, err := p.parseBody(lexer.KwEnd)
	if err != nil {
		return nil, err
	}
	if err := p.closeBlock("repeat loop"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewRepeatLoop(count, body), start.Line), nil
}

// parseRangeLoop handles `loop from A to B [stepping S] [as NAME].`
func (p *Parser) parseRangeLoop(start lexer.Token) (ast.Statement, error) {
	if _, err := p.consume(lexer.KwFrom, "Expected 'from' in for loop"); err != nil {
		return nil, err
	}
	from, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwTo, "Expected 'to' in for loop"); err != nil {
		return nil, err
	}
	to, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	var step ast.Expression
	if p.match(lexer.KwStepping) {
		if step, err = p.parseExpression(); err != nil {
			return nil, err
		}
	}
	variable := ""
	if p.match(lexer.KwAs) {
		name, err := p.consume(lexer.TokenIdentifier, "Expected loop variable name after 'as'")
		if err != nil {
			return nil, err
		}
		variable = name.Lexeme
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after range"); err != nil {
		return nil, err
	}
	body, err := p.parseBody(lexer.KwEnd)
	if err != nil {
		return nil, err
	}
	if err := p.closeBlock("for loop"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewRangeLoop(variable, from, to, step, body), start.Line), nil
}

func (p *Parser) parseForEach(start lexer.Token) (ast.Statement, error) {
	if _, err := p.consume(lexer.KwEach, "Expected 'each' after 'for'"); err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.TokenIdentifier, "Expected loop variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwIn, "Expected 'in' after loop variable"); err != nil {
		return nil, err
	}
	iterable, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after for each header"); err != nil {
		return nil, err
	}
	body, err := p.parseBody(lexer.KwEnd)
	if err != nil {
		return nil, err
	}
	if err := p.closeBlock("for each loop"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewForEachLoop(name.Lexeme, iterable, body), start.Line), nil
}

func (p *Parser) parseFunctionDefinition() (ast.Statement, error) {
	p.match(lexer.KwA)
	if _, err := p.consume(lexer.KwFunction, "Expected 'function'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwCalled, "Expected 'called'"); err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.TokenIdentifier, "Expected function name")
	if err != nil {
		return nil, err
	}
	var params []string
	if p.match(lexer.KwThat) {
		if _, err := p.consume(lexer.KwTakes, "Expected 'takes' after 'that'"); err != nil {
			return nil, err
		}
		for {
			param, err := p.consume(lexer.TokenIdentifier, "Expected parameter name")
			if err != nil {
				return nil, err
			}
			params = append(params, param.Lexeme)
			if !p.match(lexer.TokenComma, lexer.KwAnd) {
				break
			}
		}
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after function signature"); err != nil {
		return nil, err
	}
	body, err := p.parseBody(lexer.KwEnd)
	if err != nil {
		return nil, err
	}
	if err := p.closeBlock("function"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewFunctionDefinition(name.Lexeme, params, body), name.Line), nil
}

func (p *Parser) parseReturn(start lexer.Token) (ast.Statement, error) {
	if _, err := p.consume(lexer.KwBack, "Expected 'back' after 'give'"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.TokenPeriod, "Expected '.' after return value"); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewReturnStatement(value), start.Line), nil
}

func (p *Parser) parseForget(start lexer.Token) (ast.Statement, error) {
	name, err := p.consume(lexer.TokenIdentifier, "Expected variable name after 'forget'")
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewForgetStatement(name.Lexeme), start.Line), nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return expr, nil
}

// GUI statements

// isGuiSet looks past `set the` for a GUI property keyword.
func (p *Parser) isGuiSet() bool {
	if p.peekAt(1).Kind != lexer.KwThe {
		return false
	}
	_, ok := guiProperties[p.peekAt(2).Kind]
	return ok
}

func (p *Parser) parseGuiSet() (ast.Statement, error) {
	start := p.advance() // set
	p.advance()          // the
	property := guiProperties[p.advance().Kind]
	if _, err := p.consume(lexer.KwOf, "Expected 'of'"); err != nil {
		return nil, err
	}
	target, err := p.consume(lexer.TokenIdentifier, "Expected widget name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwTo, "Expected 'to'"); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewGuiSet(target.Lexeme, property, value), start.Line), nil
}

func (p *Parser) parseGuiCreate(start lexer.Token) (ast.Statement, error) {
	p.match(lexer.KwA, lexer.KwAn)
	var kind ast.GuiCommandKind
	switch {
	case p.match(lexer.KwWindow):
		kind = ast.GuiCreateWindow
	case p.match(lexer.KwLabel):
		kind = ast.GuiCreateLabel
	case p.match(lexer.KwButton):
		kind = ast.GuiCreateButton
	case p.match(lexer.KwText):
		p.match(lexer.KwInput)
		kind = ast.GuiCreateTextInput
	default:
		return nil, p.errorAtCurrent("Expected 'window', 'label', 'button' or 'text input' after 'create'")
	}
	if _, err := p.consume(lexer.KwCalled, "Expected 'called'"); err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.TokenIdentifier, "Expected widget name")
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewGuiCreate(kind, name.Lexeme), start.Line), nil
}

func (p *Parser) parseGuiShow(start lexer.Token) (ast.Statement, error) {
	name, err := p.consume(lexer.TokenIdentifier, "Expected window name")
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewGuiShow(name.Lexeme), start.Line), nil
}

func (p *Parser) parseGuiPlace(start lexer.Token) (ast.Statement, error) {
	widget, err := p.consume(lexer.TokenIdentifier, "Expected widget name")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwAt, "Expected 'at'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwRow, "Expected 'row'"); err != nil {
		return nil, err
	}
	row, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwAnd, "Expected 'and'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwColumn, "Expected 'column'"); err != nil {
		return nil, err
	}
	column, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.KwIn, "Expected 'in'"); err != nil {
		return nil, err
	}
	window, err := p.consume(lexer.TokenIdentifier, "Expected window name")
	if err != nil {
		return nil, err
	}
	if err := p.terminate(); err != nil {
		return nil, err
	}
	return ast.WithLine(ast.NewGuiPlace(widget.Lexeme, row, column, window.Lexeme), start.Line), nil
}
