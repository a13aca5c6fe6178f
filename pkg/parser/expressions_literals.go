package parser

import (
	"strconv"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/lexer"
)

// parseLiteral consumes a boolean, nothing, number or string token.
func (p *Parser) parseLiteral() (ast.Expression, error) {
	tok := p.advance()
	var expr ast.Expression
	switch tok.Kind {
	case lexer.KwTrue, lexer.KwFalse:
		expr = ast.NewBooleanLiteral(tok.Kind == lexer.KwTrue)
	case lexer.KwNothing:
		expr = ast.NewNothingLiteral()
	case lexer.TokenInteger, lexer.TokenFloat:
		num, err := p.parseNumberLiteral(tok)
		if err != nil {
			return nil, err
		}
		expr = num
	case lexer.TokenString:
		expr = ast.NewStringLiteral(tok.Lexeme)
	default:
		return nil, p.errorAt(tok, "Expected a literal")
	}
	return ast.WithLine(expr, tok.Line), nil
}

// parseNumberLiteral decodes digits with an optional fraction. Integer
// literals must fit in 64 bits; larger values come from big_integer.
func (p *Parser) parseNumberLiteral(tok lexer.Token) (ast.Expression, error) {
	if tok.Lexeme == "" {
		return nil, p.errorAt(tok, "Empty number literal")
	}
	if tok.Kind == lexer.TokenFloat {
		value, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, p.errorAt(tok, "Invalid float literal: "+tok.Lexeme)
		}
		return ast.NewFloatLiteral(value), nil
	}
	value, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, p.errorAt(tok, "Integer literal out of range: "+tok.Lexeme)
	}
	return ast.NewIntegerLiteral(value), nil
}
