package parser

import (
	"fmt"

	"kaynat/interpreter-go/pkg/ast"
	"kaynat/interpreter-go/pkg/diag"
	"kaynat/interpreter-go/pkg/lexer"
)

// Parser is a recursive-descent parser with one token of lookahead.
type Parser struct {
	tokens  []lexer.Token
	current int
}

// New creates a parser over tokens. A trailing EOF token is appended when
// the slice lacks one.
func New(tokens []lexer.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != lexer.TokenEOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], lexer.Token{Kind: lexer.TokenEOF, Line: line})
	}
	return &Parser{tokens: tokens}
}

// Parse builds a Program from tokens.
func Parse(tokens []lexer.Token) (*ast.Program, error) {
	return New(tokens).ParseProgram()
}

// ParseSource tokenizes and parses src.
func ParseSource(src string) (*ast.Program, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// ParseProgram accepts an optional `begin program.` header and stops before
// a trailing `end program`.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	if p.match(lexer.KwBegin) {
		p.match(lexer.KwProgram)
		p.match(lexer.TokenPeriod)
	}
	var body []ast.Statement
	for !p.isAtEnd() {
		if p.check(lexer.KwEnd) && p.checkNext(lexer.KwProgram) {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	return ast.WithLine(ast.NewProgram(body), 1), nil
}

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekAt(offset int) lexer.Token {
	idx := p.current + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == lexer.TokenEOF
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(kind lexer.TokenKind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) checkNext(kind lexer.TokenKind) bool {
	return p.peekAt(1).Kind == kind
}

func (p *Parser) match(kinds ...lexer.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(kind lexer.TokenKind, message string) (lexer.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAtCurrent(message)
}

func (p *Parser) errorAtCurrent(message string) error {
	return p.errorAt(p.peek(), message)
}

func (p *Parser) errorAt(tok lexer.Token, message string) error {
	return diag.Parse(tok.Line, tok.Column, message)
}

func (p *Parser) unexpected() error {
	tok := p.peek()
	if tok.Kind == lexer.TokenEOF {
		return p.errorAtCurrent("Unexpected end of input")
	}
	return p.errorAtCurrent(fmt.Sprintf("Unexpected token: %s", tok.Lexeme))
}

// terminate consumes the period that ends every statement.
func (p *Parser) terminate() error {
	_, err := p.consume(lexer.TokenPeriod, "Expected '.' at end of statement")
	return err
}

// parseBody reads statements until one of the stop kinds (or EOF) is next.
func (p *Parser) parseBody(stops ...lexer.TokenKind) (*ast.Block, error) {
	line := p.peek().Line
	var body []ast.Statement
	for !p.isAtEnd() {
		stop := false
		for _, kind := range stops {
			if p.check(kind) {
				stop = true
				break
			}
		}
		if stop {
			break
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			body = append(body, stmt)
		}
	}
	return ast.WithLine(ast.NewBlock(body), line), nil
}

// closeBlock consumes `end.` after a block body.
func (p *Parser) closeBlock(what string) error {
	if _, err := p.consume(lexer.KwEnd, fmt.Sprintf("Expected 'end' to close %s", what)); err != nil {
		return err
	}
	_, err := p.consume(lexer.TokenPeriod, "Expected '.' after 'end'")
	return err
}
