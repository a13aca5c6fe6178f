package lexer

import (
	"fmt"
	"strings"

	"kaynat/interpreter-go/pkg/diag"
)

// Lexer scans Kaynat++ source with a single forward cursor.
type Lexer struct {
	src    []rune
	cur    int
	line   int
	column int
	tokens []Token
}

// New prepares a lexer over source.
func New(source string) *Lexer {
	return &Lexer{src: []rune(source), line: 1, column: 1}
}

// Tokenize scans source into tokens terminated by TokenEOF. The first error
// aborts scanning and no tokens are returned.
func Tokenize(source string) ([]Token, error) {
	return New(source).Scan()
}

// Scan runs the lexer to completion.
func (l *Lexer) Scan() ([]Token, error) {
	for {
		l.skipWhitespace()
		if l.isAtEnd() {
			break
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.tokens = append(l.tokens, Token{Kind: TokenEOF, Line: l.line, Column: l.column})
	return l.tokens, nil
}

func (l *Lexer) isAtEnd() bool { return l.cur >= len(l.src) }

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	return l.src[l.cur]
}

func (l *Lexer) peekNext() rune {
	if l.cur+1 >= len(l.src) {
		return 0
	}
	return l.src[l.cur+1]
}

func (l *Lexer) advance() rune {
	r := l.src[l.cur]
	l.cur++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peek() {
		case ' ', '\t', '\r', '\n':
			l.advance()
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() error {
	line, column := l.line, l.column
	r := l.peek()
	switch {
	case r == '.':
		l.advance()
		l.emit(TokenPeriod, ".", line, column)
	case r == ',':
		l.advance()
		l.emit(TokenComma, ",", line, column)
	case r == '"':
		text, err := l.scanString(line, column)
		if err != nil {
			return err
		}
		l.emit(TokenString, text, line, column)
	case isDigit(r):
		kind, text := l.scanNumber()
		l.emit(kind, text, line, column)
	case isIdentStart(r):
		word := l.scanIdentifier()
		l.emit(LookupKeyword(word), word, line, column)
	default:
		return diag.Lex(line, column, fmt.Sprintf("Unexpected character '%c'", r))
	}
	return nil
}

func (l *Lexer) emit(kind TokenKind, lexeme string, line, column int) {
	l.tokens = append(l.tokens, Token{Kind: kind, Lexeme: lexeme, Line: line, Column: column})
}

func (l *Lexer) scanString(line, column int) (string, error) {
	l.advance() // opening quote
	var b strings.Builder
	for {
		if l.isAtEnd() {
			return "", diag.Lex(line, column, "Unterminated string literal")
		}
		r := l.advance()
		if r == '"' {
			return b.String(), nil
		}
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		if l.isAtEnd() {
			return "", diag.Lex(line, column, "Unterminated string literal")
		}
		esc := l.advance()
		switch esc {
		case 'n':
			b.WriteRune('\n')
		case 't':
			b.WriteRune('\t')
		case 'r':
			b.WriteRune('\r')
		case '\\':
			b.WriteRune('\\')
		case '"':
			b.WriteRune('"')
		default:
			b.WriteRune('\\')
			b.WriteRune(esc)
		}
	}
}

// scanNumber leaves a '.' that is not followed by a digit for the statement
// terminator, so "5." is INTEGER then PERIOD.
func (l *Lexer) scanNumber() (TokenKind, string) {
	start := l.cur
	for isDigit(l.peek()) {
		l.advance()
	}
	kind := TokenInteger
	if l.peek() == '.' && isDigit(l.peekNext()) {
		kind = TokenFloat
		l.advance()
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	return kind, string(l.src[start:l.cur])
}

func (l *Lexer) scanIdentifier() string {
	start := l.cur
	for isIdentPart(l.peek()) {
		l.advance()
	}
	return string(l.src[start:l.cur])
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isIdentStart(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}

func isIdentPart(r rune) bool { return isIdentStart(r) || isDigit(r) }
