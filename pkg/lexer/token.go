package lexer

import "fmt"

// TokenKind identifies the lexical category of a token.
type TokenKind int

const (
	TokenInvalid TokenKind = iota
	TokenInteger
	TokenFloat
	TokenString
	TokenIdentifier
	TokenPeriod
	TokenComma
	TokenEOF

	keywordBase
)

var kindNames = map[TokenKind]string{
	TokenInvalid:    "INVALID",
	TokenInteger:    "INTEGER",
	TokenFloat:      "FLOAT",
	TokenString:     "STRING",
	TokenIdentifier: "IDENTIFIER",
	TokenPeriod:     "PERIOD",
	TokenComma:      "COMMA",
	TokenEOF:        "END_OF_FILE",
}

var keywordNames = func() map[TokenKind]string {
	out := make(map[TokenKind]string, len(keywords))
	for word, kind := range keywords {
		out[kind] = word
	}
	return out
}()

func (k TokenKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if word, ok := keywordNames[k]; ok {
		return word
	}
	return fmt.Sprintf("unknown_token_%d", int(k))
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k TokenKind) IsKeyword() bool {
	return k >= keywordBase && k < keywordEnd
}

// LookupKeyword returns the keyword kind for word, or TokenIdentifier.
func LookupKeyword(word string) TokenKind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return TokenIdentifier
}

// Token is a single lexical unit. Line and Column are 1-based and point at
// the token's first character.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @%d:%d", t.Kind, t.Lexeme, t.Line, t.Column)
}
