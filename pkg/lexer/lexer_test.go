package lexer

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"kaynat/interpreter-go/pkg/diag"
)

type kindLexeme struct {
	Kind   TokenKind
	Lexeme string
}

func stripPositions(tokens []Token) []kindLexeme {
	out := make([]kindLexeme, len(tokens))
	for i, tok := range tokens {
		out[i] = kindLexeme{tok.Kind, tok.Lexeme}
	}
	return out
}

func TestTokenizeAssignment(t *testing.T) {
	tokens, err := Tokenize("set x to 5.")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []Token{
		{Kind: KwSet, Lexeme: "set", Line: 1, Column: 1},
		{Kind: TokenIdentifier, Lexeme: "x", Line: 1, Column: 5},
		{Kind: KwTo, Lexeme: "to", Line: 1, Column: 7},
		{Kind: TokenInteger, Lexeme: "5", Line: 1, Column: 10},
		{Kind: TokenPeriod, Lexeme: ".", Line: 1, Column: 11},
		{Kind: TokenEOF, Line: 1, Column: 12},
	}
	if diff := cmp.Diff(want, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeNumbers(t *testing.T) {
	tokens, err := Tokenize("3.14 5. 7,8")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []kindLexeme{
		{TokenFloat, "3.14"},
		{TokenInteger, "5"},
		{TokenPeriod, "."},
		{TokenInteger, "7"},
		{TokenComma, ","},
		{TokenInteger, "8"},
		{TokenEOF, ""},
	}
	if diff := cmp.Diff(want, stripPositions(tokens)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	tokens, err := Tokenize(`"a\nb\t\"q\" \\ \x"`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if tokens[0].Kind != TokenString {
		t.Fatalf("kind = %s", tokens[0].Kind)
	}
	if want := "a\nb\t\"q\" \\ \\x"; tokens[0].Lexeme != want {
		t.Fatalf("lexeme = %q, want %q", tokens[0].Lexeme, want)
	}
}

func TestTokenizeKeywordsAreCaseSensitive(t *testing.T) {
	tokens, err := Tokenize("Say say SAY")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	want := []TokenKind{TokenIdentifier, KwSay, TokenIdentifier, TokenEOF}
	got := make([]TokenKind, len(tokens))
	for i, tok := range tokens {
		got[i] = tok.Kind
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeTracksLines(t *testing.T) {
	tokens, err := Tokenize("say 1.\n  say 2.")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	second := tokens[3]
	if second.Kind != KwSay || second.Line != 2 || second.Column != 3 {
		t.Fatalf("unexpected second say token %v", second)
	}
}

func TestTokenizeErrors(t *testing.T) {
	cases := []struct {
		src     string
		message string
		line    int
		column  int
	}{
		{"set x to 5 @", "Unexpected character '@'", 1, 12},
		{"say \"open", "Unterminated string literal", 1, 5},
		{"say 1.\nsay #", "Unexpected character '#'", 2, 5},
	}
	for _, tc := range cases {
		_, err := Tokenize(tc.src)
		var de *diag.Error
		if !errors.As(err, &de) {
			t.Fatalf("%q: expected diag error, got %v", tc.src, err)
		}
		if de.Kind != diag.KindLex || de.Message != tc.message || de.Line != tc.line || de.Column != tc.column {
			t.Fatalf("%q: got %+v", tc.src, de)
		}
	}
}

func TestTokenizeRoundTrip(t *testing.T) {
	src := `begin program.
note a comment here.
set greeting to "hi there".
always limit to 10.
if greeting is equal to "hi" then.
  say greeting, 2.5, limit.
end.
end program.`
	first, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	var b strings.Builder
	for _, tok := range first {
		switch tok.Kind {
		case TokenEOF:
		case TokenString:
			b.WriteString(`"` + strings.ReplaceAll(tok.Lexeme, `"`, `\"`) + `" `)
		default:
			b.WriteString(tok.Lexeme + " ")
		}
	}
	second, err := Tokenize(b.String())
	if err != nil {
		t.Fatalf("re-tokenize: %v", err)
	}
	if diff := cmp.Diff(stripPositions(first), stripPositions(second)); diff != "" {
		t.Errorf("round trip mismatch (-first +second):\n%s", diff)
	}
}

func TestTokenKindString(t *testing.T) {
	if KwGreater.String() != "greater" {
		t.Fatalf("KwGreater = %q", KwGreater.String())
	}
	if TokenEOF.String() != "END_OF_FILE" {
		t.Fatalf("TokenEOF = %q", TokenEOF.String())
	}
	if !KwColumn.IsKeyword() || TokenIdentifier.IsKeyword() {
		t.Fatalf("IsKeyword misclassified")
	}
}
