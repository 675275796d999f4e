package lexer

import (
	"testing"

	"github.com/tovalang/tova/internal/token"
)

func TestNextToken_SignatureDeclaration(t *testing.T) {
	input := "fun add(x: Int, y: Int) -> Int\n"

	tests := []struct {
		expectedType   token.TokenType
		expectedLexeme string
	}{
		{token.FUN, "fun"},
		{token.IDENT_LOWER, "add"},
		{token.LPAREN, "("},
		{token.IDENT_LOWER, "x"},
		{token.COLON, ":"},
		{token.IDENT_UPPER, "Int"},
		{token.COMMA, ","},
		{token.IDENT_LOWER, "y"},
		{token.COLON, ":"},
		{token.IDENT_UPPER, "Int"},
		{token.RPAREN, ")"},
		{token.ARROW, "->"},
		{token.IDENT_UPPER, "Int"},
		{token.NEWLINE, "\n"},
		{token.EOF, ""},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong type. expected=%q, got=%q (%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - wrong lexeme. expected=%q, got=%q",
				i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestNextToken_CurriedAndDefaults(t *testing.T) {
	input := "fun f(x: Int = 0)(_: geo.Point) -> Bool"

	expected := []token.TokenType{
		token.FUN, token.IDENT_LOWER, token.LPAREN, token.IDENT_LOWER,
		token.COLON, token.IDENT_UPPER, token.ASSIGN, token.INT, token.RPAREN,
		token.LPAREN, token.UNDERSCORE, token.COLON, token.IDENT_LOWER,
		token.DOT, token.IDENT_UPPER, token.RPAREN, token.ARROW,
		token.IDENT_UPPER, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token[%d] - expected=%q, got=%q (%q)", i, want, tok.Type, tok.Lexeme)
		}
	}
}

func TestNextToken_Operators(t *testing.T) {
	input := "= == != < > + - * / !"

	expected := []token.TokenType{
		token.ASSIGN, token.EQ, token.NOT_EQ, token.LT, token.GT,
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.BANG,
		token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token[%d] - expected=%q, got=%q (%q)", i, want, tok.Type, tok.Lexeme)
		}
	}
}

func TestNextToken_NumericLiterals(t *testing.T) {
	l := New("42 3.14")

	intTok := l.NextToken()
	if intTok.Type != token.INT {
		t.Fatalf("expected INT, got %q", intTok.Type)
	}
	if intTok.Literal.(int64) != 42 {
		t.Fatalf("expected int64 payload 42, got %v", intTok.Literal)
	}

	floatTok := l.NextToken()
	if floatTok.Type != token.FLOAT {
		t.Fatalf("expected FLOAT, got %q", floatTok.Type)
	}
	if floatTok.Literal.(float64) != 3.14 {
		t.Fatalf("expected float64 payload 3.14, got %v", floatTok.Literal)
	}
}

func TestNextToken_IntegerOverflowIsIllegal(t *testing.T) {
	l := New("99999999999999999999")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for out-of-range integer, got %q", tok.Type)
	}
}

func TestNextToken_StringEscapes(t *testing.T) {
	l := New(`"a\tb\n"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %q", tok.Type)
	}
	if tok.Literal.(string) != "a\tb\n" {
		t.Fatalf("escapes not decoded: %q", tok.Literal)
	}
}

func TestNextToken_UnterminatedString(t *testing.T) {
	l := New("\"oops\n")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated string, got %q", tok.Type)
	}
}

func TestNextToken_Comments(t *testing.T) {
	input := "fun // trailing comment\n/* block\ncomment */ f"

	expected := []token.TokenType{
		token.FUN, token.NEWLINE, token.IDENT_LOWER, token.EOF,
	}

	l := New(input)
	for i, want := range expected {
		tok := l.NextToken()
		if tok.Type != want {
			t.Fatalf("token[%d] - expected=%q, got=%q (%q)", i, want, tok.Type, tok.Lexeme)
		}
	}
}

func TestNextToken_LineAndColumnTracking(t *testing.T) {
	l := New("fun f\nfun g")

	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}

	// "g" is on line 2, column 5.
	g := tokens[len(tokens)-2]
	if g.Lexeme != "g" {
		t.Fatalf("expected token g, got %q", g.Lexeme)
	}
	if g.Line != 2 || g.Column != 5 {
		t.Fatalf("position of g is %d:%d, want 2:5", g.Line, g.Column)
	}
}
