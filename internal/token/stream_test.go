package token

import "testing"

func TestStream_NextConsumesInOrder(t *testing.T) {
	tokens := []Token{
		{Type: FUN, Lexeme: "fun"},
		{Type: IDENT_LOWER, Lexeme: "f"},
		{Type: EOF},
	}
	s := NewStream(tokens)

	for i, want := range tokens {
		got := s.Next()
		if got.Type != want.Type {
			t.Fatalf("token %d: got %q, want %q", i, got.Type, want.Type)
		}
	}
}

func TestStream_ReadsPastEndReturnEOF(t *testing.T) {
	s := NewStream([]Token{{Type: FUN, Lexeme: "fun"}, {Type: EOF, Line: 3, Column: 7}})
	s.Next()
	s.Next()

	for i := 0; i < 3; i++ {
		tok := s.Next()
		if tok.Type != EOF {
			t.Fatalf("read %d past end: got %q, want EOF", i, tok.Type)
		}
		if tok.Line != 3 || tok.Column != 7 {
			t.Fatalf("EOF padding lost its position: %d:%d", tok.Line, tok.Column)
		}
	}
}

func TestStream_PeekDoesNotConsume(t *testing.T) {
	s := NewStream([]Token{
		{Type: FUN, Lexeme: "fun"},
		{Type: IDENT_LOWER, Lexeme: "f"},
		{Type: EOF},
	})

	ahead := s.Peek(2)
	if len(ahead) != 2 || ahead[0].Type != FUN || ahead[1].Type != IDENT_LOWER {
		t.Fatalf("Peek(2) returned %v", ahead)
	}
	if got := s.Next(); got.Type != FUN {
		t.Fatalf("Peek consumed the stream: next is %q", got.Type)
	}
}

func TestStream_PeekClampsAtEnd(t *testing.T) {
	s := NewStream([]Token{{Type: EOF}})
	if got := len(s.Peek(5)); got != 1 {
		t.Fatalf("Peek(5) on a 1-token stream returned %d tokens", got)
	}
}

func TestLookupIdent(t *testing.T) {
	tests := map[string]TokenType{
		"fun":   FUN,
		"true":  TRUE,
		"false": FALSE,
		"x":     IDENT_LOWER,
		"point": IDENT_LOWER,
	}
	for ident, want := range tests {
		if got := LookupIdent(ident); got != want {
			t.Fatalf("LookupIdent(%q) = %q, want %q", ident, got, want)
		}
	}
}
