package diagnostics

import (
	"testing"

	"github.com/tovalang/tova/internal/token"
)

func TestNewErrorCapturesPosition(t *testing.T) {
	tok := token.Token{Type: token.RPAREN, Lexeme: ")", Line: 4, Column: 12}
	err := NewError(ErrP007, tok, "expected a pattern")

	if err.Code != ErrP007 || err.Line != 4 || err.Column != 12 {
		t.Fatalf("diagnostic lost its position: %+v", err)
	}
	if err.Message != "expected a pattern" {
		t.Fatalf("Message = %q", err.Message)
	}
}

func TestNewErrorAppendsGotClause(t *testing.T) {
	tok := token.Token{Type: token.RPAREN, Lexeme: ")", Line: 1, Column: 1}
	err := NewError(ErrP007, tok, "expected a pattern", ")")

	if err.Message != "expected a pattern (got ')')" {
		t.Fatalf("Message = %q", err.Message)
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &DiagnosticError{Code: ErrP005, Message: "expected ')'", File: "main.tova", Line: 2, Column: 9}
	if got := err.Error(); got != "[P005] main.tova:2:9: expected ')'" {
		t.Fatalf("Error() = %q", got)
	}
}

func TestErrorFormattingWithoutFile(t *testing.T) {
	err := &DiagnosticError{Code: ErrP001, Message: "m", Line: 1, Column: 1}
	if got := err.Error(); got != "[P001] <source>:1:1: m" {
		t.Fatalf("Error() = %q", got)
	}
}
