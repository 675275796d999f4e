package token

type TokenType string

// Token is one lexical unit of a source file. Lexeme is the raw source text;
// Literal holds the decoded value (string for identifiers, int64/float64 for
// numbers).
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{}
	Line    int
	Column  int
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"
	NEWLINE TokenType = "NEWLINE"

	// Identifiers and literals
	IDENT_LOWER TokenType = "IDENT_LOWER" // add, foo
	IDENT_UPPER TokenType = "IDENT_UPPER" // Int, String
	UNDERSCORE  TokenType = "UNDERSCORE"  // _
	INT         TokenType = "INT"
	FLOAT       TokenType = "FLOAT"
	STRING      TokenType = "STRING"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	BANG     TokenType = "!"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "!="
	LT       TokenType = "<"
	GT       TokenType = ">"
	ARROW    TokenType = "->"
	DOT      TokenType = "."

	// Delimiters
	COMMA  TokenType = ","
	COLON  TokenType = ":"
	LPAREN TokenType = "("
	RPAREN TokenType = ")"

	// Keywords
	FUN   TokenType = "FUN"
	TRUE  TokenType = "TRUE"
	FALSE TokenType = "FALSE"
)

var keywords = map[string]TokenType{
	"fun":   FUN,
	"true":  TRUE,
	"false": FALSE,
}

// LookupIdent resolves a lowercase identifier to its keyword token type, or
// IDENT_LOWER if it is not a keyword.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT_LOWER
}
