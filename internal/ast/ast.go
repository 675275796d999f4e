package ast

import (
	"github.com/tovalang/tova/internal/token"
	"github.com/tovalang/tova/internal/typesystem"
)

// TokenProvider is an interface for any AST node that can provide its primary
// token. This is useful for error reporting.
type TokenProvider interface {
	GetToken() token.Token
}

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	Accept(v Visitor)
}

// Statement is a Node that represents a statement.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST our parser produces.
type Program struct {
	File         string // Source file path
	Declarations []*FunctionDeclaration
}

func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
func (p *Program) TokenLiteral() string {
	if len(p.Declarations) > 0 {
		return p.Declarations[0].TokenLiteral()
	}
	return ""
}

// FunctionDeclaration represents a function signature declaration.
// fun name(x: Int, y: Int) -> Int
// fun curried(x: Int)(y: String) -> Bool
type FunctionDeclaration struct {
	Token      token.Token // The 'fun' token
	Name       *Identifier
	Clauses    []Pattern // One pattern per parenthesized parameter clause
	ReturnType Type      // Optional; nil when the '->' clause is absent

	// Type is the curried signature type, attached during elaboration.
	// Failed clauses are degraded to the unit type there, so Type is always
	// usable once the declaration parses.
	Type typesystem.Type
}

func (fd *FunctionDeclaration) Accept(v Visitor)     { v.VisitFunctionDeclaration(fd) }
func (fd *FunctionDeclaration) statementNode()       {}
func (fd *FunctionDeclaration) TokenLiteral() string { return fd.Token.Lexeme }
func (fd *FunctionDeclaration) GetToken() token.Token {
	if fd == nil {
		return token.Token{}
	}
	return fd.Token
}

// Identifier represents an identifier, e.g., a parameter or function name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) Accept(v Visitor)     { v.VisitIdentifier(i) }
func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token {
	if i == nil {
		return token.Token{}
	}
	return i.Token
}
