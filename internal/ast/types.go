package ast

import "github.com/tovalang/tova/internal/token"

// --- Type System Nodes ---

// Type represents a type annotation node in the AST.
// E.g., Int, geo.Point, (Int, Bool), Int -> Bool
type Type interface {
	Node
	typeNode()
	GetToken() token.Token
}

// NamedType represents a simple named type like 'Int' or a qualified name
// like 'geo.Point'.
type NamedType struct {
	Token token.Token // The type's first token
	Name  *Identifier // Qualified names are joined with dots in Value
}

func (nt *NamedType) Accept(v Visitor)      { v.VisitNamedType(nt) }
func (nt *NamedType) typeNode()             {}
func (nt *NamedType) TokenLiteral() string  { return nt.Token.Lexeme }
func (nt *NamedType) GetToken() token.Token { return nt.Token }

// TupleType represents a tuple type, e.g. (Int, Bool). The empty tuple ()
// is the unit type.
type TupleType struct {
	Token token.Token // The '(' token
	Types []Type
}

func (tt *TupleType) Accept(v Visitor)      { v.VisitTupleType(tt) }
func (tt *TupleType) typeNode()             {}
func (tt *TupleType) TokenLiteral() string  { return tt.Token.Lexeme }
func (tt *TupleType) GetToken() token.Token { return tt.Token }

// FunctionType represents a function type, e.g. Int -> Int or
// (Int, Int) -> Bool. Arrows associate to the right.
type FunctionType struct {
	Token      token.Token // The first parameter type's token
	Parameters []Type      // Single type, or the elements of a TupleType
	ReturnType Type
}

func (ft *FunctionType) Accept(v Visitor)      { v.VisitFunctionType(ft) }
func (ft *FunctionType) typeNode()             {}
func (ft *FunctionType) TokenLiteral() string  { return ft.Token.Lexeme }
func (ft *FunctionType) GetToken() token.Token { return ft.Token }
