package ast

import (
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/token"
	"github.com/tovalang/tova/internal/typesystem"
)

// Pattern is a binding pattern in a parameter clause. The variant set is
// closed: Wildcard, Named, Paren, Tuple and Typed. Every consumer that
// switches over patterns must handle all five.
type Pattern interface {
	Node
	patternNode()
	GetToken() token.Token

	// BoundName is the variable name the pattern introduces: the identifier
	// for a named pattern (looked up through a type annotation), empty for
	// everything else. Grouping and tuples never bind a name themselves.
	BoundName() string

	// ResolvedType is the semantic type attached during signature
	// elaboration; nil until the fully-typed check has run.
	ResolvedType() typesystem.Type
	SetResolvedType(t typesystem.Type)
}

// patternBase carries the type slot shared by all pattern variants. The
// fully-typed checker is the only writer; the tree is immutable otherwise.
type patternBase struct {
	resolved typesystem.Type
}

func (pb *patternBase) patternNode()                      {}
func (pb *patternBase) ResolvedType() typesystem.Type     { return pb.resolved }
func (pb *patternBase) SetResolvedType(t typesystem.Type) { pb.resolved = t }

// WildcardPattern matches anything and binds nothing: _
type WildcardPattern struct {
	patternBase
	Token token.Token // The '_' token
}

func (p *WildcardPattern) Accept(v Visitor)     { v.VisitWildcardPattern(p) }
func (p *WildcardPattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *WildcardPattern) BoundName() string    { return "" }
func (p *WildcardPattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// NamedPattern binds one new variable: x
type NamedPattern struct {
	patternBase
	Token  token.Token
	Name   *Identifier
	Symbol *symbols.Symbol // The variable declared into the current scope
}

func (p *NamedPattern) Accept(v Visitor)     { v.VisitNamedPattern(p) }
func (p *NamedPattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *NamedPattern) BoundName() string    { return p.Name.Value }
func (p *NamedPattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// ParenPattern is transparent grouping: (pattern). It never binds a name and
// its resolved type is always a verbatim copy of its sub-pattern's type.
type ParenPattern struct {
	patternBase
	Token token.Token // The '(' token
	Sub   Pattern
}

func (p *ParenPattern) Accept(v Visitor)     { v.VisitParenPattern(p) }
func (p *ParenPattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *ParenPattern) BoundName() string    { return "" }
func (p *ParenPattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// TupleElement is one element of a tuple pattern: a pattern plus an optional
// default value expression. Element order is argument order.
type TupleElement struct {
	Pattern Pattern
	Default Expression // nil when no '=' initializer was given
}

// TuplePattern is an ordered sequence of elements: (x: Int, y: Int = 0).
// A parse of exactly one element with no default and no bound name is
// represented as ParenPattern instead — that case is pure grouping.
type TuplePattern struct {
	patternBase
	Token    token.Token // The '(' token
	Elements []TupleElement
}

func (p *TuplePattern) Accept(v Visitor)     { v.VisitTuplePattern(p) }
func (p *TuplePattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *TuplePattern) BoundName() string    { return "" }
func (p *TuplePattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}

// TypedPattern wraps a pattern with an explicit type annotation: x: Int.
// The annotation is authoritative; the fully-typed check stops here.
type TypedPattern struct {
	patternBase
	Token      token.Token // The sub-pattern's first token
	Sub        Pattern
	Annotation Type
}

func (p *TypedPattern) Accept(v Visitor)     { v.VisitTypedPattern(p) }
func (p *TypedPattern) TokenLiteral() string { return p.Token.Lexeme }
func (p *TypedPattern) BoundName() string    { return p.Sub.BoundName() }
func (p *TypedPattern) GetToken() token.Token {
	if p == nil {
		return token.Token{}
	}
	return p.Token
}
