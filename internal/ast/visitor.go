package ast

// Visitor dispatches over the closed node set. Adding a node type extends
// this interface, so every visitor is forced to handle it at compile time.
type Visitor interface {
	VisitProgram(p *Program)
	VisitFunctionDeclaration(fd *FunctionDeclaration)
	VisitIdentifier(i *Identifier)

	VisitWildcardPattern(p *WildcardPattern)
	VisitNamedPattern(p *NamedPattern)
	VisitParenPattern(p *ParenPattern)
	VisitTuplePattern(p *TuplePattern)
	VisitTypedPattern(p *TypedPattern)

	VisitNamedType(t *NamedType)
	VisitTupleType(t *TupleType)
	VisitFunctionType(t *FunctionType)

	VisitIntegerLiteral(e *IntegerLiteral)
	VisitFloatLiteral(e *FloatLiteral)
	VisitStringLiteral(e *StringLiteral)
	VisitBooleanLiteral(e *BooleanLiteral)
	VisitTupleLiteral(e *TupleLiteral)
	VisitPrefixExpression(e *PrefixExpression)
	VisitInfixExpression(e *InfixExpression)
	VisitCallExpression(e *CallExpression)
}
