package prettyprinter

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/tovalang/tova/internal/ast"
)

// --- Tree Printer (Output is an indented AST dump) ---

// TreePrinter renders an AST as one node per line, children indented under
// their parent. Structural pattern nodes that carry a resolved type show it
// after the node name.
type TreePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

// Print renders the node and returns the accumulated dump.
func (p *TreePrinter) Print(node ast.Node) string {
	if node != nil {
		node.Accept(p)
	}
	return p.String()
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

func (p *TreePrinter) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("  ")
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *TreePrinter) nested(fn func()) {
	p.indent++
	fn()
	p.indent--
}

// typeSuffix renders a pattern's resolved type for display, or nothing when
// the pattern has not been through the signature check.
func typeSuffix(pat ast.Pattern) string {
	if pat == nil || pat.ResolvedType() == nil {
		return ""
	}
	return " :: " + pat.ResolvedType().String()
}

func (p *TreePrinter) VisitProgram(prog *ast.Program) {
	p.line("Program(%s)", prog.File)
	p.nested(func() {
		for _, decl := range prog.Declarations {
			decl.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitFunctionDeclaration(fd *ast.FunctionDeclaration) {
	name := "<missing>"
	if fd.Name != nil {
		name = fd.Name.Value
	}
	if fd.Type != nil {
		p.line("FunctionDeclaration(%s) :: %s", name, fd.Type.String())
	} else {
		p.line("FunctionDeclaration(%s)", name)
	}
	p.nested(func() {
		for _, clause := range fd.Clauses {
			p.line("Clause")
			p.nested(func() { clause.Accept(p) })
		}
		if fd.ReturnType != nil {
			p.line("ReturnType")
			p.nested(func() { fd.ReturnType.Accept(p) })
		}
	})
}

func (p *TreePrinter) VisitIdentifier(i *ast.Identifier) {
	p.line("Identifier(%s)", i.Value)
}

func (p *TreePrinter) VisitWildcardPattern(pat *ast.WildcardPattern) {
	p.line("WildcardPattern%s", typeSuffix(pat))
}

func (p *TreePrinter) VisitNamedPattern(pat *ast.NamedPattern) {
	p.line("NamedPattern(%s)%s", pat.Name.Value, typeSuffix(pat))
}

func (p *TreePrinter) VisitParenPattern(pat *ast.ParenPattern) {
	p.line("ParenPattern%s", typeSuffix(pat))
	p.nested(func() { pat.Sub.Accept(p) })
}

func (p *TreePrinter) VisitTuplePattern(pat *ast.TuplePattern) {
	p.line("TuplePattern%s", typeSuffix(pat))
	p.nested(func() {
		for _, elt := range pat.Elements {
			elt.Pattern.Accept(p)
			if elt.Default != nil {
				p.line("Default")
				p.nested(func() { elt.Default.Accept(p) })
			}
		}
	})
}

func (p *TreePrinter) VisitTypedPattern(pat *ast.TypedPattern) {
	p.line("TypedPattern%s", typeSuffix(pat))
	p.nested(func() {
		pat.Sub.Accept(p)
		pat.Annotation.Accept(p)
	})
}

func (p *TreePrinter) VisitNamedType(t *ast.NamedType) {
	p.line("NamedType(%s)", t.Name.Value)
}

func (p *TreePrinter) VisitTupleType(t *ast.TupleType) {
	p.line("TupleType")
	p.nested(func() {
		for _, sub := range t.Types {
			sub.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitFunctionType(t *ast.FunctionType) {
	p.line("FunctionType")
	p.nested(func() {
		for _, param := range t.Parameters {
			param.Accept(p)
		}
		p.line("Return")
		p.nested(func() { t.ReturnType.Accept(p) })
	})
}

func (p *TreePrinter) VisitIntegerLiteral(e *ast.IntegerLiteral) {
	p.line("IntegerLiteral(%d)", e.Value)
}

func (p *TreePrinter) VisitFloatLiteral(e *ast.FloatLiteral) {
	p.line("FloatLiteral(%s)", strconv.FormatFloat(e.Value, 'g', -1, 64))
}

func (p *TreePrinter) VisitStringLiteral(e *ast.StringLiteral) {
	p.line("StringLiteral(%q)", e.Value)
}

func (p *TreePrinter) VisitBooleanLiteral(e *ast.BooleanLiteral) {
	p.line("BooleanLiteral(%t)", e.Value)
}

func (p *TreePrinter) VisitTupleLiteral(e *ast.TupleLiteral) {
	p.line("TupleLiteral")
	p.nested(func() {
		for _, elt := range e.Elements {
			elt.Accept(p)
		}
	})
}

func (p *TreePrinter) VisitPrefixExpression(e *ast.PrefixExpression) {
	p.line("PrefixExpression(%s)", e.Operator)
	p.nested(func() { e.Right.Accept(p) })
}

func (p *TreePrinter) VisitInfixExpression(e *ast.InfixExpression) {
	p.line("InfixExpression(%s)", e.Operator)
	p.nested(func() {
		e.Left.Accept(p)
		e.Right.Accept(p)
	})
}

func (p *TreePrinter) VisitCallExpression(e *ast.CallExpression) {
	p.line("CallExpression")
	p.nested(func() {
		e.Function.Accept(p)
		for _, arg := range e.Arguments {
			arg.Accept(p)
		}
	})
}
