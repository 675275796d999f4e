package parser

import (
	"fmt"

	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/typesystem"
)

// checkFullyTyped reports whether every leaf of the pattern is covered by an
// explicit type annotation, attaching synthesized types to structural nodes
// on the way back up. The pass is idempotent: annotations are lowered
// deterministically and structural types are recomputed from already-resolved
// children, so re-running it reproduces identical types.
func (p *Parser) checkFullyTyped(pattern ast.Pattern) bool {
	switch pat := pattern.(type) {
	// An explicit annotation is authoritative; no need to look deeper.
	case *ast.TypedPattern:
		pat.SetResolvedType(p.buildType(pat.Annotation))
		return true

	// Grouping is transparent: the type is the sub-pattern's, verbatim.
	case *ast.ParenPattern:
		if !p.checkFullyTyped(pat.Sub) {
			return false
		}
		pat.SetResolvedType(pat.Sub.ResolvedType())
		return true

	// Tuple types are built up from their components, in declaration order.
	// The first untyped element aborts the whole tuple; no partial tuple
	// type is ever synthesized.
	case *ast.TuplePattern:
		elts := make([]typesystem.TupleElement, 0, len(pat.Elements))
		for _, elt := range pat.Elements {
			if !p.checkFullyTyped(elt.Pattern) {
				return false
			}
			elts = append(elts, typesystem.TupleElement{
				Type:       elt.Pattern.ResolvedType(),
				Name:       elt.Pattern.BoundName(),
				HasDefault: elt.Default != nil,
			})
		}
		// A one-element tuple with no default is just its element's type:
		// fun f(x: Int) has type Int -> ..., not a one-tuple.
		if len(elts) == 1 && !elts[0].HasDefault {
			pat.SetResolvedType(elts[0].Type)
		} else {
			pat.SetResolvedType(typesystem.TTuple{Elements: elts})
		}
		return true

	// A bare leaf has nothing to infer from in a signature context.
	case *ast.NamedPattern, *ast.WildcardPattern:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP009,
			pattern.GetToken(),
			"pattern requires an explicit type in this context",
		))
		return false
	}

	panic(fmt.Sprintf("parser: unhandled pattern kind %T", pattern))
}

// buildType lowers a syntactic type annotation to a semantic type. The
// lowering is purely structural, so identical annotations always produce
// structurally identical types.
func (p *Parser) buildType(t ast.Type) typesystem.Type {
	switch tt := t.(type) {
	case *ast.NamedType:
		return typesystem.TCon{Name: tt.Name.Value}

	case *ast.TupleType:
		elts := make([]typesystem.TupleElement, 0, len(tt.Types))
		for _, sub := range tt.Types {
			elts = append(elts, typesystem.TupleElement{Type: p.buildType(sub)})
		}
		return typesystem.TTuple{Elements: elts}

	case *ast.FunctionType:
		var param typesystem.Type
		if len(tt.Parameters) == 1 {
			param = p.buildType(tt.Parameters[0])
		} else {
			elts := make([]typesystem.TupleElement, 0, len(tt.Parameters))
			for _, sub := range tt.Parameters {
				elts = append(elts, typesystem.TupleElement{Type: p.buildType(sub)})
			}
			param = typesystem.TTuple{Elements: elts}
		}
		return typesystem.TArrow{Param: param, Result: p.buildType(tt.ReturnType)}
	}

	panic(fmt.Sprintf("parser: unhandled type annotation kind %T", t))
}
