package parser

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/token"
	"github.com/tovalang/tova/internal/typesystem"
)

// parseFunctionSignature parses the curried parameter clauses and the
// optional return type, then folds them into the declaration's signature
// type. curToken must be the '(' opening the first clause; on success
// curToken is left on the last token of the signature. Returns false on a
// hard failure.
func (p *Parser) parseFunctionSignature(decl *ast.FunctionDeclaration) bool {
	// Parse curried clauses as long as another '(' follows. A hard failure
	// in any clause gives up on the whole signature; a sema failure keeps
	// its degraded clause so later clauses still get parsed and checked.
	for {
		clause := p.parsePatternTuple()
		if clause.IsParseError() {
			return false
		}
		decl.Clauses = append(decl.Clauses, clause.Value())

		if !p.peekTokenIs(token.LPAREN) {
			break
		}
		p.nextToken()
	}

	// Trailing '-> type' clause; an absent arrow means the function returns
	// the empty tuple.
	var result typesystem.Type
	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume '->'
		p.nextToken() // move to the return type
		ret := p.parseType()
		if ret == nil {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP008,
				p.curToken,
				"expected a return type after '->'",
				p.curToken.Lexeme,
			))
			return false
		}
		decl.ReturnType = ret
		result = p.buildType(ret)
	} else {
		result = typesystem.Unit()
	}

	// Fold clauses right to left into a curried function type. Every clause
	// must be fully typed; a clause that is not has already produced its
	// diagnostics, so it degrades to the unit type and the fold carries on —
	// downstream stages always receive a structurally complete signature.
	for i := len(decl.Clauses); i != 0; i-- {
		clause := decl.Clauses[i-1]

		var paramType typesystem.Type
		if p.checkFullyTyped(clause) {
			paramType = clause.ResolvedType()
		} else {
			paramType = typesystem.Unit()
		}
		result = typesystem.TArrow{Param: paramType, Result: result}
	}

	decl.Type = result
	return true
}
