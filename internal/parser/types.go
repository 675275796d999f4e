package parser

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/token"
)

// parseType parses a type annotation. Arrows associate to the right, so
// Int -> Int -> Bool is Int -> (Int -> Bool). Returns nil on failure; the
// caller decides how to diagnose and recover.
// Grammar:
// Type ::= AtomicType ("->" Type)?
// AtomicType ::= QualifiedName | "(" (Type ("," Type)*)? ")"
func (p *Parser) parseType() ast.Type {
	t := p.parseAtomicType()
	if t == nil {
		return nil
	}

	if p.peekTokenIs(token.ARROW) {
		p.nextToken() // consume '->'
		p.nextToken() // move to the return type
		retType := p.parseType()
		if retType == nil {
			return nil
		}

		var params []ast.Type
		if tt, ok := t.(*ast.TupleType); ok {
			params = tt.Types
		} else {
			params = []ast.Type{t}
		}

		return &ast.FunctionType{
			Token:      t.GetToken(),
			Parameters: params,
			ReturnType: retType,
		}
	}

	return t
}

func (p *Parser) parseAtomicType() ast.Type {
	if p.curTokenIs(token.LPAREN) {
		startToken := p.curToken

		// Check for empty tuple ()
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
			return &ast.TupleType{Token: startToken, Types: []ast.Type{}}
		}

		p.nextToken() // move past '('
		t := p.parseType()
		if t == nil {
			return nil
		}

		// Comma-separated types form a tuple
		if p.peekTokenIs(token.COMMA) {
			types := []ast.Type{t}
			for p.peekTokenIs(token.COMMA) {
				p.nextToken() // consume ','
				p.nextToken() // move to the next type
				next := p.parseType()
				if next == nil {
					return nil
				}
				types = append(types, next)
			}
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
			return &ast.TupleType{Token: startToken, Types: types}
		}

		if !p.expectPeek(token.RPAREN) {
			return nil
		}
		return t // Grouped type
	}

	if p.curTokenIs(token.IDENT_UPPER) || p.curTokenIs(token.IDENT_LOWER) {
		startToken := p.curToken
		nameVal := p.curToken.Literal.(string)

		// Multi-level qualified names like geo.shapes.Point
		for p.peekTokenIs(token.DOT) {
			p.nextToken() // consume ident
			p.nextToken() // consume dot

			if !p.curTokenIs(token.IDENT_UPPER) && !p.curTokenIs(token.IDENT_LOWER) {
				return nil
			}
			nameVal += "." + p.curToken.Literal.(string)
		}

		return &ast.NamedType{Token: startToken, Name: &ast.Identifier{Token: startToken, Value: nameVal}}
	}

	return nil
}
