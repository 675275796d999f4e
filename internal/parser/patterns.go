package parser

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/token"
)

// parsePattern parses one pattern and an optional type annotation.
// Grammar:
// Pattern ::= PatternAtom (":" Type)?
func (p *Parser) parsePattern() ParseResult[ast.Pattern] {
	pattern := p.parsePatternAtom()
	if pattern.IsParseError() {
		return pattern
	}

	if p.peekTokenIs(token.COLON) {
		p.nextToken() // consume ':'
		p.nextToken() // move to the start of the annotation
		annot := p.parseType()
		if annot == nil {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP008,
				p.curToken,
				"expected a type after ':'",
				p.curToken.Lexeme,
			))
			return parseFailed[ast.Pattern]()
		}

		typed := &ast.TypedPattern{
			Token:      pattern.Value().GetToken(),
			Sub:        pattern.Value(),
			Annotation: annot,
		}
		// A sema failure in the atom stays a sema failure after wrapping.
		if pattern.IsSemaError() {
			return semaFailed[ast.Pattern](typed)
		}
		return parsed[ast.Pattern](typed)
	}

	return pattern
}

// parsePatternAtom parses the part of a pattern that precedes the optional
// type annotation.
// Grammar:
// PatternAtom ::= "_" | identifier | PatternTuple
func (p *Parser) parsePatternAtom() ParseResult[ast.Pattern] {
	switch p.curToken.Type {
	case token.LPAREN:
		return p.parsePatternTuple()

	case token.UNDERSCORE:
		return parsed[ast.Pattern](&ast.WildcardPattern{Token: p.curToken})

	case token.IDENT_LOWER, token.IDENT_UPPER:
		tok := p.curToken
		name := tok.Literal.(string)
		named := &ast.NamedPattern{
			Token: tok,
			Name:  &ast.Identifier{Token: tok, Value: name},
		}

		sym, fresh := p.scope.Declare(name, tok.Line, tok.Column)
		named.Symbol = sym
		if !fresh {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP010,
				tok,
				"parameter '"+name+"' is declared more than once",
			))
			return semaFailed[ast.Pattern](named)
		}
		if tok.Type == token.IDENT_UPPER {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP006,
				tok,
				"Parameter name must start with a lowercase letter",
			))
			return semaFailed[ast.Pattern](named)
		}
		return parsed[ast.Pattern](named)

	default:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP007,
			p.curToken,
			"expected a pattern",
			p.curToken.Lexeme,
		))
		return parseFailed[ast.Pattern]()
	}
}

// parsePatternTuple parses a parenthesized pattern clause. curToken must be
// the opening '('; on success curToken is left on the closing ')'.
// Grammar:
// PatternTuple ::= "(" PatternTupleBody? ")"
// PatternTupleBody ::= PatternTupleElement ("," PatternTupleElement)*
// PatternTupleElement ::= Pattern ("=" Expression)?
//
// A hard failure anywhere inside the parens skips to the closing ')' and
// fails the whole tuple; no partial element list survives. Sema failures are
// recorded, keep their best-effort element and let the loop continue, so one
// pass gathers every diagnostic in the clause.
func (p *Parser) parsePatternTuple() ParseResult[ast.Pattern] {
	lparen := p.curToken

	var elements []ast.TupleElement
	hasSemaError := false

	// Allow a multiline clause: newlines after '(' are insignificant.
	for p.peekTokenIs(token.NEWLINE) {
		p.nextToken()
	}

	if !p.peekTokenIs(token.RPAREN) {
		p.nextToken() // move to the first element
		for {
			pattern := p.parsePattern()
			if pattern.IsParseError() {
				p.skipPastRParen()
				return parseFailed[ast.Pattern]()
			}
			if pattern.IsSemaError() {
				hasSemaError = true
			}

			var def ast.Expression
			if p.peekTokenIs(token.ASSIGN) {
				p.nextToken() // consume '='
				p.nextToken() // move to the default expression
				def = p.parseDefaultExpr()
				if def == nil {
					p.skipPastRParen()
					return parseFailed[ast.Pattern]()
				}
			}

			elements = append(elements, ast.TupleElement{Pattern: pattern.Value(), Default: def})

			for p.peekTokenIs(token.NEWLINE) {
				p.nextToken()
			}
			if !p.peekTokenIs(token.COMMA) {
				break
			}
			p.nextToken() // consume ','
			for p.peekTokenIs(token.NEWLINE) {
				p.nextToken()
			}
			p.nextToken() // move to the next element
		}

		if !p.peekTokenIs(token.RPAREN) {
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP005,
				p.peekToken,
				"expected ')' after tuple pattern elements",
				p.peekToken.Lexeme,
			))
			p.skipPastRParen()
			return parseFailed[ast.Pattern]()
		}
	}
	p.nextToken() // consume ')'

	// A pair of parens wrapping a single anonymous, defaultless pattern is
	// grouping, not a one-element tuple.
	var result ast.Pattern
	if len(elements) == 1 && elements[0].Default == nil && elements[0].Pattern.BoundName() == "" {
		result = &ast.ParenPattern{Token: lparen, Sub: elements[0].Pattern}
	} else {
		result = &ast.TuplePattern{Token: lparen, Elements: elements}
	}

	if hasSemaError {
		return semaFailed[ast.Pattern](result)
	}
	return parsed[ast.Pattern](result)
}
