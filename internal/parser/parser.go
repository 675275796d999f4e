package parser

import (
	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/pipeline"
	"github.com/tovalang/tova/internal/symbols"
	"github.com/tovalang/tova/internal/token"
)

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	// scope is the innermost declaration context. Named patterns declare
	// their variable here as they are parsed.
	scope *symbols.Scope

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth               int
	inRecursionRecovery bool
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{
		stream: stream,
		ctx:    ctx,
		scope:  symbols.NewScope(nil),
	}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT_LOWER, p.parseIdentifier)
	p.registerPrefix(token.IDENT_UPPER, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(token.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixExpression)
	p.registerPrefix(token.BANG, p.parsePrefixExpression)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	p.registerInfix(token.PLUS, p.parseInfixExpression)
	p.registerInfix(token.MINUS, p.parseInfixExpression)
	p.registerInfix(token.ASTERISK, p.parseInfixExpression)
	p.registerInfix(token.SLASH, p.parseInfixExpression)
	p.registerInfix(token.EQ, p.parseInfixExpression)
	p.registerInfix(token.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(token.LT, p.parseInfixExpression)
	p.registerInfix(token.GT, p.parseInfixExpression)
	p.registerInfix(token.LPAREN, p.parseCallExpression)

	// Read two tokens so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tokenType token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType token.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances onto the peek token when it has the expected type;
// otherwise it reports a diagnostic and stays put.
func (p *Parser) expectPeek(t token.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP005,
		p.peekToken,
		"expected next token to be "+string(t),
		p.peekToken.Lexeme,
	))
}

func (p *Parser) pushScope() {
	p.scope = symbols.NewScope(p.scope)
}

func (p *Parser) popScope() {
	p.scope = p.scope.Outer()
}

// skipPastRParen abandons the current parenthesized construct, consuming
// tokens up to and including the next ')'. Newlines and EOF act as a safety
// boundary so a missing paren cannot swallow the rest of the file.
func (p *Parser) skipPastRParen() {
	for !p.curTokenIs(token.RPAREN) &&
		!p.curTokenIs(token.NEWLINE) &&
		!p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// skipToStatementBoundary consumes tokens until the next newline or EOF.
func (p *Parser) skipToStatementBoundary() {
	for !p.curTokenIs(token.NEWLINE) && !p.curTokenIs(token.EOF) {
		p.nextToken()
	}
}

// ParseProgram parses a file: a newline-separated list of function signature
// declarations. Parsing continues past failed declarations so one run
// reports as many diagnostics as possible.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		switch {
		case p.curTokenIs(token.NEWLINE):
			p.nextToken()
		case p.curTokenIs(token.FUN):
			decl := p.parseFunctionDeclaration()
			if decl != nil {
				program.Declarations = append(program.Declarations, decl)
				p.nextToken()
			} else {
				p.skipToStatementBoundary()
			}
		default:
			p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
				diagnostics.ErrP001,
				p.curToken,
				"expected a function declaration",
				p.curToken.Lexeme,
			))
			p.skipToStatementBoundary()
		}
	}

	return program
}

// parseFunctionDeclaration parses 'fun' name clause+ ['->' type], leaving
// curToken on the last token of the signature.
func (p *Parser) parseFunctionDeclaration() *ast.FunctionDeclaration {
	decl := &ast.FunctionDeclaration{Token: p.curToken}

	if p.peekTokenIs(token.IDENT_LOWER) {
		p.nextToken()
		decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
	} else if p.peekTokenIs(token.IDENT_UPPER) {
		p.nextToken()
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP006,
			p.curToken,
			"Function name must start with a lowercase letter",
		))
		decl.Name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
	} else {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.peekToken,
			"expected function name",
			p.peekToken.Lexeme,
		))
		return nil
	}

	if !p.expectPeek(token.LPAREN) {
		return nil
	}

	// Parameters live in their own scope, shared across curried clauses.
	p.pushScope()
	defer p.popScope()

	if !p.parseFunctionSignature(decl) {
		return nil
	}
	return decl
}
