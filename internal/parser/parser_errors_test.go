package parser_test

import (
	"strings"
	"testing"

	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/lexer"
	"github.com/tovalang/tova/internal/parser"
	"github.com/tovalang/tova/internal/pipeline"
	"github.com/tovalang/tova/internal/token"
)

// parseWithErrors runs the lexer+parser and returns all diagnostic errors.
func parseWithErrors(input string) []*diagnostics.DiagnosticError {
	ctx := &pipeline.PipelineContext{SourceCode: input}
	lp := &lexer.LexerProcessor{}
	ctx = lp.Process(ctx)
	pp := &parser.ParserProcessor{}
	ctx = pp.Process(ctx)
	return ctx.Errors
}

// expectError asserts at least one error with the given code.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	errs := parseWithErrors(input)
	if len(errs) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range errs {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

// expectNoErrors asserts parsing succeeds without errors.
func expectNoErrors(t *testing.T, input string) {
	t.Helper()
	errs := parseWithErrors(input)
	if len(errs) > 0 {
		var msgs []string
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected no errors, got:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}
}

// countErrors returns how many errors carry the given code.
func countErrors(errs []*diagnostics.DiagnosticError, code diagnostics.ErrorCode) int {
	n := 0
	for _, e := range errs {
		if e.Code == code {
			n++
		}
	}
	return n
}

// ---------------------------------------------------------------------------
// P001 — Unexpected token at the top level
// ---------------------------------------------------------------------------

func TestP001_BareExpressionAtTopLevel(t *testing.T) {
	expectError(t, "42", diagnostics.ErrP001)
}

func TestP001_StrayClosingParen(t *testing.T) {
	expectError(t, ")", diagnostics.ErrP001)
}

func TestP001_RecoversToNextDeclaration(t *testing.T) {
	errs := parseWithErrors("42\nfun f(x: Int) -> Int")
	if countErrors(errs, diagnostics.ErrP001) != 1 {
		t.Fatalf("expected exactly one P001, got: %v", errs)
	}
	if len(errs) != 1 {
		t.Fatalf("recovery leaked extra errors: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// P002 — Expected function name
// ---------------------------------------------------------------------------

func TestP002_MissingFunctionName(t *testing.T) {
	expectError(t, "fun (x: Int) -> Int", diagnostics.ErrP002)
}

func TestP002_NumberAsFunctionName(t *testing.T) {
	expectError(t, "fun 42(x: Int) -> Int", diagnostics.ErrP002)
}

// ---------------------------------------------------------------------------
// P003 — Bad numeric literal
// ---------------------------------------------------------------------------

func TestP003_CorruptIntegerToken(t *testing.T) {
	// The lexer always attaches int64 payloads, so a malformed INT token can
	// only come from a stream built by another producer.
	tokens := []token.Token{
		{Type: token.FUN, Lexeme: "fun", Literal: "fun", Line: 1, Column: 1},
		{Type: token.IDENT_LOWER, Lexeme: "f", Literal: "f", Line: 1, Column: 5},
		{Type: token.LPAREN, Lexeme: "(", Literal: "(", Line: 1, Column: 6},
		{Type: token.IDENT_LOWER, Lexeme: "x", Literal: "x", Line: 1, Column: 7},
		{Type: token.COLON, Lexeme: ":", Literal: ":", Line: 1, Column: 8},
		{Type: token.IDENT_UPPER, Lexeme: "Int", Literal: "Int", Line: 1, Column: 10},
		{Type: token.ASSIGN, Lexeme: "=", Literal: "=", Line: 1, Column: 14},
		{Type: token.INT, Lexeme: "1", Literal: "1", Line: 1, Column: 16},
		{Type: token.RPAREN, Lexeme: ")", Literal: ")", Line: 1, Column: 17},
		{Type: token.EOF, Line: 1, Column: 18},
	}
	ctx := &pipeline.PipelineContext{TokenStream: token.NewStream(tokens)}
	p := parser.New(ctx.TokenStream, ctx)
	p.ParseProgram()
	if countErrors(ctx.Errors, diagnostics.ErrP003) != 1 {
		t.Fatalf("expected one P003, got: %v", ctx.Errors)
	}
}

// ---------------------------------------------------------------------------
// P004 — No way to start an expression here
// ---------------------------------------------------------------------------

func TestP004_DefaultValueMissingExpression(t *testing.T) {
	expectError(t, "fun f(x: Int = ,) -> Int", diagnostics.ErrP004)
}

func TestP004_DefaultValueDanglingOperator(t *testing.T) {
	expectError(t, "fun f(x: Int = 1 + ) -> Int", diagnostics.ErrP004)
}

// ---------------------------------------------------------------------------
// P005 — Expected a specific token
// ---------------------------------------------------------------------------

func TestP005_MissingClosingParen(t *testing.T) {
	expectError(t, "fun f(x: Int", diagnostics.ErrP005)
}

func TestP005_MissingClauseParen(t *testing.T) {
	expectError(t, "fun f x: Int -> Int", diagnostics.ErrP005)
}

func TestP005_HardFailureDropsDeclaration(t *testing.T) {
	input := "fun f(x: Int\nfun g(y: Int) -> Int"
	prog := parseProgram(t, input)
	if len(prog.Declarations) != 1 {
		t.Fatalf("expected only the second declaration to survive, got %d", len(prog.Declarations))
	}
	if prog.Declarations[0].Name.Value != "g" {
		t.Fatalf("surviving declaration is %q, want g", prog.Declarations[0].Name.Value)
	}
}

// ---------------------------------------------------------------------------
// P006 — Naming rules
// ---------------------------------------------------------------------------

func TestP006_UppercaseFunctionName(t *testing.T) {
	errs := parseWithErrors("fun Add(x: Int) -> Int")
	if countErrors(errs, diagnostics.ErrP006) != 1 {
		t.Fatalf("expected one P006, got: %v", errs)
	}
}

func TestP006_UppercaseFunctionNameStillParses(t *testing.T) {
	prog := parseProgram(t, "fun Add(x: Int) -> Int")
	if len(prog.Declarations) != 1 || prog.Declarations[0].Name.Value != "Add" {
		t.Fatalf("declaration with bad name should still be kept: %+v", prog.Declarations)
	}
}

func TestP006_UppercaseParameterName(t *testing.T) {
	expectError(t, "fun f(X: Int) -> Int", diagnostics.ErrP006)
}

func TestP006_RecursionDepthLimit(t *testing.T) {
	// Deeply nested grouping in a default value trips the depth guard once;
	// the enclosing declaration fails without an error cascade.
	input := "fun f(x: Int = " + strings.Repeat("(", 600) + "1" +
		strings.Repeat(")", 600) + ") -> Int"
	errs := parseWithErrors(input)
	if countErrors(errs, diagnostics.ErrP006) != 1 {
		t.Fatalf("expected exactly one depth diagnostic, got: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// P007 — Expected a pattern
// ---------------------------------------------------------------------------

func TestP007_CommaWhereElementExpected(t *testing.T) {
	expectError(t, "fun f(,) -> Int", diagnostics.ErrP007)
}

func TestP007_OperatorWhereElementExpected(t *testing.T) {
	expectError(t, "fun f(+: Int) -> Int", diagnostics.ErrP007)
}

// ---------------------------------------------------------------------------
// P008 — Expected a type
// ---------------------------------------------------------------------------

func TestP008_MissingAnnotation(t *testing.T) {
	expectError(t, "fun f(x: ) -> Int", diagnostics.ErrP008)
}

func TestP008_MissingReturnType(t *testing.T) {
	expectError(t, "fun f(x: Int) ->", diagnostics.ErrP008)
}

// ---------------------------------------------------------------------------
// P009 — Untyped pattern in a signature
// ---------------------------------------------------------------------------

func TestP009_BareParameter(t *testing.T) {
	expectError(t, "fun f(x) -> Int", diagnostics.ErrP009)
}

func TestP009_BareWildcard(t *testing.T) {
	expectError(t, "fun f(_) -> Int", diagnostics.ErrP009)
}

func TestP009_ReportedOncePerClause(t *testing.T) {
	// The first untyped element aborts the clause check, so a clause with two
	// bare parameters still produces a single diagnostic.
	errs := parseWithErrors("fun f(x, y) -> Int")
	if countErrors(errs, diagnostics.ErrP009) != 1 {
		t.Fatalf("expected one P009, got: %v", errs)
	}
}

// ---------------------------------------------------------------------------
// P010 — Redeclared parameter
// ---------------------------------------------------------------------------

func TestP010_DuplicateInOneClause(t *testing.T) {
	expectError(t, "fun f(x: Int, x: String) -> Int", diagnostics.ErrP010)
}

func TestP010_DuplicateAcrossClauses(t *testing.T) {
	// Curried clauses share the declaration scope.
	expectError(t, "fun f(x: Int)(x: String) -> Int", diagnostics.ErrP010)
}

func TestP010_SameNameInSeparateDeclarations(t *testing.T) {
	expectNoErrors(t, "fun f(x: Int) -> Int\nfun g(x: Int) -> Int")
}
