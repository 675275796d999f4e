package pipeline

import (
	"github.com/google/uuid"

	"github.com/tovalang/tova/internal/ast"
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/token"
)

// Processor is a single pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one compilation unit through the stages. Stages
// read their input fields, fill in their output fields and append
// diagnostics; nothing is ever removed.
type PipelineContext struct {
	// UnitID identifies the compilation unit across stages and diagnostic
	// sinks. Contexts built by hand (tests) may leave it zero.
	UnitID uuid.UUID

	FilePath   string
	SourceCode string

	TokenStream *token.Stream // Set by the lexer stage
	AstRoot     ast.Node      // Set by the parser stage

	Errors []*diagnostics.DiagnosticError
}

// NewContext builds a context for one source file with a fresh unit ID.
func NewContext(filePath, source string) *PipelineContext {
	return &PipelineContext{
		UnitID:     uuid.New(),
		FilePath:   filePath,
		SourceCode: source,
	}
}
