package parser

import (
	"github.com/tovalang/tova/internal/diagnostics"
	"github.com/tovalang/tova/internal/pipeline"
	"github.com/tovalang/tova/internal/token"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		ctx.Errors = append(ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP000,
			token.Token{},
			"parser: token stream is nil",
		))
		return ctx
	}

	p := New(ctx.TokenStream, ctx)
	program := p.ParseProgram()
	program.File = ctx.FilePath
	ctx.AstRoot = program

	// Diagnostics are created without a file; stamp them here so every sink
	// sees a complete location.
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
