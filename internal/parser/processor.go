package parser

import (
	"github.com/funvibe/lox/internal/pipeline"
)

type ParserProcessor struct{}

func (pp *ParserProcessor) Name() string { return "parser" }

// Process parses ctx.TokenStream. It does nothing when an earlier stage
// reported errors.
func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasErrors() {
		return ctx
	}

	stmts, errs := Parse(ctx.TokenStream)
	ctx.Statements = stmts

	// Ensure all errors have file path set
	for _, err := range errs {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
