package lexer

import (
	"github.com/funvibe/lox/internal/pipeline"
)

type LexerProcessor struct{}

func (lp *LexerProcessor) Name() string { return "lexer" }

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	tokens, errs := Scan(ctx.SourceCode)
	ctx.TokenStream = tokens
	for _, err := range errs {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
