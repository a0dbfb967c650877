package resolver

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/pipeline"
)

type ResolverProcessor struct{}

func (rp *ResolverProcessor) Name() string { return "resolver" }

func (rp *ResolverProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.HasErrors() {
		return ctx
	}
	if ctx.ResolutionMap == nil {
		ctx.ResolutionMap = make(ast.ResolutionMap)
	}

	errs := Resolve(ctx.Statements, ctx.ResolutionMap)
	for _, err := range errs {
		err.File = ctx.FilePath
	}
	ctx.Errors = append(ctx.Errors, errs...)
	return ctx
}
