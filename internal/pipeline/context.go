package pipeline

import (
	"context"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

// PipelineContext carries the state shared by all stages of one run.
type PipelineContext struct {
	// Context cancels execution. It is never nil after NewPipelineContext.
	Context context.Context

	RunID      string
	SourceCode string
	FilePath   string

	TokenStream []token.Token
	Statements  []ast.Stmt

	// ResolutionMap is written by the resolver and read by the backend.
	// A REPL session passes the same map into every run so that closures
	// defined on earlier lines keep their resolved distances.
	ResolutionMap ast.ResolutionMap

	Errors []*diagnostics.DiagnosticError
}

func NewPipelineContext(sourceCode string) *PipelineContext {
	return &PipelineContext{
		Context:       context.Background(),
		SourceCode:    sourceCode,
		ResolutionMap: make(ast.ResolutionMap),
	}
}

// HasErrors reports whether any diagnostic has been recorded so far.
func (ctx *PipelineContext) HasErrors() bool {
	return len(ctx.Errors) > 0
}

// RuntimeError returns the runtime diagnostic of the run, if any.
func (ctx *PipelineContext) RuntimeError() *diagnostics.DiagnosticError {
	for _, err := range ctx.Errors {
		if err.Code.Stage() == diagnostics.StageRuntime {
			return err
		}
	}
	return nil
}
