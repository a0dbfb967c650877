package backend

import (
	"errors"

	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/pipeline"
	"github.com/funvibe/lox/internal/token"
)

// ExecutionProcessor implements pipeline.Processor to run a Backend
type ExecutionProcessor struct {
	Backend Backend
}

// NewExecutionProcessor creates a new pipeline step for the given backend
func NewExecutionProcessor(b Backend) *ExecutionProcessor {
	return &ExecutionProcessor{Backend: b}
}

func (p *ExecutionProcessor) Name() string { return "execute" }

func (p *ExecutionProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	// If previous steps failed, don't run execution
	if ctx.HasErrors() {
		return ctx
	}

	if err := p.Backend.Run(ctx); err != nil {
		diag := toDiagnostic(err)
		diag.File = ctx.FilePath
		ctx.Errors = append(ctx.Errors, diag)
	}
	return ctx
}

func toDiagnostic(err error) *diagnostics.DiagnosticError {
	var rte *evaluator.RuntimeError
	if errors.As(err, &rte) {
		return diagnostics.NewError(diagnostics.ErrR001, rte.Token, "%s", rte.Message)
	}
	var diag *diagnostics.DiagnosticError
	if errors.As(err, &diag) {
		return diag
	}
	return diagnostics.NewError(diagnostics.ErrR001, token.Token{}, "%s", err.Error())
}
