package backend

import (
	"context"
	"io"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/pipeline"
	"github.com/funvibe/lox/internal/token"
)

// TreeWalkBackend runs programs on the tree-walk interpreter. The global
// frame and resolution table outlive a single run.
type TreeWalkBackend struct {
	globals *evaluator.Environment
	locals  ast.ResolutionMap
	interp  *evaluator.Interpreter
}

// NewTreeWalk creates a backend writing program output to out. A
// maxCallDepth of 0 disables the call depth limit.
func NewTreeWalk(out io.Writer, maxCallDepth int) *TreeWalkBackend {
	globals := evaluator.NewGlobals()
	locals := make(ast.ResolutionMap)
	interp := evaluator.New(globals, locals, out)
	interp.MaxCallDepth = maxCallDepth
	return &TreeWalkBackend{
		globals: globals,
		locals:  locals,
		interp:  interp,
	}
}

// Locals is the session's resolution table. Passing it as the
// ResolutionMap of every PipelineContext saves a copy per run.
func (b *TreeWalkBackend) Locals() ast.ResolutionMap {
	return b.locals
}

func (b *TreeWalkBackend) Globals() *evaluator.Environment {
	return b.globals
}

// Run executes the program using tree-walk interpretation
func (b *TreeWalkBackend) Run(ctx *pipeline.PipelineContext) error {
	if ctx.HasErrors() {
		return ctx.Errors[0]
	}

	// Entries from a context that did not use Locals() still have to
	// reach the interpreter. Resolved nodes are never re-resolved, so
	// merging is safe.
	for expr, depth := range ctx.ResolutionMap {
		b.locals[expr] = depth
	}

	return b.interp.Interpret(ctx.Context, ctx.Statements)
}

// Call invokes a callable bound in the session's globals.
func (b *TreeWalkBackend) Call(ctx context.Context, callee token.Token, fn evaluator.Callable, args []evaluator.Object) (evaluator.Object, error) {
	return b.interp.CallFunction(ctx, callee, fn, args)
}

// Name returns the backend name
func (b *TreeWalkBackend) Name() string {
	return "tree-walk"
}
