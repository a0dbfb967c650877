package evaluator

import (
	"context"
	"io"
	"os"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/token"
)

type Interpreter struct {
	// Context for cancellation. Checked on every call and loop iteration.
	Context context.Context

	Out io.Writer

	// MaxCallDepth bounds nested calls; 0 means unlimited.
	MaxCallDepth int

	globals *Environment
	env     *Environment
	locals  ast.ResolutionMap

	callDepth int
}

// New creates an interpreter over an explicit global frame and resolution
// table. Several interpreters can coexist; a REPL keeps one for the whole
// session.
func New(globals *Environment, locals ast.ResolutionMap, out io.Writer) *Interpreter {
	if globals == nil {
		globals = NewGlobals()
	}
	if locals == nil {
		locals = make(ast.ResolutionMap)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{
		Context:      context.Background(),
		Out:          out,
		MaxCallDepth: config.DefaultMaxCallDepth,
		globals:      globals,
		env:          globals,
		locals:       locals,
	}
}

// NewGlobals returns a global frame holding the native functions.
func NewGlobals() *Environment {
	env := NewEnvironment()
	RegisterBuiltins(env)
	return env
}

func (in *Interpreter) Globals() *Environment {
	return in.globals
}

// Interpret executes stmts in order and stops at the first runtime error,
// which is returned as a *RuntimeError.
func (in *Interpreter) Interpret(ctx context.Context, stmts []ast.Stmt) error {
	if ctx == nil {
		ctx = context.Background()
	}
	in.Context = ctx
	in.env = in.globals
	in.callDepth = 0

	for _, stmt := range stmts {
		if _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// CallFunction calls fn from Go, outside of any statement. Arity is
// checked as for a call written in Lox. A host call has no source
// position, so errors raised before the body runs carry callee, whose
// Line is 0.
func (in *Interpreter) CallFunction(ctx context.Context, callee token.Token, fn Callable, args []Object) (Object, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	in.Context = ctx
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(callee, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return in.call(fn, args, callee)
}

// checkContext turns cancellation into a runtime error at tok.
func (in *Interpreter) checkContext(tok token.Token) error {
	if in.Context == nil {
		return nil
	}
	select {
	case <-in.Context.Done():
		return newRuntimeError(tok, "Execution cancelled.")
	default:
		return nil
	}
}

func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (Object, error) {
	if distance, ok := in.locals[expr]; ok {
		return in.env.GetAt(distance, name.Lexeme), nil
	}
	return in.globals.Get(name)
}
