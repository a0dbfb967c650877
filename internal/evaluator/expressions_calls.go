package evaluator

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/token"
)

func (in *Interpreter) evalCallExpression(e *ast.CallExpression) (Object, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Object, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		arg, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Token, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Token, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return in.call(fn, args, e.Token)
}

// call invokes fn with the depth limit and cancellation checks applied.
func (in *Interpreter) call(fn Callable, args []Object, tok token.Token) (Object, error) {
	if err := in.checkContext(tok); err != nil {
		return nil, err
	}

	in.callDepth++
	defer func() { in.callDepth-- }()
	if in.MaxCallDepth > 0 && in.callDepth > in.MaxCallDepth {
		return nil, newRuntimeError(tok, "Stack overflow.")
	}

	result, err := fn.Call(in, args)
	if err != nil {
		if _, native := fn.(*Builtin); native {
			if _, ok := err.(*RuntimeError); !ok {
				// Errors from Go code surface at the call site.
				return nil, newRuntimeError(tok, "%s", err.Error())
			}
		}
		return nil, err
	}
	return result, nil
}
