// Package lox embeds the Lox interpreter in Go programs. Go functions
// bound with Bind become native functions; plain values become globals.
//
//	in := lox.New(os.Stdout)
//	in.Bind("double", func(x int) int { return x * 2 })
//	err := in.Eval(ctx, `print double(21);`)
package lox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/oarkflow/log"

	"github.com/funvibe/lox/internal/backend"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/evaluator"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/pipeline"
	"github.com/funvibe/lox/internal/resolver"
	"github.com/funvibe/lox/internal/token"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Interpreter is one Lox session. Globals defined by Eval, Bind and Set
// persist until the Interpreter is dropped. It is not safe for
// concurrent use.
type Interpreter struct {
	backend    *backend.TreeWalkBackend
	marshaller *Marshaller
	logger     *log.Logger
}

// New creates an interpreter printing to out, or to stdout when out is nil.
func New(out io.Writer) *Interpreter {
	if out == nil {
		out = os.Stdout
	}
	return &Interpreter{
		backend:    backend.NewTreeWalk(out, config.DefaultMaxCallDepth),
		marshaller: NewMarshaller(),
	}
}

// SetLogger enables per-stage debug logging of Eval.
func (i *Interpreter) SetLogger(logger *log.Logger) {
	i.logger = logger
}

// Bind makes val available to scripts under name. Functions become
// natives with one parameter per Go argument; a trailing error result
// turns into a runtime error at the call site. Other values go through
// Set.
func (i *Interpreter) Bind(name string, val interface{}) error {
	fn := reflect.ValueOf(val)
	if fn.Kind() != reflect.Func {
		return i.Set(name, val)
	}

	fnType := fn.Type()
	if fnType.IsVariadic() {
		return fmt.Errorf("bind %s: variadic functions are not supported", name)
	}
	if fnType.NumIn() > config.MaxArity {
		return fmt.Errorf("bind %s: more than %d parameters", name, config.MaxArity)
	}
	switch {
	case fnType.NumOut() > 2,
		fnType.NumOut() == 2 && fnType.Out(1) != errorType:
		return fmt.Errorf("bind %s: want results (T), (T, error) or (error)", name)
	}

	i.backend.Globals().Define(name, &evaluator.Builtin{
		Name:   name,
		Params: fnType.NumIn(),
		Fn: func(_ *evaluator.Interpreter, args []evaluator.Object) (evaluator.Object, error) {
			return i.hostCall(fn, args)
		},
	})
	return nil
}

func (i *Interpreter) hostCall(fn reflect.Value, args []evaluator.Object) (evaluator.Object, error) {
	fnType := fn.Type()

	in := make([]reflect.Value, len(args))
	for n, arg := range args {
		paramType := fnType.In(n)
		goVal, err := i.marshaller.FromValue(arg, paramType)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", n+1, err)
		}
		if goVal == nil {
			in[n] = reflect.Zero(paramType)
		} else {
			in[n] = reflect.ValueOf(goVal)
		}
	}

	out := fn.Call(in)
	if len(out) > 0 && fnType.Out(len(out)-1) == errorType {
		if err, _ := out[len(out)-1].Interface().(error); err != nil {
			return nil, err
		}
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return evaluator.NIL, nil
	}
	return i.marshaller.ToValue(out[0].Interface())
}

// Set defines a global variable holding the converted val.
func (i *Interpreter) Set(name string, val interface{}) error {
	obj, err := i.marshaller.ToValue(val)
	if err != nil {
		return fmt.Errorf("set %s: %w", name, err)
	}
	i.backend.Globals().Define(name, obj)
	return nil
}

// Get returns the Go form of a global variable.
func (i *Interpreter) Get(name string) (interface{}, error) {
	obj, err := i.backend.Globals().Get(token.Token{Type: token.IDENT, Lexeme: name})
	if err != nil {
		return nil, err
	}
	return i.marshaller.FromValue(obj, nil)
}

// Call calls the global function or class name with Go arguments.
func (i *Interpreter) Call(ctx context.Context, name string, args ...interface{}) (interface{}, error) {
	callee := token.Token{Type: token.IDENT, Lexeme: name}
	obj, err := i.backend.Globals().Get(callee)
	if err != nil {
		return nil, err
	}
	fn, ok := obj.(evaluator.Callable)
	if !ok {
		return nil, fmt.Errorf("%s is not callable", name)
	}

	loxArgs := make([]evaluator.Object, len(args))
	for n, arg := range args {
		if loxArgs[n], err = i.marshaller.ToValue(arg); err != nil {
			return nil, fmt.Errorf("argument %d: %w", n+1, err)
		}
	}

	result, err := i.backend.Call(ctx, callee, fn, loxArgs)
	if err != nil {
		return nil, err
	}
	return i.marshaller.FromValue(result, nil)
}

// Eval runs code in the session. Compile errors are all reported; the
// run stops at the first runtime error.
func (i *Interpreter) Eval(ctx context.Context, code string) error {
	return i.run(ctx, code, "")
}

// LoadFile evaluates a script file in the session.
func (i *Interpreter) LoadFile(ctx context.Context, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return i.run(ctx, string(src), path)
}

func (i *Interpreter) run(ctx context.Context, code, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	pctx := pipeline.NewPipelineContext(code)
	pctx.Context = ctx
	pctx.FilePath = path
	pctx.ResolutionMap = i.backend.Locals()

	p := pipeline.New(
		&lexer.LexerProcessor{},
		&parser.ParserProcessor{},
		&resolver.ResolverProcessor{},
		backend.NewExecutionProcessor(i.backend),
	)
	if i.logger != nil {
		p.WithLogger(i.logger)
	}
	pctx = p.Run(pctx)

	if !pctx.HasErrors() {
		return nil
	}
	errs := make([]error, len(pctx.Errors))
	for n, diag := range pctx.Errors {
		errs[n] = diag
	}
	return errors.Join(errs...)
}
