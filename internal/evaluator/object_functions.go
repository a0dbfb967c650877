package evaluator

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
)

// BuiltinFunction is the Go implementation of a native function.
type BuiltinFunction func(in *Interpreter, args []Object) (Object, error)

// Builtin is a native function with a fixed arity.
type Builtin struct {
	Name   string
	Params int
	Fn     BuiltinFunction
}

func (b *Builtin) Type() ObjectType { return BUILTIN_OBJ }
func (b *Builtin) Inspect() string  { return "<native fn>" }
func (b *Builtin) Arity() int       { return b.Params }

func (b *Builtin) Call(in *Interpreter, args []Object) (Object, error) {
	return b.Fn(in, args)
}

// Function is a user-defined function or method together with the frame
// it closes over.
type Function struct {
	Name          string // empty for anonymous functions
	Declaration   *ast.FunctionLiteral
	Closure       *Environment
	IsInitializer bool
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }

func (f *Function) Inspect() string {
	if f.Name == "" {
		return "<fn>"
	}
	return "<fn " + f.Name + ">"
}

func (f *Function) Arity() int {
	return len(f.Declaration.Parameters)
}

// Bind returns a copy of f whose closure has 'this' bound to instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.Closure)
	env.Define(config.ThisName, instance)
	return &Function{
		Name:          f.Name,
		Declaration:   f.Declaration,
		Closure:       env,
		IsInitializer: f.IsInitializer,
	}
}

// Call runs the body in a fresh frame holding the parameters. An
// initializer always yields its instance, whatever the body returned.
func (f *Function) Call(in *Interpreter, args []Object) (Object, error) {
	env := NewEnclosedEnvironment(f.Closure)
	for i, param := range f.Declaration.Parameters {
		env.Define(param.Lexeme, args[i])
	}

	ret, err := in.executeBlock(f.Declaration.Body, env)
	if err != nil {
		return nil, err
	}
	if f.IsInitializer {
		return f.Closure.GetAt(0, config.ThisName), nil
	}
	if ret != nil {
		return ret.Value, nil
	}
	return NIL, nil
}
