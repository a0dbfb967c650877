package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
)

func (in *Interpreter) evalGetExpression(e *ast.GetExpression) (Object, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Token, "Only instances have properties.")
	}
	return instance.Get(e.Token)
}

// evalSetExpression checks the object before evaluating the value.
func (in *Interpreter) evalSetExpression(e *ast.SetExpression) (Object, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Token, "Only instances have fields.")
	}

	val, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(e.Name, val)
	return val, nil
}

// evalSuperExpression looks the method up starting at the superclass of
// the class that declared the running method, and binds it to 'this',
// which lives one frame inside the 'super' frame.
func (in *Interpreter) evalSuperExpression(e *ast.SuperExpression) (Object, error) {
	distance, ok := in.locals[e]
	if !ok {
		// 'super' outside a subclass has no binding.
		return in.globals.Get(e.Token)
	}

	superclass, ok := in.env.GetAt(distance, config.SuperName).(*Class)
	if !ok {
		panic(fmt.Sprintf("internal error: '%s' is not a class", config.SuperName))
	}
	this, ok := in.env.GetAt(distance-1, config.ThisName).(*Instance)
	if !ok {
		panic(fmt.Sprintf("internal error: '%s' is not an instance", config.ThisName))
	}

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		return nil, newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(this), nil
}
