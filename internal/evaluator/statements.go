package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
)

// execute runs one statement. A non-nil *ReturnValue means a 'return' is
// unwinding and the caller must stop and pass it up.
func (in *Interpreter) execute(stmt ast.Stmt) (*ReturnValue, error) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		_, err := in.evaluate(s.Expression)
		return nil, err

	case *ast.PrintStatement:
		val, err := in.evaluate(s.Expression)
		if err != nil {
			return nil, err
		}
		fmt.Fprintln(in.Out, val.Inspect())
		return nil, nil

	case *ast.VarStatement:
		var val Object = NIL
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return nil, err
			}
			val = v
		}
		in.env.Define(s.Name, val)
		return nil, nil

	case *ast.BlockStatement:
		return in.executeBlock(s.Statements, NewEnclosedEnvironment(in.env))

	case *ast.IfStatement:
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if isTruthy(cond) {
			return in.execute(s.Consequence)
		}
		if s.Alternative != nil {
			return in.execute(s.Alternative)
		}
		return nil, nil

	case *ast.WhileStatement:
		return in.executeWhile(s)

	case *ast.FunctionStatement:
		fn := &Function{Name: s.Name, Declaration: s.Function, Closure: in.env}
		in.env.Define(s.Name, fn)
		return nil, nil

	case *ast.ReturnStatement:
		var val Object = NIL
		if s.Value != nil {
			v, err := in.evaluate(s.Value)
			if err != nil {
				return nil, err
			}
			val = v
		}
		return &ReturnValue{Value: val}, nil

	case *ast.ClassStatement:
		return nil, in.executeClass(s)
	}
	return nil, fmt.Errorf("internal error: unknown statement %T", stmt)
}

// executeBlock runs stmts in env and restores the previous frame on every
// exit path.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) (*ReturnValue, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		ret, err := in.execute(stmt)
		if err != nil || ret != nil {
			return ret, err
		}
	}
	return nil, nil
}

func (in *Interpreter) executeWhile(s *ast.WhileStatement) (*ReturnValue, error) {
	for {
		if err := in.checkContext(s.Token); err != nil {
			return nil, err
		}
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		ret, err := in.execute(s.Body)
		if err != nil || ret != nil {
			return ret, err
		}
	}
}

func (in *Interpreter) executeClass(s *ast.ClassStatement) error {
	var superclass *Class
	if s.Superclass != nil {
		val, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := val.(*Class)
		if !ok {
			return newRuntimeError(s.Superclass.Token, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name, NIL)

	// Methods of a subclass close over a frame holding 'super'.
	closure := in.env
	if superclass != nil {
		closure = NewEnclosedEnvironment(in.env)
		closure.Define(config.SuperName, superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name] = &Function{
			Name:          m.Name,
			Declaration:   m.Function,
			Closure:       closure,
			IsInitializer: m.Name == config.InitMethodName,
		}
	}

	in.env.Define(s.Name, &Class{Name: s.Name, Superclass: superclass, Methods: methods})
	return nil
}
