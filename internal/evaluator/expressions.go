package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/ast"
)

func (in *Interpreter) evaluate(expr ast.Expr) (Object, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalToObject(e.Value), nil

	case *ast.GroupedExpression:
		return in.evaluate(e.Expression)

	case *ast.PrefixExpression:
		return in.evalPrefixExpression(e)

	case *ast.InfixExpression:
		return in.evalInfixExpression(e)

	case *ast.LogicalExpression:
		return in.evalLogicalExpression(e)

	case *ast.Identifier:
		return in.lookUpVariable(e.Token, e)

	case *ast.AssignExpression:
		return in.evalAssignExpression(e)

	case *ast.CallExpression:
		return in.evalCallExpression(e)

	case *ast.GetExpression:
		return in.evalGetExpression(e)

	case *ast.SetExpression:
		return in.evalSetExpression(e)

	case *ast.ThisExpression:
		return in.lookUpVariable(e.Token, e)

	case *ast.SuperExpression:
		return in.evalSuperExpression(e)

	case *ast.FunctionLiteral:
		return &Function{Declaration: e, Closure: in.env}, nil
	}
	return nil, fmt.Errorf("internal error: unknown expression %T", expr)
}

func (in *Interpreter) evalAssignExpression(e *ast.AssignExpression) (Object, error) {
	val, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if distance, ok := in.locals[e]; ok {
		in.env.AssignAt(distance, e.Name, val)
		return val, nil
	}
	if err := in.globals.Assign(e.Token, val); err != nil {
		return nil, err
	}
	return val, nil
}

// evalLogicalExpression returns the operand that decided the result, not a
// boolean: nil or "x" is "x".
func (in *Interpreter) evalLogicalExpression(e *ast.LogicalExpression) (Object, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator == "or" {
		if isTruthy(left) {
			return left, nil
		}
	} else if !isTruthy(left) {
		return left, nil
	}
	return in.evaluate(e.Right)
}
