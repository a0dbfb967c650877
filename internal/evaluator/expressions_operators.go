package evaluator

import (
	"github.com/funvibe/lox/internal/ast"
)

func (in *Interpreter) evalPrefixExpression(e *ast.PrefixExpression) (Object, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "!":
		return nativeBoolToBooleanObject(!isTruthy(right)), nil
	case "-":
		n, ok := right.(*Number)
		if !ok {
			return nil, newRuntimeError(e.Token, "Operand must be a number.")
		}
		return &Number{Value: -n.Value}, nil
	}
	return nil, newRuntimeError(e.Token, "Unknown operator: %s", e.Operator)
}

// evalInfixExpression evaluates both operands left to right before
// checking their types. There are no implicit conversions.
func (in *Interpreter) evalInfixExpression(e *ast.InfixExpression) (Object, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case "==":
		return nativeBoolToBooleanObject(isEqual(left, right)), nil
	case "!=":
		return nativeBoolToBooleanObject(!isEqual(left, right)), nil
	case "+":
		switch l := left.(type) {
		case *Number:
			if r, ok := right.(*Number); ok {
				return &Number{Value: l.Value + r.Value}, nil
			}
		case *String:
			if r, ok := right.(*String); ok {
				return &String{Value: l.Value + r.Value}, nil
			}
		}
		return nil, newRuntimeError(e.Token, "Operands must be two numbers or two strings.")
	}

	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, newRuntimeError(e.Token, "Operands must be numbers.")
	}

	switch e.Operator {
	case "-":
		return &Number{Value: l.Value - r.Value}, nil
	case "*":
		return &Number{Value: l.Value * r.Value}, nil
	case "/":
		// IEEE division: 1/0 is Infinity, 0/0 is NaN.
		return &Number{Value: l.Value / r.Value}, nil
	case ">":
		return nativeBoolToBooleanObject(l.Value > r.Value), nil
	case ">=":
		return nativeBoolToBooleanObject(l.Value >= r.Value), nil
	case "<":
		return nativeBoolToBooleanObject(l.Value < r.Value), nil
	case "<=":
		return nativeBoolToBooleanObject(l.Value <= r.Value), nil
	}
	return nil, newRuntimeError(e.Token, "Unknown operator: %s", e.Operator)
}
