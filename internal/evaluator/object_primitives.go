package evaluator

import (
	"math"
	"strconv"
)

var (
	NIL   = &Nil{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

type Nil struct{}

func (n *Nil) Type() ObjectType { return NIL_OBJ }
func (n *Nil) Inspect() string  { return "nil" }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string  { return strconv.FormatBool(b.Value) }

type Number struct {
	Value float64
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }
func (n *Number) Inspect() string  { return formatNumber(n.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

func nativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}

// formatNumber prints integral values without a fraction: 3, not 3.0.
func formatNumber(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// literalToObject converts a parsed literal value.
func literalToObject(v interface{}) Object {
	switch val := v.(type) {
	case bool:
		return nativeBoolToBooleanObject(val)
	case float64:
		return &Number{Value: val}
	case string:
		return &String{Value: val}
	}
	return NIL
}

// isTruthy: nil and false are falsy, everything else (0 and "" included)
// is truthy.
func isTruthy(obj Object) bool {
	switch o := obj.(type) {
	case *Nil:
		return false
	case *Boolean:
		return o.Value
	}
	return true
}

// isEqual compares numbers and strings by value and everything else by
// identity. Values of different types are never equal.
func isEqual(a, b Object) bool {
	switch x := a.(type) {
	case *Nil:
		_, ok := b.(*Nil)
		return ok
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value == y.Value
	case *String:
		y, ok := b.(*String)
		return ok && x.Value == y.Value
	}
	return a == b
}
