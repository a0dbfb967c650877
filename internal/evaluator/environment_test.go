package evaluator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/token"
)

func ident(name string) token.Token {
	return token.Token{Type: token.IDENT, Lexeme: name, Line: 1}
}

func TestEnvironmentChain(t *testing.T) {
	globals := NewEnvironment()
	globals.Define("a", &Number{Value: 1})
	inner := NewEnclosedEnvironment(globals)
	inner.Define("b", &Number{Value: 2})

	got, err := inner.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, "1", got.Inspect())

	require.NoError(t, inner.Assign(ident("a"), &String{Value: "x"}))
	assert.Equal(t, "x", globals.GetAt(0, "a").Inspect())
	assert.Equal(t, "x", inner.GetAt(1, "a").Inspect())

	inner.AssignAt(0, "b", TRUE)
	assert.Equal(t, TRUE, inner.GetAt(0, "b"))
	assert.Same(t, globals, inner.Outer())

	_, err = globals.Get(ident("b"))
	var rte *RuntimeError
	require.ErrorAs(t, err, &rte)
	assert.Equal(t, "Undefined variable 'b'.", rte.Message)

	err = inner.Assign(ident("c"), NIL)
	require.ErrorAs(t, err, &rte)
	assert.Equal(t, "Undefined variable 'c'.", rte.Message)
}

func TestEnvironmentRedefine(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", &Number{Value: 1})
	env.Define("a", &Number{Value: 2})
	assert.Equal(t, "2", env.GetAt(0, "a").Inspect())
}

func TestEnvironmentMissIsInternalError(t *testing.T) {
	env := NewEnclosedEnvironment(NewEnvironment())
	assert.Panics(t, func() { env.GetAt(0, "nope") })
	assert.Panics(t, func() { env.GetAt(5, "nope") })
	assert.Panics(t, func() { env.AssignAt(1, "nope", NIL) })
}

func TestStringify(t *testing.T) {
	class := &Class{Name: "Point", Methods: map[string]*Function{}}
	tests := []struct {
		obj  Object
		want string
	}{
		{NIL, "nil"},
		{TRUE, "true"},
		{FALSE, "false"},
		{&Number{Value: 3}, "3"},
		{&Number{Value: -0.5}, "-0.5"},
		{&Number{Value: 2.5e10}, "25000000000"},
		{&Number{Value: math.Inf(1)}, "Infinity"},
		{&Number{Value: math.Inf(-1)}, "-Infinity"},
		{&Number{Value: math.NaN()}, "NaN"},
		{&String{Value: "raw \"text\""}, "raw \"text\""},
		{class, "Point"},
		{NewInstance(class), "Point instance"},
		{&Function{Name: "f"}, "<fn f>"},
		{&Builtin{Name: "clock"}, "<native fn>"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.obj.Inspect())
	}
}

func TestEquality(t *testing.T) {
	nan := &Number{Value: math.NaN()}
	inst := NewInstance(&Class{Name: "A", Methods: map[string]*Function{}})

	assert.True(t, isEqual(NIL, NIL))
	assert.True(t, isEqual(&Number{Value: 1}, &Number{Value: 1}))
	assert.True(t, isEqual(&String{Value: "s"}, &String{Value: "s"}))
	assert.True(t, isEqual(inst, inst))
	assert.False(t, isEqual(inst, NewInstance(inst.Class)))
	assert.False(t, isEqual(NIL, FALSE))
	assert.False(t, isEqual(&Number{Value: 0}, FALSE))
	assert.False(t, isEqual(nan, nan))
}

func TestTruthiness(t *testing.T) {
	assert.False(t, isTruthy(NIL))
	assert.False(t, isTruthy(FALSE))
	assert.True(t, isTruthy(TRUE))
	assert.True(t, isTruthy(&Number{Value: 0}))
	assert.True(t, isTruthy(&String{Value: ""}))
}
