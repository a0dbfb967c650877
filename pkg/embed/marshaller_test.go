package lox

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/evaluator"
)

func TestToValue(t *testing.T) {
	m := NewMarshaller()
	tests := []struct {
		in   interface{}
		want string
	}{
		{nil, "nil"},
		{true, "true"},
		{int8(-3), "-3"},
		{uint64(7), "7"},
		{float32(0.5), "0.5"},
		{"text", "text"},
		{(*int)(nil), "nil"},
		{evaluator.TRUE, "true"},
	}
	for _, tt := range tests {
		obj, err := m.ToValue(tt.in)
		require.NoError(t, err, "%#v", tt.in)
		assert.Equal(t, tt.want, obj.Inspect(), "%#v", tt.in)
	}

	_, err := m.ToValue([]int{1})
	assert.Error(t, err)
}

func TestFromValue(t *testing.T) {
	m := NewMarshaller()

	got, err := m.FromValue(&evaluator.Number{Value: 4}, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got)

	got, err = m.FromValue(&evaluator.Number{Value: 4}, reflect.TypeOf(int64(0)))
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)

	_, err = m.FromValue(&evaluator.Number{Value: 4.5}, reflect.TypeOf(0))
	assert.Error(t, err)

	got, err = m.FromValue(evaluator.NIL, reflect.TypeOf(""))
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = m.FromValue(evaluator.NIL, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	objType := reflect.TypeOf((*evaluator.Object)(nil)).Elem()
	got, err = m.FromValue(&evaluator.String{Value: "s"}, objType)
	require.NoError(t, err)
	assert.Equal(t, &evaluator.String{Value: "s"}, got)

	callableType := reflect.TypeOf((*evaluator.Callable)(nil)).Elem()
	_, err = m.FromValue(&evaluator.String{Value: "s"}, callableType)
	assert.Error(t, err)

	_, err = m.FromValue(evaluator.TRUE, reflect.TypeOf(""))
	assert.Error(t, err)

	class := &evaluator.Class{Name: "A", Methods: map[string]*evaluator.Function{}}
	got, err = m.FromValue(class, nil)
	require.NoError(t, err)
	assert.Same(t, class, got)
}
