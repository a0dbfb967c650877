package evaluator

import (
	"time"

	"github.com/funvibe/lox/internal/config"
)

var builtins = []*Builtin{
	{
		Name:   config.ClockFuncName,
		Params: 0,
		Fn: func(in *Interpreter, args []Object) (Object, error) {
			return &Number{Value: float64(time.Now().UnixNano()) / float64(time.Second)}, nil
		},
	},
}

// RegisterBuiltins defines every native function in env.
func RegisterBuiltins(env *Environment) {
	for _, b := range builtins {
		env.Define(b.Name, b)
	}
}
