package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/token"
)

// Environment is one frame of variable bindings. Frames captured by
// closures stay alive as long as any closure refers to them; writes through
// one holder are seen by all of them.
type Environment struct {
	store map[string]Object
	outer *Environment
}

func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Object)}
}

func NewEnclosedEnvironment(outer *Environment) *Environment {
	env := NewEnvironment()
	env.outer = outer
	return env
}

func (e *Environment) Outer() *Environment {
	return e.outer
}

// Define binds name in this frame, replacing any earlier binding.
func (e *Environment) Define(name string, val Object) {
	e.store[name] = val
}

// Get looks name up through the chain. Only unresolved (global) references
// go through here.
func (e *Environment) Get(name token.Token) (Object, error) {
	for env := e; env != nil; env = env.outer {
		if obj, ok := env.store[name.Lexeme]; ok {
			return obj, nil
		}
	}
	return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign updates an existing binding. Assigning to an undeclared name is an
// error; there is no implicit declaration.
func (e *Environment) Assign(name token.Token, val Object) error {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.store[name.Lexeme]; ok {
			env.store[name.Lexeme] = val
			return nil
		}
	}
	return newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// GetAt reads name from the frame distance links up. The resolver
// guarantees the binding exists; a miss is an interpreter bug.
func (e *Environment) GetAt(distance int, name string) Object {
	obj, ok := e.ancestor(distance).store[name]
	if !ok {
		panic(fmt.Sprintf("internal error: '%s' not found at distance %d", name, distance))
	}
	return obj
}

func (e *Environment) AssignAt(distance int, name string, val Object) {
	env := e.ancestor(distance)
	if _, ok := env.store[name]; !ok {
		panic(fmt.Sprintf("internal error: '%s' not found at distance %d", name, distance))
	}
	env.store[name] = val
}

func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		if env.outer == nil {
			panic(fmt.Sprintf("internal error: no frame at distance %d", distance))
		}
		env = env.outer
	}
	return env
}
