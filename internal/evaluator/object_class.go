package evaluator

import (
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/token"
)

type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (c *Class) Type() ObjectType { return CLASS_OBJ }
func (c *Class) Inspect() string  { return c.Name }

// FindMethod looks in this class first, then up the superclass chain.
// It returns nil when no class in the chain defines name.
func (c *Class) FindMethod(name string) *Function {
	for class := c; class != nil; class = class.Superclass {
		if m, ok := class.Methods[name]; ok {
			return m
		}
	}
	return nil
}

// Arity is the arity of init, or 0 without one.
func (c *Class) Arity() int {
	if initializer := c.FindMethod(config.InitMethodName); initializer != nil {
		return initializer.Arity()
	}
	return 0
}

// Call creates an instance and runs init on it, if there is one.
func (c *Class) Call(in *Interpreter, args []Object) (Object, error) {
	instance := NewInstance(c)
	if initializer := c.FindMethod(config.InitMethodName); initializer != nil {
		if _, err := initializer.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

type Instance struct {
	Class  *Class
	Fields map[string]Object
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]Object)}
}

func (i *Instance) Type() ObjectType { return INSTANCE_OBJ }
func (i *Instance) Inspect() string  { return i.Class.Name + " instance" }

// Get returns a field, or else a method bound to i. Fields shadow methods.
func (i *Instance) Get(name token.Token) (Object, error) {
	if val, ok := i.Fields[name.Lexeme]; ok {
		return val, nil
	}
	if method := i.Class.FindMethod(name.Lexeme); method != nil {
		return method.Bind(i), nil
	}
	return nil, newRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

func (i *Instance) Set(name string, val Object) {
	i.Fields[name] = val
}
