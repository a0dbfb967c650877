package evaluator

import (
	"fmt"

	"github.com/funvibe/lox/internal/token"
)

// RuntimeError ends a run. Token locates the failing operation.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func newRuntimeError(tok token.Token, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, a...)}
}

// ReturnValue carries the value of a 'return' out of the statements that
// enclose it, up to the function call.
type ReturnValue struct {
	Value Object
}
