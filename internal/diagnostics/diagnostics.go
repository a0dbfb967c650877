// Package diagnostics defines the error records produced by every
// pipeline stage. Scanner, parser and resolver collect them instead of
// stopping at the first one; the interpreter reports at most one.
package diagnostics

import (
	"fmt"

	"github.com/funvibe/lox/internal/token"
)

type ErrorCode string

const (
	// Lexical
	ErrL001 ErrorCode = "L001" // unexpected character
	ErrL002 ErrorCode = "L002" // unterminated string
	ErrL003 ErrorCode = "L003" // unterminated block comment

	// Syntax
	ErrP001 ErrorCode = "P001" // expected token or expression
	ErrP002 ErrorCode = "P002" // invalid assignment target
	ErrP003 ErrorCode = "P003" // too many arguments
	ErrP004 ErrorCode = "P004" // too many parameters

	// Resolution
	ErrA001 ErrorCode = "A001" // local read in its own initializer
	ErrA002 ErrorCode = "A002" // duplicate declaration in one scope
	ErrA003 ErrorCode = "A003" // return at top level
	ErrA004 ErrorCode = "A004" // return value from initializer
	ErrA005 ErrorCode = "A005" // class inherits from itself

	// Runtime
	ErrR001 ErrorCode = "R001"
)

// Stage groups error codes by the pipeline stage that emits them.
type Stage int

const (
	StageLexer Stage = iota
	StageParser
	StageResolver
	StageRuntime
)

func (s Stage) String() string {
	switch s {
	case StageLexer:
		return "lexer"
	case StageParser:
		return "parser"
	case StageResolver:
		return "resolver"
	default:
		return "runtime"
	}
}

func (c ErrorCode) Stage() Stage {
	if c == "" {
		return StageRuntime
	}
	switch c[0] {
	case 'L':
		return StageLexer
	case 'P':
		return StageParser
	case 'A':
		return StageResolver
	default:
		return StageRuntime
	}
}

type DiagnosticError struct {
	Code    ErrorCode
	Token   token.Token
	Message string
	File    string
}

// NewError builds a diagnostic anchored at tok. The message is a format
// string when args are given.
func NewError(code ErrorCode, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	return &DiagnosticError{Code: code, Token: tok, Message: msg}
}

// Error renders the diagnostic in the form the driver prints:
//
//	[line 3] Error: Unexpected character.
//	[line 3] Error at 'x': Expect ';' after value.
//	Undefined variable 'x'.
//	[line 3]
func (e *DiagnosticError) Error() string {
	switch e.Code.Stage() {
	case StageRuntime:
		return fmt.Sprintf("%s\n[line %d]", e.Message, e.Token.Line)
	case StageLexer:
		return fmt.Sprintf("[line %d] Error: %s", e.Token.Line, e.Message)
	}
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, e.where(), e.Message)
}

func (e *DiagnosticError) where() string {
	if e.Token.Type == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}
