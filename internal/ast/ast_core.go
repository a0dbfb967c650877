// Package ast defines the syntax tree produced by the parser.
//
// Expressions and statements are closed sum types: the unexported marker
// methods keep other packages from adding variants, and every pass
// (resolver, evaluator, printer) dispatches with an exhaustive type switch.
// Nodes are built once by the parser and never mutated.
package ast

import (
	"github.com/funvibe/lox/internal/token"
)

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string
	GetToken() token.Token
}

// Expr is a Node that represents an expression.
type Expr interface {
	Node
	expressionNode()
}

// Stmt is a Node that represents a statement.
type Stmt interface {
	Node
	statementNode()
}

// ResolutionMap maps an expression node (by identity) to the number of
// environment frames between the reference and its declaration. A missing
// entry means the name lives in the global frame.
type ResolutionMap map[Expr]int
