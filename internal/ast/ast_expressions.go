package ast

import (
	"github.com/funvibe/lox/internal/token"
)

// Literal holds nil, a bool, a float64 or a string.
type Literal struct {
	Token token.Token
	Value interface{}
}

func (l *Literal) expressionNode()       {}
func (l *Literal) TokenLiteral() string  { return l.Token.Lexeme }
func (l *Literal) GetToken() token.Token { return l.Token }

// GroupedExpression is a parenthesized expression.
type GroupedExpression struct {
	Token      token.Token // The '(' token
	Expression Expr
}

func (ge *GroupedExpression) expressionNode()       {}
func (ge *GroupedExpression) TokenLiteral() string  { return ge.Token.Lexeme }
func (ge *GroupedExpression) GetToken() token.Token { return ge.Token }

// PrefixExpression is a unary operator applied to its operand: !x, -x
type PrefixExpression struct {
	Token    token.Token // The operator token
	Operator string
	Right    Expr
}

func (pe *PrefixExpression) expressionNode()       {}
func (pe *PrefixExpression) TokenLiteral() string  { return pe.Token.Lexeme }
func (pe *PrefixExpression) GetToken() token.Token { return pe.Token }

// InfixExpression is an arithmetic, comparison or equality operator.
type InfixExpression struct {
	Token    token.Token // The operator token
	Left     Expr
	Operator string
	Right    Expr
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }

// LogicalExpression is a short-circuiting 'and' / 'or'.
type LogicalExpression struct {
	Token    token.Token // The 'and' or 'or' token
	Left     Expr
	Operator string
	Right    Expr
}

func (le *LogicalExpression) expressionNode()       {}
func (le *LogicalExpression) TokenLiteral() string  { return le.Token.Lexeme }
func (le *LogicalExpression) GetToken() token.Token { return le.Token }

// Identifier is a variable reference.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }

// AssignExpression assigns to a variable: name = value
type AssignExpression struct {
	Token token.Token // The name token
	Name  string
	Value Expr
}

func (ae *AssignExpression) expressionNode()       {}
func (ae *AssignExpression) TokenLiteral() string  { return ae.Token.Lexeme }
func (ae *AssignExpression) GetToken() token.Token { return ae.Token }

// CallExpression is callee(arguments). Token is the closing ')' so that
// runtime errors point at the end of the call.
type CallExpression struct {
	Token     token.Token
	Callee    Expr
	Arguments []Expr
}

func (ce *CallExpression) expressionNode()       {}
func (ce *CallExpression) TokenLiteral() string  { return ce.Token.Lexeme }
func (ce *CallExpression) GetToken() token.Token { return ce.Token }

// GetExpression reads a property: object.name
type GetExpression struct {
	Token  token.Token // The property name token
	Object Expr
	Name   string
}

func (ge *GetExpression) expressionNode()       {}
func (ge *GetExpression) TokenLiteral() string  { return ge.Token.Lexeme }
func (ge *GetExpression) GetToken() token.Token { return ge.Token }

// SetExpression writes a field: object.name = value
type SetExpression struct {
	Token  token.Token // The property name token
	Object Expr
	Name   string
	Value  Expr
}

func (se *SetExpression) expressionNode()       {}
func (se *SetExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SetExpression) GetToken() token.Token { return se.Token }

// ThisExpression is the 'this' keyword.
type ThisExpression struct {
	Token token.Token
}

func (te *ThisExpression) expressionNode()       {}
func (te *ThisExpression) TokenLiteral() string  { return te.Token.Lexeme }
func (te *ThisExpression) GetToken() token.Token { return te.Token }

// SuperExpression is super.method
type SuperExpression struct {
	Token  token.Token // The 'super' token
	Method token.Token
}

func (se *SuperExpression) expressionNode()       {}
func (se *SuperExpression) TokenLiteral() string  { return se.Token.Lexeme }
func (se *SuperExpression) GetToken() token.Token { return se.Token }

// FunctionLiteral is a parameter list and body. Anonymous `fun (a) {...}`
// expressions use it directly; named declarations and methods wrap it in a
// FunctionStatement.
type FunctionLiteral struct {
	Token      token.Token // The 'fun' keyword or the function name
	Parameters []token.Token
	Body       []Stmt
}

func (fl *FunctionLiteral) expressionNode()       {}
func (fl *FunctionLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FunctionLiteral) GetToken() token.Token { return fl.Token }
