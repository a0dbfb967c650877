package ast

import (
	"github.com/funvibe/lox/internal/token"
)

// ExpressionStatement is an expression evaluated for its side effects.
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expr
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }

type PrintStatement struct {
	Token      token.Token // The 'print' token
	Expression Expr
}

func (ps *PrintStatement) statementNode()        {}
func (ps *PrintStatement) TokenLiteral() string  { return ps.Token.Lexeme }
func (ps *PrintStatement) GetToken() token.Token { return ps.Token }

// VarStatement declares a variable. Value is nil without an initializer.
type VarStatement struct {
	Token token.Token // The name token
	Name  string
	Value Expr
}

func (vs *VarStatement) statementNode()        {}
func (vs *VarStatement) TokenLiteral() string  { return vs.Token.Lexeme }
func (vs *VarStatement) GetToken() token.Token { return vs.Token }

// BlockStatement represents a list of statements within curly braces.
type BlockStatement struct {
	Token      token.Token // {
	Statements []Stmt
}

func (bs *BlockStatement) statementNode()        {}
func (bs *BlockStatement) TokenLiteral() string  { return bs.Token.Lexeme }
func (bs *BlockStatement) GetToken() token.Token { return bs.Token }

type IfStatement struct {
	Token       token.Token // The 'if' token
	Condition   Expr
	Consequence Stmt
	Alternative Stmt // nil without else
}

func (is *IfStatement) statementNode()        {}
func (is *IfStatement) TokenLiteral() string  { return is.Token.Lexeme }
func (is *IfStatement) GetToken() token.Token { return is.Token }

// WhileStatement is also the target of the 'for' desugaring.
type WhileStatement struct {
	Token     token.Token // The 'while' or 'for' token
	Condition Expr
	Body      Stmt
}

func (ws *WhileStatement) statementNode()        {}
func (ws *WhileStatement) TokenLiteral() string  { return ws.Token.Lexeme }
func (ws *WhileStatement) GetToken() token.Token { return ws.Token }

// FunctionStatement binds a FunctionLiteral to a name: fun name(params) { body }
type FunctionStatement struct {
	Token    token.Token // The name token
	Name     string
	Function *FunctionLiteral
}

func (fs *FunctionStatement) statementNode()        {}
func (fs *FunctionStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FunctionStatement) GetToken() token.Token { return fs.Token }

// ReturnStatement. Value is nil for a bare return.
type ReturnStatement struct {
	Token token.Token // The 'return' token
	Value Expr
}

func (rs *ReturnStatement) statementNode()        {}
func (rs *ReturnStatement) TokenLiteral() string  { return rs.Token.Lexeme }
func (rs *ReturnStatement) GetToken() token.Token { return rs.Token }

// ClassStatement declares a class with an optional superclass.
type ClassStatement struct {
	Token      token.Token // The name token
	Name       string
	Superclass *Identifier // nil without '<'
	Methods    []*FunctionStatement
}

func (cs *ClassStatement) statementNode()        {}
func (cs *ClassStatement) TokenLiteral() string  { return cs.Token.Lexeme }
func (cs *ClassStatement) GetToken() token.Token { return cs.Token }
