package prettyprinter

import (
	"bytes"
	"strconv"

	"github.com/funvibe/lox/internal/ast"
)

// --- Tree Printer (Lisp-like, one line per top-level statement) ---

type TreePrinter struct {
	buf bytes.Buffer
}

func NewTreePrinter() *TreePrinter {
	return &TreePrinter{}
}

func (p *TreePrinter) String() string {
	return p.buf.String()
}

// PrintProgram writes each statement on its own line.
func (p *TreePrinter) PrintProgram(stmts []ast.Stmt) {
	for _, s := range stmts {
		p.PrintStmt(s)
		p.buf.WriteString("\n")
	}
}

func (p *TreePrinter) PrintStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		p.parenthesize(";", s.Expression)
	case *ast.PrintStatement:
		p.parenthesize("print", s.Expression)
	case *ast.VarStatement:
		p.open("var " + s.Name)
		if s.Value != nil {
			p.space()
			p.PrintExpr(s.Value)
		}
		p.close()
	case *ast.BlockStatement:
		p.open("block")
		p.stmts(s.Statements)
		p.close()
	case *ast.IfStatement:
		p.open("if")
		p.space()
		p.PrintExpr(s.Condition)
		p.space()
		p.PrintStmt(s.Consequence)
		if s.Alternative != nil {
			p.space()
			p.PrintStmt(s.Alternative)
		}
		p.close()
	case *ast.WhileStatement:
		p.open("while")
		p.space()
		p.PrintExpr(s.Condition)
		p.space()
		p.PrintStmt(s.Body)
		p.close()
	case *ast.FunctionStatement:
		p.function("fun "+s.Name, s.Function)
	case *ast.ReturnStatement:
		p.open("return")
		if s.Value != nil {
			p.space()
			p.PrintExpr(s.Value)
		}
		p.close()
	case *ast.ClassStatement:
		head := "class " + s.Name
		if s.Superclass != nil {
			head += " < " + s.Superclass.Value
		}
		p.open(head)
		for _, m := range s.Methods {
			p.space()
			p.function(m.Name, m.Function)
		}
		p.close()
	case nil:
		p.buf.WriteString("<nil>")
	}
}

func (p *TreePrinter) PrintExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		p.buf.WriteString(literalString(e.Value))
	case *ast.GroupedExpression:
		p.parenthesize("group", e.Expression)
	case *ast.PrefixExpression:
		p.parenthesize(e.Operator, e.Right)
	case *ast.InfixExpression:
		p.parenthesize(e.Operator, e.Left, e.Right)
	case *ast.LogicalExpression:
		p.parenthesize(e.Operator, e.Left, e.Right)
	case *ast.Identifier:
		p.buf.WriteString(e.Value)
	case *ast.AssignExpression:
		p.parenthesize("= "+e.Name, e.Value)
	case *ast.CallExpression:
		p.parenthesize("call", append([]ast.Expr{e.Callee}, e.Arguments...)...)
	case *ast.GetExpression:
		p.parenthesize(". "+e.Name, e.Object)
	case *ast.SetExpression:
		p.parenthesize(".= "+e.Name, e.Object, e.Value)
	case *ast.ThisExpression:
		p.buf.WriteString("this")
	case *ast.SuperExpression:
		p.buf.WriteString("(super " + e.Method.Lexeme + ")")
	case *ast.FunctionLiteral:
		p.function("fun", e)
	case nil:
		p.buf.WriteString("<nil>")
	}
}

func (p *TreePrinter) function(head string, fn *ast.FunctionLiteral) {
	p.open(head)
	p.buf.WriteString(" (")
	for i, param := range fn.Parameters {
		if i > 0 {
			p.space()
		}
		p.buf.WriteString(param.Lexeme)
	}
	p.buf.WriteString(")")
	p.stmts(fn.Body)
	p.close()
}

func (p *TreePrinter) stmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		p.space()
		p.PrintStmt(s)
	}
}

func (p *TreePrinter) parenthesize(name string, exprs ...ast.Expr) {
	p.open(name)
	for _, e := range exprs {
		p.space()
		p.PrintExpr(e)
	}
	p.close()
}

func (p *TreePrinter) open(name string) {
	p.buf.WriteString("(")
	p.buf.WriteString(name)
}

func (p *TreePrinter) close() { p.buf.WriteString(")") }
func (p *TreePrinter) space() { p.buf.WriteString(" ") }

// literalString renders a literal the way it is written in source. Lox
// strings have no escapes, so quoting is literal.
func literalString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return `"` + val + `"`
	}
	return "<???>"
}
