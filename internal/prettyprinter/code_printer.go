package prettyprinter

import (
	"bytes"
	"strings"

	"github.com/funvibe/lox/internal/ast"
)

// --- Code Printer (Output looks like source code) ---
//
// Parentheses come only from GroupedExpression nodes, so printed code parses
// back to the same tree. 'for' loops come out in their desugared while form.

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
}

func (p *CodePrinter) writeIndent() {
	p.buf.WriteString(strings.Repeat("    ", p.indent))
}

func (p *CodePrinter) PrintProgram(stmts []ast.Stmt) {
	for _, s := range stmts {
		p.writeIndent()
		p.PrintStmt(s)
		p.writeln()
	}
}

// PrintStmt prints stmt starting at the current column, without a trailing
// newline.
func (p *CodePrinter) PrintStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStatement:
		p.PrintExpr(s.Expression)
		p.write(";")
	case *ast.PrintStatement:
		p.write("print ")
		p.PrintExpr(s.Expression)
		p.write(";")
	case *ast.VarStatement:
		p.write("var " + s.Name)
		if s.Value != nil {
			p.write(" = ")
			p.PrintExpr(s.Value)
		}
		p.write(";")
	case *ast.BlockStatement:
		p.block(s.Statements)
	case *ast.IfStatement:
		p.write("if (")
		p.PrintExpr(s.Condition)
		p.write(") ")
		p.PrintStmt(s.Consequence)
		if s.Alternative != nil {
			p.write(" else ")
			p.PrintStmt(s.Alternative)
		}
	case *ast.WhileStatement:
		p.write("while (")
		p.PrintExpr(s.Condition)
		p.write(") ")
		p.PrintStmt(s.Body)
	case *ast.FunctionStatement:
		p.write("fun ")
		p.function(s.Name, s.Function)
	case *ast.ReturnStatement:
		p.write("return")
		if s.Value != nil {
			p.write(" ")
			p.PrintExpr(s.Value)
		}
		p.write(";")
	case *ast.ClassStatement:
		p.write("class " + s.Name)
		if s.Superclass != nil {
			p.write(" < " + s.Superclass.Value)
		}
		p.write(" {")
		p.writeln()
		p.indent++
		for _, m := range s.Methods {
			p.writeIndent()
			p.function(m.Name, m.Function)
			p.writeln()
		}
		p.indent--
		p.writeIndent()
		p.write("}")
	default:
		p.write("<???>")
	}
}

func (p *CodePrinter) PrintExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		p.write(literalString(e.Value))
	case *ast.GroupedExpression:
		p.write("(")
		p.PrintExpr(e.Expression)
		p.write(")")
	case *ast.PrefixExpression:
		p.write(e.Operator)
		p.PrintExpr(e.Right)
	case *ast.InfixExpression:
		p.PrintExpr(e.Left)
		p.write(" " + e.Operator + " ")
		p.PrintExpr(e.Right)
	case *ast.LogicalExpression:
		p.PrintExpr(e.Left)
		p.write(" " + e.Operator + " ")
		p.PrintExpr(e.Right)
	case *ast.Identifier:
		p.write(e.Value)
	case *ast.AssignExpression:
		p.write(e.Name + " = ")
		p.PrintExpr(e.Value)
	case *ast.CallExpression:
		p.PrintExpr(e.Callee)
		p.write("(")
		for i, arg := range e.Arguments {
			if i > 0 {
				p.write(", ")
			}
			p.PrintExpr(arg)
		}
		p.write(")")
	case *ast.GetExpression:
		p.PrintExpr(e.Object)
		p.write("." + e.Name)
	case *ast.SetExpression:
		p.PrintExpr(e.Object)
		p.write("." + e.Name + " = ")
		p.PrintExpr(e.Value)
	case *ast.ThisExpression:
		p.write("this")
	case *ast.SuperExpression:
		p.write("super." + e.Method.Lexeme)
	case *ast.FunctionLiteral:
		p.write("fun ")
		p.function("", e)
	default:
		p.write("<???>")
	}
}

func (p *CodePrinter) function(name string, fn *ast.FunctionLiteral) {
	p.write(name + "(")
	for i, param := range fn.Parameters {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Lexeme)
	}
	p.write(") ")
	p.block(fn.Body)
}

func (p *CodePrinter) block(stmts []ast.Stmt) {
	if len(stmts) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.writeln()
	p.indent++
	for _, s := range stmts {
		p.writeIndent()
		p.PrintStmt(s)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}
