// Package resolver computes, for every local variable reference, how many
// scopes separate it from its declaration. It also reports the static
// errors the parser cannot see.
package resolver

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

// FunctionType tracks what kind of function body is being resolved, for
// validating 'return'.
type FunctionType int

const (
	FunctionNone FunctionType = iota
	FunctionPlain
	FunctionInitializer
	FunctionMethod
)

// ClassType tracks the innermost enclosing class, for resolving 'super'.
type ClassType int

const (
	ClassNone ClassType = iota
	ClassPlain
	ClassSubclass
)

type Resolver struct {
	// Each scope maps a name to whether its initializer has finished.
	// The global scope is not on the stack.
	scopes          []map[string]bool
	currentFunction FunctionType
	currentClass    ClassType

	locals ast.ResolutionMap
	errors []*diagnostics.DiagnosticError
}

// New creates a resolver that records distances into locals.
func New(locals ast.ResolutionMap) *Resolver {
	return &Resolver{locals: locals}
}

// Resolve resolves stmts into locals and returns the diagnostics found.
// Resolution continues past each error.
func Resolve(stmts []ast.Stmt, locals ast.ResolutionMap) []*diagnostics.DiagnosticError {
	r := New(locals)
	r.ResolveStatements(stmts)
	return r.Errors()
}

func (r *Resolver) Errors() []*diagnostics.DiagnosticError {
	return r.errors
}

func (r *Resolver) ResolveStatements(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.BlockStatement:
		r.beginScope()
		r.ResolveStatements(s.Statements)
		r.endScope()

	case *ast.VarStatement:
		r.declare(s.Token)
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
		r.define(s.Token)

	case *ast.FunctionStatement:
		// Defined before the body so the function can call itself.
		r.declare(s.Token)
		r.define(s.Token)
		r.resolveFunction(s.Function, FunctionPlain)

	case *ast.ClassStatement:
		r.resolveClass(s)

	case *ast.ExpressionStatement:
		r.resolveExpr(s.Expression)

	case *ast.PrintStatement:
		r.resolveExpr(s.Expression)

	case *ast.IfStatement:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Consequence)
		if s.Alternative != nil {
			r.resolveStmt(s.Alternative)
		}

	case *ast.WhileStatement:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ReturnStatement:
		if r.currentFunction == FunctionNone {
			r.error(diagnostics.ErrA003, s.Token, "Can't return from top-level code.")
		}
		if s.Value != nil {
			// A bare return is how an initializer exits early.
			if r.currentFunction == FunctionInitializer {
				r.error(diagnostics.ErrA004, s.Token, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	}
}

func (r *Resolver) resolveClass(s *ast.ClassStatement) {
	r.declare(s.Token)
	r.define(s.Token)

	enclosing := r.currentClass
	r.currentClass = ClassPlain
	defer func() { r.currentClass = enclosing }()

	if s.Superclass != nil {
		r.currentClass = ClassSubclass
		if s.Superclass.Value == s.Name {
			r.error(diagnostics.ErrA005, s.Superclass.Token, "A class can't inherit from itself.")
		}
		r.resolveExpr(s.Superclass)

		r.beginScope()
		r.scopes[len(r.scopes)-1][config.SuperName] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1][config.ThisName] = true

	for _, method := range s.Methods {
		kind := FunctionMethod
		if method.Name == config.InitMethodName {
			kind = FunctionInitializer
		}
		r.resolveFunction(method.Function, kind)
	}

	r.endScope()
	if s.Superclass != nil {
		r.endScope()
	}
}

func (r *Resolver) resolveFunction(fn *ast.FunctionLiteral, kind FunctionType) {
	enclosing := r.currentFunction
	r.currentFunction = kind
	defer func() { r.currentFunction = enclosing }()

	r.beginScope()
	for _, param := range fn.Parameters {
		r.declare(param)
		r.define(param)
	}
	r.ResolveStatements(fn.Body)
	r.endScope()
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Identifier:
		if len(r.scopes) > 0 {
			if ready, declared := r.scopes[len(r.scopes)-1][e.Value]; declared && !ready {
				r.error(diagnostics.ErrA001, e.Token, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Value)

	case *ast.AssignExpression:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)

	case *ast.InfixExpression:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.LogicalExpression:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.PrefixExpression:
		r.resolveExpr(e.Right)

	case *ast.GroupedExpression:
		r.resolveExpr(e.Expression)

	case *ast.CallExpression:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}

	case *ast.GetExpression:
		r.resolveExpr(e.Object)

	case *ast.SetExpression:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.ThisExpression:
		r.resolveLocal(e, config.ThisName)

	case *ast.SuperExpression:
		// Only the innermost class's superclass is visible. Without one,
		// 'super' stays unresolved and fails as an undefined global.
		if r.currentClass == ClassSubclass {
			r.resolveLocal(e, config.SuperName)
		}

	case *ast.FunctionLiteral:
		r.resolveFunction(e, FunctionPlain)

	case *ast.Literal:
		// nothing to resolve
	}
}

// resolveLocal records the distance to the nearest scope declaring name.
// Names found in no scope are globals and get no entry.
func (r *Resolver) resolveLocal(expr ast.Expr, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Lexeme]; exists {
		r.error(diagnostics.ErrA002, name, "Variable with this name already declared in this scope.")
		return
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) error(code diagnostics.ErrorCode, tok token.Token, msg string) {
	r.errors = append(r.errors, diagnostics.NewError(code, tok, "%s", msg))
}
