package parser

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

// declaration parses one declaration or statement and resynchronizes when
// it fails, so the next call starts at a statement boundary.
func (p *Parser) declaration() ast.Stmt {
	stmt := p.parseDeclaration()
	if stmt == nil {
		p.synchronize()
		return nil
	}
	return stmt
}

func (p *Parser) parseDeclaration() ast.Stmt {
	switch {
	case p.match(token.CLASS):
		return p.parseClassDeclaration()
	case p.check(token.FUN) && p.peekNext().Type == token.IDENT:
		// A 'fun' not followed by a name is an anonymous function expression.
		p.advance()
		fn := p.parseFunction("function")
		if fn == nil {
			return nil
		}
		return fn
	case p.match(token.VAR):
		return p.parseVarDeclaration()
	}
	return p.parseStatement()
}

func (p *Parser) parseClassDeclaration() ast.Stmt {
	name, ok := p.expect(token.IDENT, "Expect class name.")
	if !ok {
		return nil
	}
	class := &ast.ClassStatement{Token: name, Name: name.Lexeme}

	if p.match(token.LT) {
		superTok, ok := p.expect(token.IDENT, "Expect superclass name.")
		if !ok {
			return nil
		}
		class.Superclass = &ast.Identifier{Token: superTok, Value: superTok.Lexeme}
	}

	if _, ok := p.expect(token.LBRACE, "Expect '{' before class body."); !ok {
		return nil
	}
	for !p.check(token.RBRACE) && !p.atEnd() {
		method := p.parseFunction("method")
		if method == nil {
			return nil
		}
		class.Methods = append(class.Methods, method)
	}
	if _, ok := p.expect(token.RBRACE, "Expect '}' after class body."); !ok {
		return nil
	}
	return class
}

// parseFunction parses `name(params) { body }`. kind is "function" or
// "method" and only shows up in messages.
func (p *Parser) parseFunction(kind string) *ast.FunctionStatement {
	name, ok := p.expect(token.IDENT, "Expect "+kind+" name.")
	if !ok {
		return nil
	}
	fn := p.parseFunctionBody(name, kind)
	if fn == nil {
		return nil
	}
	return &ast.FunctionStatement{Token: name, Name: name.Lexeme, Function: fn}
}

func (p *Parser) parseFunctionBody(tok token.Token, kind string) *ast.FunctionLiteral {
	if _, ok := p.expect(token.LPAREN, "Expect '(' after "+kind+" name."); !ok {
		return nil
	}

	params := []token.Token{}
	if !p.check(token.RPAREN) {
		for {
			p.checkLimit(len(params), diagnostics.ErrP004, "parameters")
			param, ok := p.expect(token.IDENT, "Expect parameter name.")
			if !ok {
				return nil
			}
			params = append(params, param)
			if !p.match(token.COMMA) {
				break
			}
		}
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after parameters."); !ok {
		return nil
	}

	if _, ok := p.expect(token.LBRACE, "Expect '{' before "+kind+" body."); !ok {
		return nil
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil
	}
	return &ast.FunctionLiteral{Token: tok, Parameters: params, Body: body}
}

func (p *Parser) parseVarDeclaration() ast.Stmt {
	name, ok := p.expect(token.IDENT, "Expect variable name.")
	if !ok {
		return nil
	}
	stmt := &ast.VarStatement{Token: name, Name: name.Lexeme}

	if p.match(token.ASSIGN) {
		stmt.Value = p.parseExpression()
		if stmt.Value == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after variable declaration."); !ok {
		return nil
	}
	return stmt
}

func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.match(token.FOR):
		return p.parseForStatement()
	case p.match(token.IF):
		return p.parseIfStatement()
	case p.match(token.PRINT):
		return p.parsePrintStatement()
	case p.match(token.RETURN):
		return p.parseReturnStatement()
	case p.match(token.WHILE):
		return p.parseWhileStatement()
	case p.match(token.LBRACE):
		lbrace := p.previous()
		stmts, ok := p.parseBlock()
		if !ok {
			return nil
		}
		return &ast.BlockStatement{Token: lbrace, Statements: stmts}
	}
	return p.parseExpressionStatement()
}

// parseForStatement desugars
//
//	for (init; cond; incr) body
//
// into
//
//	{ init; while (cond) { body; incr; } }
//
// A missing condition is 'true'.
func (p *Parser) parseForStatement() ast.Stmt {
	forTok := p.previous()
	if _, ok := p.expect(token.LPAREN, "Expect '(' after 'for'."); !ok {
		return nil
	}

	var initializer ast.Stmt
	switch {
	case p.match(token.SEMICOLON):
	case p.match(token.VAR):
		initializer = p.parseVarDeclaration()
		if initializer == nil {
			return nil
		}
	default:
		initializer = p.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	var condition ast.Expr
	if !p.check(token.SEMICOLON) {
		condition = p.parseExpression()
		if condition == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after loop condition."); !ok {
		return nil
	}

	var increment ast.Expr
	if !p.check(token.RPAREN) {
		increment = p.parseExpression()
		if increment == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after for clauses."); !ok {
		return nil
	}

	body := p.parseStatement()
	if body == nil {
		return nil
	}

	if increment != nil {
		body = &ast.BlockStatement{Token: forTok, Statements: []ast.Stmt{
			body,
			&ast.ExpressionStatement{Token: increment.GetToken(), Expression: increment},
		}}
	}
	if condition == nil {
		condition = &ast.Literal{Token: forTok, Value: true}
	}
	var loop ast.Stmt = &ast.WhileStatement{Token: forTok, Condition: condition, Body: body}
	if initializer != nil {
		loop = &ast.BlockStatement{Token: forTok, Statements: []ast.Stmt{initializer, loop}}
	}
	return loop
}

func (p *Parser) parseIfStatement() ast.Stmt {
	stmt := &ast.IfStatement{Token: p.previous()}
	if _, ok := p.expect(token.LPAREN, "Expect '(' after 'if'."); !ok {
		return nil
	}
	stmt.Condition = p.parseExpression()
	if stmt.Condition == nil {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after if condition."); !ok {
		return nil
	}

	stmt.Consequence = p.parseStatement()
	if stmt.Consequence == nil {
		return nil
	}
	// else binds to the nearest if.
	if p.match(token.ELSE) {
		stmt.Alternative = p.parseStatement()
		if stmt.Alternative == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parsePrintStatement() ast.Stmt {
	stmt := &ast.PrintStatement{Token: p.previous()}
	stmt.Expression = p.parseExpression()
	if stmt.Expression == nil {
		return nil
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after value."); !ok {
		return nil
	}
	return stmt
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	stmt := &ast.ReturnStatement{Token: p.previous()}
	if !p.check(token.SEMICOLON) {
		stmt.Value = p.parseExpression()
		if stmt.Value == nil {
			return nil
		}
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after return value."); !ok {
		return nil
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	stmt := &ast.WhileStatement{Token: p.previous()}
	if _, ok := p.expect(token.LPAREN, "Expect '(' after 'while'."); !ok {
		return nil
	}
	stmt.Condition = p.parseExpression()
	if stmt.Condition == nil {
		return nil
	}
	if _, ok := p.expect(token.RPAREN, "Expect ')' after condition."); !ok {
		return nil
	}
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseBlock parses declarations up to the closing brace. The opening
// brace has already been consumed.
func (p *Parser) parseBlock() ([]ast.Stmt, bool) {
	stmts := []ast.Stmt{}
	for !p.check(token.RBRACE) && !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	if _, ok := p.expect(token.RBRACE, "Expect '}' after block."); !ok {
		return nil, false
	}
	return stmts, true
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	first := p.peek()
	expr := p.parseExpression()
	if expr == nil {
		return nil
	}
	if _, ok := p.expect(token.SEMICOLON, "Expect ';' after expression."); !ok {
		return nil
	}
	return &ast.ExpressionStatement{Token: first, Expression: expr}
}
