package parser

import (
	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

func (p *Parser) parseExpression() ast.Expr {
	return p.parseAssignment()
}

// parseAssignment is right-associative. The left side is parsed as an
// ordinary expression and only then checked to be a valid target.
func (p *Parser) parseAssignment() ast.Expr {
	expr := p.parseBinary(LOWEST)
	if expr == nil {
		return nil
	}

	if p.match(token.ASSIGN) {
		equals := p.previous()
		value := p.parseAssignment()
		if value == nil {
			return nil
		}

		switch target := expr.(type) {
		case *ast.Identifier:
			return &ast.AssignExpression{Token: target.Token, Name: target.Value, Value: value}
		case *ast.GetExpression:
			return &ast.SetExpression{Token: target.Token, Object: target.Object, Name: target.Name, Value: value}
		}
		p.error(diagnostics.ErrP002, equals, "Invalid assignment target.")
	}
	return expr
}

// parseBinary handles every binary level from 'or' down to '*' and '/'.
// All of them are left-associative.
func (p *Parser) parseBinary(precedence int) ast.Expr {
	left := p.parseUnary()
	if left == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		op := p.advance()
		right := p.parseBinary(precedences[op.Type])
		if right == nil {
			return nil
		}
		if op.Type == token.AND || op.Type == token.OR {
			left = &ast.LogicalExpression{Token: op, Left: left, Operator: op.Lexeme, Right: right}
		} else {
			left = &ast.InfixExpression{Token: op, Left: left, Operator: op.Lexeme, Right: right}
		}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expr {
	if p.match(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.parseUnary()
		if right == nil {
			return nil
		}
		return &ast.PrefixExpression{Token: op, Operator: op.Lexeme, Right: right}
	}
	return p.parseCall()
}

// parseCall parses a primary followed by any chain of calls and property
// accesses: f()(), a.b.c()
func (p *Parser) parseCall() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}

	for {
		switch {
		case p.match(token.LPAREN):
			expr = p.finishCall(expr)
		case p.match(token.DOT):
			name, ok := p.expect(token.IDENT, "Expect property name after '.'.")
			if !ok {
				return nil
			}
			expr = &ast.GetExpression{Token: name, Object: expr, Name: name.Lexeme}
		default:
			return expr
		}
		if expr == nil {
			return nil
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	args := []ast.Expr{}
	if !p.check(token.RPAREN) {
		for {
			p.checkLimit(len(args), diagnostics.ErrP003, "arguments")
			arg := p.parseExpression()
			if arg == nil {
				return nil
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	paren, ok := p.expect(token.RPAREN, "Expect ')' after arguments.")
	if !ok {
		return nil
	}
	return &ast.CallExpression{Token: paren, Callee: callee, Arguments: args}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()
	switch tok.Type {
	case token.TRUE:
		p.advance()
		return &ast.Literal{Token: tok, Value: true}
	case token.FALSE:
		p.advance()
		return &ast.Literal{Token: tok, Value: false}
	case token.NIL:
		p.advance()
		return &ast.Literal{Token: tok, Value: nil}
	case token.NUMBER, token.STRING:
		p.advance()
		return &ast.Literal{Token: tok, Value: tok.Literal}
	case token.SUPER:
		p.advance()
		if _, ok := p.expect(token.DOT, "Expect '.' after 'super'."); !ok {
			return nil
		}
		method, ok := p.expect(token.IDENT, "Expect superclass method name.")
		if !ok {
			return nil
		}
		return &ast.SuperExpression{Token: tok, Method: method}
	case token.THIS:
		p.advance()
		return &ast.ThisExpression{Token: tok}
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		if inner == nil {
			return nil
		}
		if _, ok := p.expect(token.RPAREN, "Expect ')' after expression."); !ok {
			return nil
		}
		return &ast.GroupedExpression{Token: tok, Expression: inner}
	case token.FUN:
		p.advance()
		fn := p.parseFunctionBody(tok, "function")
		if fn == nil {
			return nil
		}
		return fn
	}

	p.error(diagnostics.ErrP001, tok, "Expect expression.")
	return nil
}
