package parser

import (
	"fmt"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

// Binding powers for the binary operator loop, lowest first.
const (
	_ int = iota
	LOWEST
	LOGIC_OR    // or
	LOGIC_AND   // and
	EQUALS      // == !=
	LESSGREATER // > >= < <=
	SUM         // + -
	PRODUCT     // * /
)

var precedences = map[token.TokenType]int{
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.LTE:      LESSGREATER,
	token.GT:       LESSGREATER,
	token.GTE:      LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.SLASH:    PRODUCT,
	token.ASTERISK: PRODUCT,
}

// Parser turns a token stream into statements. Parse methods return nil
// after recording a diagnostic; declaration() then resynchronizes.
type Parser struct {
	tokens  []token.Token
	current int

	errors []*diagnostics.DiagnosticError
}

// New creates a parser over tokens. The stream must end with an EOF token,
// as produced by lexer.Scan.
func New(tokens []token.Token) *Parser {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != token.EOF {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].Line
		}
		tokens = append(tokens, token.Token{Type: token.EOF, Line: line})
	}
	return &Parser{tokens: tokens}
}

// Parse parses a whole program. Statements that failed to parse are left
// out of the result; their diagnostics are returned in source order.
func Parse(tokens []token.Token) ([]ast.Stmt, []*diagnostics.DiagnosticError) {
	p := New(tokens)
	return p.ParseProgram(), p.Errors()
}

func (p *Parser) ParseProgram() []ast.Stmt {
	statements := []ast.Stmt{}
	for !p.atEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

func (p *Parser) Errors() []*diagnostics.DiagnosticError {
	return p.errors
}

func (p *Parser) error(code diagnostics.ErrorCode, tok token.Token, msg string) {
	p.errors = append(p.errors, diagnostics.NewError(code, tok, "%s", msg))
}

// synchronize discards tokens until the start of the next statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR,
			token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() token.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// expect consumes a token of type t or records msg at the current token.
func (p *Parser) expect(t token.TokenType, msg string) (token.Token, bool) {
	if p.check(t) {
		return p.advance(), true
	}
	p.error(diagnostics.ErrP001, p.peek(), msg)
	return token.Token{}, false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peek().Type]; ok {
		return prec
	}
	return LOWEST
}

// checkLimit reports once when a list grows past the arity limit. Parsing
// continues so the rest of the list is still checked.
func (p *Parser) checkLimit(count int, code diagnostics.ErrorCode, what string) {
	if count == config.MaxArity {
		p.error(code, p.peek(), fmt.Sprintf("Can't have more than %d %s.", config.MaxArity, what))
	}
}
