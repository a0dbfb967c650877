package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination
	line         int  // current line number
	column       int  // current column number

	errors []*diagnostics.DiagnosticError
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Scan converts source text into tokens in a single left-to-right pass.
// Lexical errors are collected and scanning continues past each one; the
// returned stream always ends with an EOF token.
func Scan(source string) ([]token.Token, []*diagnostics.DiagnosticError) {
	l := New(source)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			break
		}
	}
	return tokens, l.Errors()
}

// Errors returns the diagnostics recorded so far.
func (l *Lexer) Errors() []*diagnostics.DiagnosticError {
	return l.errors
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = len(l.input)
		l.readPosition = len(l.input) + 1
		return
	}

	r, w := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += w
	l.column++
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

// NextToken returns the next token. Unrecognized characters are reported
// and skipped, so ILLEGAL never reaches the parser.
func (l *Lexer) NextToken() token.Token {
	for {
		l.skipWhitespace()
		if l.atEnd() {
			return token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
		}

		line, col := l.line, l.column
		switch l.ch {
		case '(':
			return l.single(token.LPAREN)
		case ')':
			return l.single(token.RPAREN)
		case '{':
			return l.single(token.LBRACE)
		case '}':
			return l.single(token.RBRACE)
		case ',':
			return l.single(token.COMMA)
		case '.':
			return l.single(token.DOT)
		case '-':
			return l.single(token.MINUS)
		case '+':
			return l.single(token.PLUS)
		case ';':
			return l.single(token.SEMICOLON)
		case '*':
			return l.single(token.ASTERISK)
		case '/':
			return l.single(token.SLASH)
		case '!':
			return l.oneOrTwo(token.BANG, '=', token.NOT_EQ)
		case '=':
			return l.oneOrTwo(token.ASSIGN, '=', token.EQ)
		case '<':
			return l.oneOrTwo(token.LT, '=', token.LTE)
		case '>':
			return l.oneOrTwo(token.GT, '=', token.GTE)
		case '"':
			if tok, ok := l.readString(); ok {
				return tok
			}
			continue
		}

		if isDigit(l.ch) {
			return l.readNumber()
		}
		if isLetter(l.ch) {
			return l.readIdentifier()
		}

		bad := token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Line: line, Column: col}
		l.errors = append(l.errors, diagnostics.NewError(diagnostics.ErrL001, bad, "Unexpected character."))
		l.readChar()
	}
}

func (l *Lexer) single(t token.TokenType) token.Token {
	tok := token.Token{Type: t, Lexeme: string(l.ch), Line: l.line, Column: l.column}
	l.readChar()
	return tok
}

func (l *Lexer) oneOrTwo(one token.TokenType, next rune, two token.TokenType) token.Token {
	line, col := l.line, l.column
	if l.peekChar() == next {
		first := l.ch
		l.readChar()
		lexeme := string(first) + string(l.ch)
		l.readChar()
		return token.Token{Type: two, Lexeme: lexeme, Line: line, Column: col}
	}
	return l.single(one)
}

// skipWhitespace consumes blanks and comments. A block comment ends at the
// first "*/"; one that runs into the end of input is reported.
func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch != '/' {
			return
		}
		if l.peekChar() == '/' {
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
			continue
		}
		if l.peekChar() == '*' {
			l.readChar() // consume /
			l.readChar() // consume *
			closed := false
			for !l.atEnd() {
				if l.ch == '*' && l.peekChar() == '/' {
					l.readChar() // consume *
					l.readChar() // consume /
					closed = true
					break
				}
				l.readChar()
			}
			if !closed {
				at := token.Token{Type: token.EOF, Line: l.line, Column: l.column}
				l.errors = append(l.errors, diagnostics.NewError(diagnostics.ErrL003, at, "Unterminated multi line comment."))
				return
			}
			continue
		}
		return
	}
}

// readString scans a double-quoted string, which may span lines. On an
// unterminated string it reports at the line where scanning stopped and
// produces no token.
func (l *Lexer) readString() (token.Token, bool) {
	line, col := l.line, l.column
	start := l.position
	l.readChar() // opening quote
	for !l.atEnd() && l.ch != '"' {
		l.readChar()
	}
	if l.atEnd() {
		at := token.Token{Type: token.EOF, Line: l.line, Column: l.column}
		l.errors = append(l.errors, diagnostics.NewError(diagnostics.ErrL002, at, "Unterminated string."))
		return token.Token{}, false
	}
	l.readChar() // closing quote
	lexeme := l.input[start:l.position]
	value := lexeme[1 : len(lexeme)-1]
	return token.Token{Type: token.STRING, Lexeme: lexeme, Literal: value, Line: line, Column: col}, true
}

// readNumber scans a decimal number with an optional fraction. A trailing
// '.' without digits is left for the next token.
func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar() // .
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lexeme := l.input[start:l.position]
	// Digits with at most one dot always parse.
	val, _ := strconv.ParseFloat(lexeme, 64)
	return token.Token{Type: token.NUMBER, Lexeme: lexeme, Literal: val, Line: line, Column: col}
}

func (l *Lexer) readIdentifier() token.Token {
	line, col := l.line, l.column
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	ident := l.input[start:l.position]
	return token.Token{Type: token.LookupIdent(ident), Lexeme: ident, Line: line, Column: col}
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}
