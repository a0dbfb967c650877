package parser_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/diagnostics"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/pipeline"
)

// parseWithErrors runs the lexer+parser and returns the context.
func parseWithErrors(input string) *pipeline.PipelineContext {
	ctx := pipeline.NewPipelineContext(input)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	return ctx
}

// expectError asserts that the only diagnostic renders as want.
func expectError(t *testing.T, input string, code diagnostics.ErrorCode, want string) {
	t.Helper()
	errs := parseWithErrors(input).Errors
	require.Len(t, errs, 1, "input: %s", input)
	assert.Equal(t, code, errs[0].Code)
	assert.Equal(t, want, errs[0].Error())
}

// ---------------------------------------------------------------------------
// P001: Expected token or expression
// ---------------------------------------------------------------------------

func TestP001_ExpectMessages(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"print 1", "[line 1] Error at end: Expect ';' after value."},
		{"1 + ;", "[line 1] Error at ';': Expect expression."},
		{"var 1 = 2;", "[line 1] Error at '1': Expect variable name."},
		{"var a = 1", "[line 1] Error at end: Expect ';' after variable declaration."},
		{"a.;", "[line 1] Error at ';': Expect property name after '.'."},
		{"super;", "[line 1] Error at ';': Expect '.' after 'super'."},
		{"super.1;", "[line 1] Error at '1': Expect superclass method name."},
		{"(1;", "[line 1] Error at ';': Expect ')' after expression."},
		{"f(1;", "[line 1] Error at ';': Expect ')' after arguments."},
		{"{ print 1;", "[line 1] Error at end: Expect '}' after block."},
		{"if 1) print 1;", "[line 1] Error at '1': Expect '(' after 'if'."},
		{"if (1 print 1;", "[line 1] Error at 'print': Expect ')' after if condition."},
		{"while 1) {}", "[line 1] Error at '1': Expect '(' after 'while'."},
		{"for (;; print 1;", "[line 1] Error at 'print': Expect expression."},
		{"for (var i = 0; i < 1 print 1;", "[line 1] Error at 'print': Expect ';' after loop condition."},
		{"return 1", "[line 1] Error at end: Expect ';' after return value."},
		{"fun 1() {}", "[line 1] Error at '1': Expect '(' after function name."},
		{"fun f(1) {}", "[line 1] Error at '1': Expect parameter name."},
		{"fun f(a {}", "[line 1] Error at '{': Expect ')' after parameters."},
		{"fun f() print 1;", "[line 1] Error at 'print': Expect '{' before function body."},
		{"class {}", "[line 1] Error at '{': Expect class name."},
		{"class A < {}", "[line 1] Error at '{': Expect superclass name."},
		{"class A print", "[line 1] Error at 'print': Expect '{' before class body."},
		{"class A { 1 }", "[line 1] Error at '1': Expect method name."},
		{"class A { m() {}", "[line 1] Error at end: Expect '}' after class body."},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			expectError(t, tc.input, diagnostics.ErrP001, tc.want)
		})
	}
}

func TestP001_ReportsLineOfOffendingToken(t *testing.T) {
	expectError(t, "print 1;\n\nprint 2\nvar", diagnostics.ErrP001, "[line 4] Error at 'var': Expect ';' after value.")
}

// ---------------------------------------------------------------------------
// P002: Invalid assignment target
// ---------------------------------------------------------------------------

func TestP002_InvalidAssignmentTarget(t *testing.T) {
	for _, input := range []string{"1 = 2;", "(a) = 1;", "a + b = c;", "f() = 1;", "!a = b;"} {
		t.Run(input, func(t *testing.T) {
			expectError(t, input, diagnostics.ErrP002, "[line 1] Error at '=': Invalid assignment target.")
		})
	}
}

func TestP002_ParsingContinues(t *testing.T) {
	ctx := parseWithErrors("1 = 2; print 3;")
	require.Len(t, ctx.Errors, 1)
	// The bad assignment is kept as its left side, the next statement parses.
	assert.Len(t, ctx.Statements, 2)
}

// ---------------------------------------------------------------------------
// P003 / P004: Arity limits
// ---------------------------------------------------------------------------

func TestP003_TooManyArguments(t *testing.T) {
	args := make([]string, 256)
	for i := range args {
		args[i] = "a"
	}
	ctx := parseWithErrors("f(" + strings.Join(args, ", ") + ");")
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, diagnostics.ErrP003, ctx.Errors[0].Code)
	assert.Equal(t, "[line 1] Error at 'a': Can't have more than 255 arguments.", ctx.Errors[0].Error())
	assert.Len(t, ctx.Statements, 1)
}

func TestP003_ExactlyMaxArgumentsIsFine(t *testing.T) {
	args := make([]string, 255)
	for i := range args {
		args[i] = "1"
	}
	ctx := parseWithErrors("f(" + strings.Join(args, ", ") + ");")
	assert.Empty(t, ctx.Errors)
}

func TestP004_TooManyParameters(t *testing.T) {
	params := make([]string, 256)
	for i := range params {
		params[i] = "p" + strings.Repeat("x", i%7)
	}
	ctx := parseWithErrors("fun f(" + strings.Join(params, ", ") + ") {}")
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, diagnostics.ErrP004, ctx.Errors[0].Code)
	assert.Contains(t, ctx.Errors[0].Message, "Can't have more than 255 parameters.")
	assert.Len(t, ctx.Statements, 1)
}

// ---------------------------------------------------------------------------
// Recovery
// ---------------------------------------------------------------------------

func TestSynchronizeCollectsAllErrors(t *testing.T) {
	ctx := parseWithErrors("print ; var x = ; print 1;\nvar class = 2;\nprint 2;")
	var msgs []string
	for _, e := range ctx.Errors {
		msgs = append(msgs, e.Error())
	}
	assert.Equal(t, []string{
		"[line 1] Error at ';': Expect expression.",
		"[line 1] Error at ';': Expect expression.",
		"[line 2] Error at 'class': Expect variable name.",
	}, msgs)
	// print 1; and print 2; survive.
	assert.Len(t, ctx.Statements, 2)
}

func TestErrorsInsideBlocksDoNotEndTheBlock(t *testing.T) {
	ctx := parseWithErrors("{ print ; print 1; }\nprint 2;")
	require.Len(t, ctx.Errors, 1)
	assert.Len(t, ctx.Statements, 2)
}

func TestParserSkipsAfterLexicalErrors(t *testing.T) {
	ctx := parseWithErrors("print 1 @;")
	require.Len(t, ctx.Errors, 1)
	assert.Equal(t, diagnostics.ErrL001, ctx.Errors[0].Code)
	assert.Nil(t, ctx.Statements)
}
