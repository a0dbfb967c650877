package parser_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/ast"
	"github.com/funvibe/lox/internal/lexer"
	"github.com/funvibe/lox/internal/parser"
	"github.com/funvibe/lox/internal/pipeline"
	"github.com/funvibe/lox/internal/prettyprinter"
)

// parseProgram runs the lexer and parser processors and fails on any error.
func parseProgram(t *testing.T, input string) []ast.Stmt {
	t.Helper()
	ctx := pipeline.NewPipelineContext(input)
	ctx = (&lexer.LexerProcessor{}).Process(ctx)
	ctx = (&parser.ParserProcessor{}).Process(ctx)
	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed with errors:\n%s", strings.Join(msgs, "\n"))
	}
	return ctx.Statements
}

func treeString(stmts []ast.Stmt) string {
	tp := prettyprinter.NewTreePrinter()
	tp.PrintProgram(stmts)
	return tp.String()
}

func TestParser(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		tree  string
	}{
		{"number_literal", "1;", "(; 1)\n"},
		{"fraction_literal", "2.5;", "(; 2.5)\n"},
		{"string_literal", `print "hi";`, "(print \"hi\")\n"},
		{"keyword_literals", "print nil; print true; print false;", "(print nil)\n(print true)\n(print false)\n"},
		{"precedence", "1 + 2 * 3;", "(; (+ 1 (* 2 3)))\n"},
		{"left_assoc", "1 - 2 - 3;", "(; (- (- 1 2) 3))\n"},
		{"comparison_over_equality", "1 < 2 == true;", "(; (== (< 1 2) true))\n"},
		{"logical", "a or b and c;", "(; (or a (and b c)))\n"},
		{"unary", "!-a;", "(; (! (- a)))\n"},
		{"grouping", "(1 + 2) * 3;", "(; (* (group (+ 1 2)) 3))\n"},
		{"assignment_right_assoc", "a = b = 1;", "(; (= a (= b 1)))\n"},
		{"set_property", "a.b.c = 1;", "(; (.= c (. b a) 1))\n"},
		{"call_chain", "f(1)(2);", "(; (call (call f 1) 2))\n"},
		{"method_call", "a.b(c);", "(; (call (. b a) c))\n"},
		{"var_decl", "var a = 1; var b;", "(var a 1)\n(var b)\n"},
		{"block", "{ var a; print a; }", "(block (var a) (print a))\n"},
		{"if_else", "if (a) print 1; else print 2;", "(if a (print 1) (print 2))\n"},
		{"dangling_else", "if (a) if (b) print 1; else print 2;", "(if a (if b (print 1) (print 2)))\n"},
		{"while", "while (a) a = a - 1;", "(while a (; (= a (- a 1))))\n"},
		{"for_full", "for (var i = 0; i < 3; i = i + 1) print i;",
			"(block (var i 0) (while (< i 3) (block (print i) (; (= i (+ i 1))))))\n"},
		{"for_empty", "for (;;) print 1;", "(while true (print 1))\n"},
		{"function", "fun add(a, b) { return a + b; }", "(fun add (a b) (return (+ a b)))\n"},
		{"bare_return", "fun f() { return; }", "(fun f () (return))\n"},
		{"anonymous_function", "var f = fun (x) { print x; };", "(var f (fun (x) (print x)))\n"},
		{"anonymous_statement", "fun () {};", "(; (fun ()))\n"},
		{"class", "class A < B { init(x) { this.x = x; } get() { return super.get(); } }",
			"(class A < B (init (x) (; (.= x this x))) (get () (return (call (super get)))))\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stmts := parseProgram(t, tc.input)
			assert.Equal(t, tc.tree, treeString(stmts))
		})
	}
}

// Printed code must parse back to the same tree.
func TestCodePrinterRoundTrip(t *testing.T) {
	inputs := []string{
		"var a = (1 + 2) * -3;",
		"if (a and !b) { print a; } else print \"no\";",
		"fun f(a, b) { while (a < b) { a = a + 1; } return a; }",
		"class A < B { init() { this.x = super.make(1, 2); } m() {} }",
		"var g = fun (x) { return x.y.z = nil; };",
		"for (var i = 0; i < 10; i = i + 1) { print i; }",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first := parseProgram(t, input)
			cp := prettyprinter.NewCodePrinter()
			cp.PrintProgram(first)

			second := parseProgram(t, cp.String())
			assert.Equal(t, treeString(first), treeString(second), "printed code:\n%s", cp.String())
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	src := `
class Point {
  init(x, y) { this.x = x; this.y = y; }
  sum() { return this.x + this.y; }
}
for (var i = 0; i < 2; i = i + 1) print Point(i, 1).sum();
`
	tokens, lexErrs := lexer.Scan(src)
	require.Empty(t, lexErrs)

	first, errs1 := parser.Parse(tokens)
	second, errs2 := parser.Parse(tokens)
	require.Empty(t, errs1)
	require.Empty(t, errs2)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second parse differs (-first +second):\n%s", diff)
	}
}

func TestParseWithoutEOF(t *testing.T) {
	tokens, _ := lexer.Scan("print 1;")
	stmts, errs := parser.Parse(tokens[:len(tokens)-1])
	require.Empty(t, errs)
	assert.Len(t, stmts, 1)
}
