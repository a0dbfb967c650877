package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funvibe/lox/internal/config"
	"github.com/funvibe/lox/internal/logging"
)

func newTestDriver() (*driver, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	c := color.New(color.FgRed)
	c.DisableColor()
	return &driver{
		cfg:      config.Default(),
		logger:   logging.New("error", &stderr),
		stdout:   &stdout,
		stderr:   &stderr,
		errColor: c,
	}, &stdout, &stderr
}

func writeScript(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script"+config.SourceFileExt)
	require.NoError(t, os.WriteFile(path, []byte(src), 0644))
	return path
}

func TestRunFileExitCodes(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		code       int
		wantStdout string
		wantStderr string
	}{
		{"ok", "print 1 + 2;", config.ExitOK, "3\n", ""},
		{"lexical error", "print 1; @", config.ExitDataError, "", "[line 1] Error: Unexpected character.\n"},
		{"syntax error", "print ;", config.ExitDataError, "", "[line 1] Error at ';': Expect expression.\n"},
		{"resolve error", "return 1;", config.ExitDataError, "", "[line 1] Error at 'return': Can't return from top-level code.\n"},
		{"runtime error", "print \"ok\";\nprint -nil;", config.ExitSoftware, "ok\n", "Operand must be a number.\n[line 2]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, stdout, stderr := newTestDriver()
			code := d.runFile(context.Background(), writeScript(t, tt.src))
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.wantStdout, stdout.String())
			assert.Equal(t, tt.wantStderr, stderr.String())
		})
	}
}

func TestRunFileMissing(t *testing.T) {
	d, _, stderr := newTestDriver()
	code := d.runFile(context.Background(), filepath.Join(t.TempDir(), "missing.lox"))
	assert.Equal(t, config.ExitIOError, code)
	assert.Contains(t, stderr.String(), "could not read")
}

func TestRunFileCancelled(t *testing.T) {
	d, _, stderr := newTestDriver()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	code := d.runFile(ctx, writeScript(t, "while (true) {}"))
	assert.Equal(t, config.ExitSoftware, code)
	assert.Contains(t, stderr.String(), "Execution cancelled.")
}

func TestRunFileCallDepthFromConfig(t *testing.T) {
	d, _, stderr := newTestDriver()
	depth := 20
	d.cfg.MaxCallDepth = &depth
	code := d.runFile(context.Background(), writeScript(t, "fun f(n) { if (n > 0) f(n - 1); }\nf(25);"))
	assert.Equal(t, config.ExitSoftware, code)
	assert.Equal(t, "Stack overflow.\n[line 1]\n", stderr.String())
}

func TestDumpTokens(t *testing.T) {
	d, stdout, _ := newTestDriver()
	code := d.dumpTokens(writeScript(t, "var x = 1;"))
	assert.Equal(t, config.ExitOK, code)
	assert.Contains(t, stdout.String(), "VAR var")
	assert.Contains(t, stdout.String(), "IDENT x")
	assert.Contains(t, stdout.String(), "NUMBER 1 1")
	assert.Contains(t, stdout.String(), "EOF")
}

func TestDumpAST(t *testing.T) {
	d, stdout, _ := newTestDriver()
	code := d.dumpAST(writeScript(t, "print 1 + 2 * 3;"))
	assert.Equal(t, config.ExitOK, code)
	assert.Equal(t, "(print (+ 1 (* 2 3)))\n", stdout.String())

	d, _, stderr := newTestDriver()
	code = d.dumpAST(writeScript(t, "print (1;"))
	assert.Equal(t, config.ExitDataError, code)
	assert.Contains(t, stderr.String(), "Expect ')' after expression.")
}

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"print 1;", false},
		{"print 1", true},
		{"fun f() {", true},
		{"class A {\n  m() {", true},
		{"print \"open", true},
		{"/* open comment", true},
		{"print ;", false},
		{"print 1; @", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, needsMoreInput(tt.src), "%q", tt.src)
	}
}

func TestEntriesShareSession(t *testing.T) {
	d, stdout, stderr := newTestDriver()
	session := d.newBackend()
	for _, entry := range []string{
		"var greeting = \"hi\";",
		"print missing;",
		"fun greet(name) {\n  return greeting + \" \" + name;\n}",
		"print greet(\"lox\");",
	} {
		d.evalEntry(session, entry)
	}
	assert.Equal(t, "hi lox\n", stdout.String())
	assert.Equal(t, "Undefined variable 'missing'.\n[line 1]\n", stderr.String())
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, useColor("always", &buf))
	assert.False(t, useColor("never", os.Stderr))
	assert.False(t, useColor("auto", &buf))
}

func TestFormat(t *testing.T) {
	d, stdout, _ := newTestDriver()
	code := d.format(writeScript(t, "var a=1;print a+2;"))
	assert.Equal(t, config.ExitOK, code)
	assert.Equal(t, "var a = 1;\nprint a + 2;\n", stdout.String())
}
